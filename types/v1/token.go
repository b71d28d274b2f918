package types

type MintRequest struct {
	To     string `json:"to" binding:"required" validate:"required"`
	Amount string `json:"amount" binding:"required" validate:"required"`
}

// ApproveRequest 发行方授权spender（通常是目标工厂）拉取注资
type ApproveRequest struct {
	Owner   string `json:"owner" binding:"required" validate:"required"`
	Spender string `json:"spender" binding:"required" validate:"required"`
	Amount  string `json:"amount" binding:"required" validate:"required"`
}

type BalanceResp struct {
	Address string `json:"address"`
	Symbol  string `json:"symbol"`
	Balance string `json:"balance"`
}
