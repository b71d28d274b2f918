package types

// EligibilityEntry 名单里的一个领取条目
type EligibilityEntry struct {
	Index   uint64 `json:"index"`
	Account string `json:"account" binding:"required" validate:"required"`
	Amount  string `json:"amount" binding:"required" validate:"required"`
}

// BuildEligibilityRequest 由名单生成默克尔树并落库
type BuildEligibilityRequest struct {
	Entries []EligibilityEntry `json:"entries" binding:"required,dive"`
}

type BuildEligibilityResp struct {
	BatchID   string `json:"batch_id"`
	Root      string `json:"root"`
	LeafCount int    `json:"leaf_count"`
}

type ProofResp struct {
	Root    string   `json:"root"`
	Index   uint64   `json:"index"`
	Account string   `json:"account"`
	Amount  string   `json:"amount"`
	Proof   []string `json:"proof"`
}
