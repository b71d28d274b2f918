package types

import "time"

// CreateAirdropRequest 部署并注资一个空投活动
// token 缺省时使用进程内代币账本
type CreateAirdropRequest struct {
	Caller      string `json:"caller" binding:"required" validate:"required"`
	Token       string `json:"token"`
	MerkleRoot  string `json:"merkle_root" binding:"required" validate:"required"`
	MetadataURI string `json:"metadata_uri" validate:"max=1000"`
	TotalAmount string `json:"total_amount" binding:"required" validate:"required"`
}

// ClaimRequest 领取请求，caller必须等于account本人
type ClaimRequest struct {
	Caller  string   `json:"caller" binding:"required" validate:"required"`
	Index   uint64   `json:"index"`
	Account string   `json:"account" binding:"required" validate:"required"`
	Amount  string   `json:"amount" binding:"required" validate:"required"`
	Proof   []string `json:"proof"`
}

type WithdrawRequest struct {
	Caller string `json:"caller" binding:"required" validate:"required"`
}

type CampaignResp struct {
	Address             string    `json:"address"`
	Token               string    `json:"token"`
	MerkleRoot          string    `json:"merkle_root"`
	Owner               string    `json:"owner"`
	MetadataURI         string    `json:"metadata_uri"`
	TotalAmount         string    `json:"total_amount"`
	Balance             string    `json:"balance"`
	ClaimDeadline       time.Time `json:"claim_deadline"`
	UnlockTimestamp     time.Time `json:"unlock_timestamp"`
	DaysUntilExpiry     uint64    `json:"days_until_expiry"`
	DaysUntilWithdrawal uint64    `json:"days_until_withdrawal"`
}

type ClaimStatusResp struct {
	Campaign string `json:"campaign"`
	Index    uint64 `json:"index"`
	Claimed  bool   `json:"claimed"`
}

// CampaignStatsResp 按领取记录汇总的活动统计
type CampaignStatsResp struct {
	Campaign       string `json:"campaign"`
	TotalAmount    string `json:"total_amount"`
	ClaimedCount   int64  `json:"claimed_count"`
	ClaimedTotal   string `json:"claimed_total"`
	Remaining      string `json:"remaining"`
	ClaimedPercent string `json:"claimed_percent"`
}
