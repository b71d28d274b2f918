package distribution

import "time"

// FactoryRecord 注册中心发出的工厂创建记录
type FactoryRecord struct {
	ID               int64     `gorm:"primaryKey" json:"id"`
	Address          string    `gorm:"size:100;uniqueIndex;not null" json:"address"`
	ServerID         string    `gorm:"size:200;uniqueIndex;not null" json:"server_id"`
	Owner            string    `gorm:"size:100;not null" json:"owner"`
	Caller           string    `gorm:"size:100;not null" json:"caller"`
	FactoryTemplate  string    `gorm:"size:100" json:"factory_template"`
	CampaignTemplate string    `gorm:"size:100" json:"campaign_template"`
	BlockNumber      uint64    `json:"block_number"`
	CreatedAt        time.Time `json:"created_at"`
}

func FactoryRecordTableName() string {
	return "factory_record"
}

// CampaignRecord 工厂发出的活动创建记录
type CampaignRecord struct {
	ID              int64     `gorm:"primaryKey" json:"id"`
	Address         string    `gorm:"size:100;uniqueIndex;not null" json:"address"`
	Factory         string    `gorm:"size:100;index;not null" json:"factory"`
	ServerID        string    `gorm:"size:200;index" json:"server_id"`
	Owner           string    `gorm:"size:100;not null" json:"owner"`
	Token           string    `gorm:"size:100;not null" json:"token"`
	MerkleRoot      string    `gorm:"size:100;index;not null" json:"merkle_root"`
	MetadataURI     string    `gorm:"type:text" json:"metadata_uri"`
	TotalAmount     string    `gorm:"size:100;not null" json:"total_amount"` // 十进制字符串
	ClaimDeadline   time.Time `json:"claim_deadline"`
	UnlockTimestamp time.Time `json:"unlock_timestamp"`
	BlockNumber     uint64    `json:"block_number"`
	CreatedAt       time.Time `json:"created_at"`
}

func CampaignRecordTableName() string {
	return "campaign_record"
}

// ClaimRecord 单次领取成功的记录
type ClaimRecord struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	Campaign   string    `gorm:"size:100;index:idx_campaign_index,unique;not null" json:"campaign"`
	ClaimIndex uint64    `gorm:"index:idx_campaign_index,unique;not null" json:"claim_index"`
	Account    string    `gorm:"size:100;index;not null" json:"account"`
	Amount     string    `gorm:"size:100;not null" json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}

func ClaimRecordTableName() string {
	return "claim_record"
}

// WithdrawalRecord 解锁后归集剩余资金的记录
type WithdrawalRecord struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Campaign  string    `gorm:"size:100;index;not null" json:"campaign"`
	Owner     string    `gorm:"size:100;not null" json:"owner"`
	Amount    string    `gorm:"size:100;not null" json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

func WithdrawalRecordTableName() string {
	return "withdrawal_record"
}
