package distribution

import "time"

// EligibilityBatch 一份资格名单对应一棵默克尔树
type EligibilityBatch struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	BatchID   string    `gorm:"size:64;uniqueIndex;not null" json:"batch_id"`
	Root      string    `gorm:"size:100;uniqueIndex;not null" json:"root"`
	LeafCount int       `gorm:"not null" json:"leaf_count"`
	CreatedAt time.Time `json:"created_at"`
}

func EligibilityBatchTableName() string {
	return "eligibility_batch"
}

// EligibilityLeaf 名单里的一个领取条目及其默克尔证明
type EligibilityLeaf struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Root      string    `gorm:"size:100;index:idx_root_index,unique;not null" json:"root"`
	LeafIndex uint64    `gorm:"index:idx_root_index,unique;not null" json:"leaf_index"`
	Account   string    `gorm:"size:100;index;not null" json:"account"`
	Amount    string    `gorm:"size:100;not null" json:"amount"`
	Proof     string    `gorm:"type:text" json:"proof"` // 证明的十六进制JSON数组
	CreatedAt time.Time `json:"created_at"`
}

func EligibilityLeafTableName() string {
	return "eligibility_leaf"
}
