package contract

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Event 是核心对外发出的追加式记录，供链下索引方消费
type Event interface {
	EventName() string
}

type EventSink interface {
	HandleEvent(ev Event)
}

// FactoryCreatedEvent 注册中心创建工厂
// 带上两个模板地址，索引方无需额外查询即可校验来源
type FactoryCreatedEvent struct {
	Factory          common.Address
	ServerID         string
	Owner            common.Address
	Caller           common.Address
	Timestamp        time.Time
	BlockNumber      uint64
	FactoryTemplate  common.Address
	CampaignTemplate common.Address
}

func (FactoryCreatedEvent) EventName() string { return "FactoryCreated" }

// FactoryInitializedEvent 工厂完成一次性初始化
type FactoryInitializedEvent struct {
	Factory  common.Address
	ServerID string
	Owner    common.Address
}

func (FactoryInitializedEvent) EventName() string { return "FactoryInitialized" }

// AirdropCreatedEvent 工厂部署并注资一个空投活动
type AirdropCreatedEvent struct {
	Campaign    common.Address
	Caller      common.Address
	ServerID    string
	Factory     common.Address
	Token       common.Address
	MerkleRoot  common.Hash
	MetadataURI string
	TotalAmount *big.Int
	Timestamp   time.Time
	BlockNumber uint64
}

func (AirdropCreatedEvent) EventName() string { return "AirdropCreated" }

// CampaignInitializedEvent 活动实例完成初始化
type CampaignInitializedEvent struct {
	Campaign   common.Address
	Token      common.Address
	Owner      common.Address
	MerkleRoot common.Hash
}

func (CampaignInitializedEvent) EventName() string { return "CampaignInitialized" }

// ClaimedEvent 单个叶子领取成功
type ClaimedEvent struct {
	Campaign common.Address
	Index    uint64
	Account  common.Address
	Amount   *big.Int
}

func (ClaimedEvent) EventName() string { return "Claimed" }

// WithdrawnEvent 解锁后归集剩余资金
type WithdrawnEvent struct {
	Campaign common.Address
	Owner    common.Address
	Amount   *big.Int
}

func (WithdrawnEvent) EventName() string { return "Withdrawn" }
