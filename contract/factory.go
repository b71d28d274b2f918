package contract

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Factory 每个租户专属的活动工厂，负责铸造并原子注资 Campaign 实例
type Factory struct {
	env     *Env
	address common.Address

	serverID         string
	owner            common.Address
	campaignTemplate *Campaign
	initialized      bool

	campaigns    map[common.Address]*Campaign
	campaignList []common.Address
}

// newFactoryTemplate 构造注册中心持有的工厂蓝图
func newFactoryTemplate(env *Env, creator common.Address) *Factory {
	return &Factory{
		env:     env,
		address: env.nextAddress(creator),
	}
}

func (f *Factory) clone(creator common.Address) *Factory {
	return &Factory{
		env:       f.env,
		address:   f.env.nextAddress(creator),
		campaigns: make(map[common.Address]*Campaign),
	}
}

// Initialize 一次性初始化，重复调用返回 ErrAlreadyInitialized
// 注册中心在创建流程内部完成初始化，这个入口留给直接调用方
func (f *Factory) Initialize(campaignTemplate *Campaign, serverID string, owner common.Address) error {
	done := f.env.begin()
	defer done()
	return f.initialize(campaignTemplate, serverID, owner)
}

func (f *Factory) initialize(campaignTemplate *Campaign, serverID string, owner common.Address) error {
	if f.initialized {
		return ErrAlreadyInitialized
	}
	f.serverID = serverID
	f.owner = owner
	f.campaignTemplate = campaignTemplate
	f.initialized = true

	f.env.emit(FactoryInitializedEvent{
		Factory:  f.address,
		ServerID: serverID,
		Owner:    owner,
	})
	return nil
}

// CreateAirdropAndFund 部署一个新活动并从调用方拉取全部注资，整体是一个工作单元
// 任何账户都可以调用，活动的所有者是调用方而不是租户所有者
// 调用方需要事先 approve 足额代币，余额或授权不足由账本层报错
func (f *Factory) CreateAirdropAndFund(caller common.Address, token Token, merkleRoot common.Hash, metadataURI string, totalAmount *big.Int) (*Campaign, error) {
	done := f.env.begin()
	defer done()

	if !f.initialized {
		return nil, ErrNotInitialized
	}
	if token == nil {
		return nil, ErrZeroToken
	}
	if merkleRoot == (common.Hash{}) {
		return nil, ErrZeroRoot
	}
	if totalAmount == nil || totalAmount.Sign() <= 0 {
		return nil, ErrZeroAmount
	}

	campaign := f.campaignTemplate.clone(f.address)
	if err := campaign.initialize(token, merkleRoot, caller, metadataURI, totalAmount); err != nil {
		return nil, err
	}

	// 注资失败则整个创建作废，活动不会被登记
	if err := token.TransferFrom(f.address, caller, campaign.address, totalAmount); err != nil {
		return nil, errors.Wrap(err, "fund campaign failed")
	}

	f.campaigns[campaign.address] = campaign
	f.campaignList = append(f.campaignList, campaign.address)

	f.env.emit(AirdropCreatedEvent{
		Campaign:    campaign.address,
		Caller:      caller,
		ServerID:    f.serverID,
		Factory:     f.address,
		Token:       token.Address(),
		MerkleRoot:  merkleRoot,
		MetadataURI: metadataURI,
		TotalAmount: new(big.Int).Set(totalAmount),
		Timestamp:   f.env.timestamp(),
		BlockNumber: f.env.blockNumber,
	})
	return campaign, nil
}

// GetCampaign 按地址取回本工厂创建的活动实例
func (f *Factory) GetCampaign(address common.Address) (*Campaign, bool) {
	done := f.env.rbegin()
	defer done()
	c, ok := f.campaigns[address]
	return c, ok
}

// GetAllCampaigns 创建顺序排列的活动地址列表
func (f *Factory) GetAllCampaigns() []common.Address {
	done := f.env.rbegin()
	defer done()
	out := make([]common.Address, len(f.campaignList))
	copy(out, f.campaignList)
	return out
}

func (f *Factory) Address() common.Address { return f.address }
func (f *Factory) ServerID() string        { return f.serverID }
func (f *Factory) Owner() common.Address   { return f.owner }
func (f *Factory) Initialized() bool       { return f.initialized }

// Implementation 返回活动蓝图地址，供链下校验来源
func (f *Factory) Implementation() common.Address {
	if f.campaignTemplate == nil {
		return common.Address{}
	}
	return f.campaignTemplate.address
}
