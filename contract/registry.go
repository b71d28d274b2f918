package contract

import (
	"github.com/ethereum/go-ethereum/common"
)

// Registry 进程级单例，维护租户与工厂的双射目录
// serverID 是稀缺资源：任何调用方都可以为任意租户创建工厂，但每个租户只有一个
type Registry struct {
	env     *Env
	address common.Address

	factoryTemplate  *Factory
	campaignTemplate *Campaign

	factoryByServer map[string]common.Address
	serverByFactory map[common.Address]string
	factories       map[common.Address]*Factory
	allFactories    []common.Address
}

// NewRegistry 部署注册中心，同时部署两份蓝图实例，蓝图引用此后不可变
func NewRegistry(env *Env) *Registry {
	done := env.begin()
	defer done()

	address := env.nextAddress(common.Address{})
	return &Registry{
		env:              env,
		address:          address,
		factoryTemplate:  newFactoryTemplate(env, address),
		campaignTemplate: newCampaignTemplate(env, address),
		factoryByServer:  make(map[string]common.Address),
		serverByFactory:  make(map[common.Address]string),
		factories:        make(map[common.Address]*Factory),
	}
}

// CreateFactoryForServer 为租户创建并初始化专属工厂，单个工作单元
func (r *Registry) CreateFactoryForServer(caller common.Address, serverID string, owner common.Address) (*Factory, error) {
	done := r.env.begin()
	defer done()

	if serverID == "" {
		return nil, ErrEmptyIdentifier
	}
	if owner == (common.Address{}) {
		return nil, ErrZeroOwner
	}
	if _, exists := r.factoryByServer[serverID]; exists {
		return nil, ErrDuplicateTenant
	}

	factory := r.factoryTemplate.clone(r.address)
	if err := factory.initialize(r.campaignTemplate, serverID, owner); err != nil {
		return nil, err
	}

	r.factoryByServer[serverID] = factory.address
	r.serverByFactory[factory.address] = serverID
	r.factories[factory.address] = factory
	r.allFactories = append(r.allFactories, factory.address)

	r.env.emit(FactoryCreatedEvent{
		Factory:          factory.address,
		ServerID:         serverID,
		Owner:            owner,
		Caller:           caller,
		Timestamp:        r.env.timestamp(),
		BlockNumber:      r.env.blockNumber,
		FactoryTemplate:  r.factoryTemplate.address,
		CampaignTemplate: r.campaignTemplate.address,
	})
	return factory, nil
}

// GetFactoryByServerId 正向查询，不存在时返回零地址，永不失败
func (r *Registry) GetFactoryByServerId(serverID string) common.Address {
	done := r.env.rbegin()
	defer done()
	return r.factoryByServer[serverID]
}

// GetServerIdByFactory 反向查询，未登记的地址返回空串，永不失败
func (r *Registry) GetServerIdByFactory(factory common.Address) string {
	done := r.env.rbegin()
	defer done()
	return r.serverByFactory[factory]
}

func (r *Registry) IsServerFactoryExists(serverID string) bool {
	done := r.env.rbegin()
	defer done()
	_, ok := r.factoryByServer[serverID]
	return ok
}

func (r *Registry) GetFactoryCount() int {
	done := r.env.rbegin()
	defer done()
	return len(r.allFactories)
}

// GetAllFactories 创建顺序排列的工厂地址列表，只增不减
func (r *Registry) GetAllFactories() []common.Address {
	done := r.env.rbegin()
	defer done()
	out := make([]common.Address, len(r.allFactories))
	copy(out, r.allFactories)
	return out
}

// GetFactory 取回工厂实例句柄，供服务层路由调用
func (r *Registry) GetFactory(address common.Address) (*Factory, bool) {
	done := r.env.rbegin()
	defer done()
	f, ok := r.factories[address]
	return f, ok
}

func (r *Registry) Address() common.Address { return r.address }

func (r *Registry) FactoryTemplate() common.Address { return r.factoryTemplate.address }

func (r *Registry) CampaignTemplate() common.Address { return r.campaignTemplate.address }
