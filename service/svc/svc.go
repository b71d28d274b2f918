package svc

import (
	"context"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/zeromicro/go-zero/core/collection"

	"github.com/drophub/DropHubEnd/config"
	"github.com/drophub/DropHubEnd/contract"
	"github.com/drophub/DropHubEnd/dao"
)

// ServerCtx 服务层的共享上下文：配置、DAO、执行环境和核心实例句柄
type ServerCtx struct {
	C          *config.Config
	Dao        *dao.Dao
	Env        *contract.Env
	Registry   *contract.Registry
	Token      *contract.LedgerToken
	ProofCache *collection.Cache

	mu        sync.RWMutex
	campaigns map[common.Address]*contract.Campaign
}

func NewServiceContext(c *config.Config) (*ServerCtx, error) {
	d, err := dao.New(context.Background(), c.Db)
	if err != nil {
		return nil, errors.Wrap(err, "init dao")
	}
	return newServiceContext(c, d)
}

// NewServiceContextWithDao 测试入口，跳过mysql连接
func NewServiceContextWithDao(c *config.Config, d *dao.Dao) (*ServerCtx, error) {
	return newServiceContext(c, d)
}

func newServiceContext(c *config.Config, d *dao.Dao) (*ServerCtx, error) {
	env := contract.NewEnv()
	env.SetGracePeriod(time.Duration(c.Airdrop.GracePeriodDays) * 24 * time.Hour)

	cache, err := collection.NewCache(time.Duration(c.Airdrop.ProofCacheSeconds) * time.Second)
	if err != nil {
		return nil, errors.Wrap(err, "init proof cache")
	}

	return &ServerCtx{
		C:          c,
		Dao:        d,
		Env:        env,
		Registry:   contract.NewRegistry(env),
		Token:      contract.NewLedgerToken(env, c.Airdrop.TokenSymbol),
		ProofCache: cache,
		campaigns:  make(map[common.Address]*contract.Campaign),
	}, nil
}

// TrackCampaign 登记新活动实例，后续按地址路由请求
func (s *ServerCtx) TrackCampaign(campaign *contract.Campaign) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaigns[campaign.Address()] = campaign
}

func (s *ServerCtx) GetCampaign(address common.Address) (*contract.Campaign, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.campaigns[address]
	return c, ok
}
