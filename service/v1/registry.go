package service

import (
	"context"

	gethcommon "github.com/ethereum/go-ethereum/common"

	xcommon "github.com/drophub/DropHubEnd/common"
	"github.com/drophub/DropHubEnd/contract"
	"github.com/drophub/DropHubEnd/service/svc"
	types "github.com/drophub/DropHubEnd/types/v1"
)

// CreateFactory 为租户创建专属工厂
func CreateFactory(ctx context.Context, s *svc.ServerCtx, req types.CreateFactoryRequest) (*types.FactoryResp, error) {
	owner, err := xcommon.UnifyAddress(req.Owner)
	if err != nil {
		return nil, err
	}
	caller, err := xcommon.UnifyAddress(req.Caller)
	if err != nil {
		return nil, err
	}

	factory, err := s.Registry.CreateFactoryForServer(caller, req.ServerID, owner)
	if err != nil {
		return nil, err
	}
	return factoryResp(factory), nil
}

// GetFactoryByServerID 正向查询，查不到时exists为false
func GetFactoryByServerID(ctx context.Context, s *svc.ServerCtx, serverID string) *types.ServerLookupResp {
	factory := s.Registry.GetFactoryByServerId(serverID)
	resp := &types.ServerLookupResp{
		ServerID: serverID,
		Exists:   factory != (gethcommon.Address{}),
	}
	if resp.Exists {
		resp.Factory = factory.Hex()
	}
	return resp
}

// GetServerIDByFactory 反向查询
func GetServerIDByFactory(ctx context.Context, s *svc.ServerCtx, factory string) (*types.ServerLookupResp, error) {
	addr, err := xcommon.UnifyAddress(factory)
	if err != nil {
		return nil, err
	}
	serverID := s.Registry.GetServerIdByFactory(addr)
	return &types.ServerLookupResp{
		ServerID: serverID,
		Factory:  addr.Hex(),
		Exists:   serverID != "",
	}, nil
}

// GetRegistryOverview 目录总览
func GetRegistryOverview(ctx context.Context, s *svc.ServerCtx) *types.RegistryOverviewResp {
	all := s.Registry.GetAllFactories()
	factories := make([]string, len(all))
	for i, addr := range all {
		factories[i] = addr.Hex()
	}
	return &types.RegistryOverviewResp{
		FactoryCount:     s.Registry.GetFactoryCount(),
		Factories:        factories,
		FactoryTemplate:  s.Registry.FactoryTemplate().Hex(),
		CampaignTemplate: s.Registry.CampaignTemplate().Hex(),
	}
}

// GetFactoryInfo 工厂身份视图
func GetFactoryInfo(ctx context.Context, s *svc.ServerCtx, address string) (*types.FactoryResp, error) {
	factory, err := resolveFactory(s, address)
	if err != nil {
		return nil, err
	}
	resp := factoryResp(factory)
	for _, addr := range factory.GetAllCampaigns() {
		resp.Campaigns = append(resp.Campaigns, addr.Hex())
	}
	return resp, nil
}

func resolveFactory(s *svc.ServerCtx, address string) (*contract.Factory, error) {
	addr, err := xcommon.UnifyAddress(address)
	if err != nil {
		return nil, err
	}
	factory, ok := s.Registry.GetFactory(addr)
	if !ok {
		return nil, ErrFactoryNotFound
	}
	return factory, nil
}

func factoryResp(f *contract.Factory) *types.FactoryResp {
	return &types.FactoryResp{
		Address:        f.Address().Hex(),
		ServerID:       f.ServerID(),
		Owner:          f.Owner().Hex(),
		Initialized:    f.Initialized(),
		Implementation: f.Implementation().Hex(),
	}
}
