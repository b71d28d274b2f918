package service

import (
	"context"

	gethcommon "github.com/ethereum/go-ethereum/common"

	xcommon "github.com/drophub/DropHubEnd/common"
	"github.com/drophub/DropHubEnd/service/svc"
	types "github.com/drophub/DropHubEnd/types/v1"
)

// Mint 开发用水龙头，给发行方铸币
func Mint(ctx context.Context, s *svc.ServerCtx, req types.MintRequest) (*types.BalanceResp, error) {
	if !s.C.Airdrop.DevFaucet {
		return nil, ErrFaucetDisabled
	}
	to, err := xcommon.UnifyAddress(req.To)
	if err != nil {
		return nil, err
	}
	amount, err := xcommon.ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if err := s.Token.Mint(to, amount); err != nil {
		return nil, err
	}
	return balanceResp(s, to), nil
}

// Approve 发行方授权工厂拉取注资
func Approve(ctx context.Context, s *svc.ServerCtx, req types.ApproveRequest) error {
	owner, err := xcommon.UnifyAddress(req.Owner)
	if err != nil {
		return err
	}
	spender, err := xcommon.UnifyAddress(req.Spender)
	if err != nil {
		return err
	}
	amount, err := xcommon.ParseAmount(req.Amount)
	if err != nil {
		return err
	}
	return s.Token.Approve(owner, spender, amount)
}

// GetBalance 查询代币余额
func GetBalance(ctx context.Context, s *svc.ServerCtx, address string) (*types.BalanceResp, error) {
	addr, err := xcommon.UnifyAddress(address)
	if err != nil {
		return nil, err
	}
	return balanceResp(s, addr), nil
}

func balanceResp(s *svc.ServerCtx, addr gethcommon.Address) *types.BalanceResp {
	return &types.BalanceResp{
		Address: addr.Hex(),
		Symbol:  s.Token.Symbol(),
		Balance: s.Token.BalanceOf(addr).String(),
	}
}
