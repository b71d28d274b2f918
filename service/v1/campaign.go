package service

import (
	"context"

	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	xcommon "github.com/drophub/DropHubEnd/common"
	"github.com/drophub/DropHubEnd/contract"
	"github.com/drophub/DropHubEnd/logger/xzap"
	"github.com/drophub/DropHubEnd/service/svc"
	types "github.com/drophub/DropHubEnd/types/v1"
)

// CreateAirdrop 通过租户工厂部署并注资一个活动
func CreateAirdrop(ctx context.Context, s *svc.ServerCtx, factoryAddr string, req types.CreateAirdropRequest) (*types.CampaignResp, error) {
	factory, err := resolveFactory(s, factoryAddr)
	if err != nil {
		return nil, err
	}
	caller, err := xcommon.UnifyAddress(req.Caller)
	if err != nil {
		return nil, err
	}
	root, err := xcommon.ParseRoot(req.MerkleRoot)
	if err != nil {
		return nil, err
	}
	total, err := xcommon.ParseAmount(req.TotalAmount)
	if err != nil {
		return nil, err
	}

	// 当前只挂了一个进程内代币账本，指定其它token地址视为配置错误
	var token contract.Token = s.Token
	if req.Token != "" {
		addr, err := xcommon.UnifyAddress(req.Token)
		if err != nil {
			return nil, err
		}
		if addr != s.Token.Address() {
			return nil, errors.Errorf("unknown token %s", addr.Hex())
		}
	}

	campaign, err := factory.CreateAirdropAndFund(caller, token, root, req.MetadataURI, total)
	if err != nil {
		return nil, err
	}
	s.TrackCampaign(campaign)

	xzap.WithContext(ctx).Info("airdrop created",
		zap.String("campaign", campaign.Address().Hex()),
		zap.String("factory", factory.Address().Hex()),
		zap.String("server_id", factory.ServerID()),
		zap.String("total", total.String()))
	return campaignResp(campaign), nil
}

// Claim 领取一个叶子
func Claim(ctx context.Context, s *svc.ServerCtx, campaignAddr string, req types.ClaimRequest) error {
	campaign, err := resolveCampaign(s, campaignAddr)
	if err != nil {
		return err
	}
	caller, err := xcommon.UnifyAddress(req.Caller)
	if err != nil {
		return err
	}
	account, err := xcommon.UnifyAddress(req.Account)
	if err != nil {
		return err
	}
	amount, err := xcommon.ParseAmount(req.Amount)
	if err != nil {
		return err
	}

	proof := make([]gethcommon.Hash, len(req.Proof))
	for i, p := range req.Proof {
		proof[i] = gethcommon.HexToHash(p)
	}
	return campaign.Claim(caller, req.Index, account, amount, proof)
}

// Withdraw 解锁后归集剩余资金
func Withdraw(ctx context.Context, s *svc.ServerCtx, campaignAddr string, req types.WithdrawRequest) error {
	campaign, err := resolveCampaign(s, campaignAddr)
	if err != nil {
		return err
	}
	caller, err := xcommon.UnifyAddress(req.Caller)
	if err != nil {
		return err
	}
	return campaign.WithdrawRemaining(caller)
}

// GetCampaignInfo 活动身份与倒计时视图
func GetCampaignInfo(ctx context.Context, s *svc.ServerCtx, campaignAddr string) (*types.CampaignResp, error) {
	campaign, err := resolveCampaign(s, campaignAddr)
	if err != nil {
		return nil, err
	}
	return campaignResp(campaign), nil
}

// GetClaimStatus 查询某个下标是否已领取
func GetClaimStatus(ctx context.Context, s *svc.ServerCtx, campaignAddr string, index uint64) (*types.ClaimStatusResp, error) {
	campaign, err := resolveCampaign(s, campaignAddr)
	if err != nil {
		return nil, err
	}
	return &types.ClaimStatusResp{
		Campaign: campaign.Address().Hex(),
		Index:    index,
		Claimed:  campaign.IsClaimed(index),
	}, nil
}

// GetCampaignStats 按领取记录汇总统计
func GetCampaignStats(ctx context.Context, s *svc.ServerCtx, campaignAddr string) (*types.CampaignStatsResp, error) {
	campaign, err := resolveCampaign(s, campaignAddr)
	if err != nil {
		return nil, err
	}

	records, err := s.Dao.GetClaimRecordsByCampaign(ctx, campaign.Address().Hex())
	if err != nil {
		return nil, errors.Wrap(err, "load claim records")
	}

	claimedTotal := decimal.Zero
	for _, r := range records {
		amount, err := decimal.NewFromString(r.Amount)
		if err != nil {
			return nil, errors.Wrapf(err, "bad claim amount %q", r.Amount)
		}
		claimedTotal = claimedTotal.Add(amount)
	}

	total, err := decimal.NewFromString(campaign.TotalAmount().String())
	if err != nil {
		return nil, err
	}
	percent := decimal.Zero
	if total.IsPositive() {
		percent = claimedTotal.Div(total).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return &types.CampaignStatsResp{
		Campaign:       campaign.Address().Hex(),
		TotalAmount:    total.String(),
		ClaimedCount:   int64(len(records)),
		ClaimedTotal:   claimedTotal.String(),
		Remaining:      campaign.GetBalance().String(),
		ClaimedPercent: percent.String(),
	}, nil
}

func resolveCampaign(s *svc.ServerCtx, address string) (*contract.Campaign, error) {
	addr, err := xcommon.UnifyAddress(address)
	if err != nil {
		return nil, err
	}
	campaign, ok := s.GetCampaign(addr)
	if !ok {
		return nil, ErrCampaignNotFound
	}
	return campaign, nil
}

func campaignResp(c *contract.Campaign) *types.CampaignResp {
	return &types.CampaignResp{
		Address:             c.Address().Hex(),
		Token:               c.Token().Address().Hex(),
		MerkleRoot:          c.MerkleRoot().Hex(),
		Owner:               c.Owner().Hex(),
		MetadataURI:         c.MetadataURI(),
		TotalAmount:         c.TotalAmount().String(),
		Balance:             c.GetBalance().String(),
		ClaimDeadline:       c.ClaimDeadline(),
		UnlockTimestamp:     c.UnlockTimestamp(),
		DaysUntilExpiry:     c.GetDaysUntilExpiry(),
		DaysUntilWithdrawal: c.GetDaysUntilWithdrawal(),
	}
}
