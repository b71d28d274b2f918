package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/drophub/DropHubEnd/errcode"
	"github.com/drophub/DropHubEnd/kit/validator"
	"github.com/drophub/DropHubEnd/service/svc"
	service "github.com/drophub/DropHubEnd/service/v1"
	types "github.com/drophub/DropHubEnd/types/v1"
	"github.com/drophub/DropHubEnd/xhttp"
)

// CreateAirdropHandler 部署并注资一个空投活动
func CreateAirdropHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		factory := c.Params.ByName("address")
		if factory == "" {
			xhttp.Error(c, errcode.NewCustomErr("factory addr is null"))
			return
		}

		req := types.CreateAirdropRequest{}
		if err := c.BindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrParam)
			return
		}
		if err := validator.Verify(&req); err != nil {
			xhttp.Error(c, errcode.NewCustomErr(err.Error()))
			return
		}

		res, err := service.CreateAirdrop(c.Request.Context(), svcCtx, factory, req)
		if err != nil {
			xhttp.Error(c, wrapErr(err))
			return
		}
		xhttp.OkJson(c, res)
	}
}

// ClaimHandler 领取一个叶子
func ClaimHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		campaign := c.Params.ByName("address")
		if campaign == "" {
			xhttp.Error(c, errcode.NewCustomErr("campaign addr is null"))
			return
		}

		req := types.ClaimRequest{}
		if err := c.BindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrParam)
			return
		}
		if err := validator.Verify(&req); err != nil {
			xhttp.Error(c, errcode.NewCustomErr(err.Error()))
			return
		}

		if err := service.Claim(c.Request.Context(), svcCtx, campaign, req); err != nil {
			xhttp.Error(c, wrapErr(err))
			return
		}
		xhttp.OkJson(c, nil)
	}
}

// WithdrawHandler 解锁后归集剩余资金
func WithdrawHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		campaign := c.Params.ByName("address")
		if campaign == "" {
			xhttp.Error(c, errcode.NewCustomErr("campaign addr is null"))
			return
		}

		req := types.WithdrawRequest{}
		if err := c.BindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrParam)
			return
		}

		if err := service.Withdraw(c.Request.Context(), svcCtx, campaign, req); err != nil {
			xhttp.Error(c, wrapErr(err))
			return
		}
		xhttp.OkJson(c, nil)
	}
}

// GetCampaignInfoHandler 活动身份与倒计时视图
func GetCampaignInfoHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		campaign := c.Params.ByName("address")
		if campaign == "" {
			xhttp.Error(c, errcode.NewCustomErr("campaign addr is null"))
			return
		}

		res, err := service.GetCampaignInfo(c.Request.Context(), svcCtx, campaign)
		if err != nil {
			xhttp.Error(c, wrapErr(err))
			return
		}
		xhttp.OkJson(c, res)
	}
}

// GetClaimStatusHandler 查询某个下标是否已领取
func GetClaimStatusHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		campaign := c.Params.ByName("address")
		if campaign == "" {
			xhttp.Error(c, errcode.NewCustomErr("campaign addr is null"))
			return
		}
		index, ok := parseIndexParam(c, "index")
		if !ok {
			return
		}

		res, err := service.GetClaimStatus(c.Request.Context(), svcCtx, campaign, index)
		if err != nil {
			xhttp.Error(c, wrapErr(err))
			return
		}
		xhttp.OkJson(c, res)
	}
}

// GetCampaignStatsHandler 按领取记录汇总的活动统计
func GetCampaignStatsHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		campaign := c.Params.ByName("address")
		if campaign == "" {
			xhttp.Error(c, errcode.NewCustomErr("campaign addr is null"))
			return
		}

		res, err := service.GetCampaignStats(c.Request.Context(), svcCtx, campaign)
		if err != nil {
			xhttp.Error(c, wrapErr(err))
			return
		}
		xhttp.OkJson(c, res)
	}
}
