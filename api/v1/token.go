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

// MintHandler 开发用水龙头
func MintHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := types.MintRequest{}
		if err := c.BindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrParam)
			return
		}
		if err := validator.Verify(&req); err != nil {
			xhttp.Error(c, errcode.NewCustomErr(err.Error()))
			return
		}

		res, err := service.Mint(c.Request.Context(), svcCtx, req)
		if err != nil {
			xhttp.Error(c, wrapErr(err))
			return
		}
		xhttp.OkJson(c, res)
	}
}

// ApproveHandler 发行方授权工厂拉取注资
func ApproveHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := types.ApproveRequest{}
		if err := c.BindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrParam)
			return
		}
		if err := validator.Verify(&req); err != nil {
			xhttp.Error(c, errcode.NewCustomErr(err.Error()))
			return
		}

		if err := service.Approve(c.Request.Context(), svcCtx, req); err != nil {
			xhttp.Error(c, wrapErr(err))
			return
		}
		xhttp.OkJson(c, nil)
	}
}

// GetBalanceHandler 查询代币余额
func GetBalanceHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address := c.Params.ByName("address")
		if address == "" {
			xhttp.Error(c, errcode.NewCustomErr("user addr is null"))
			return
		}

		res, err := service.GetBalance(c.Request.Context(), svcCtx, address)
		if err != nil {
			xhttp.Error(c, wrapErr(err))
			return
		}
		xhttp.OkJson(c, res)
	}
}
