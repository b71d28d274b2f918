package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/drophub/DropHubEnd/errcode"
	"github.com/drophub/DropHubEnd/kit/validator"
	"github.com/drophub/DropHubEnd/service/svc"
	service "github.com/drophub/DropHubEnd/service/v1"
	types "github.com/drophub/DropHubEnd/types/v1"
	"github.com/drophub/DropHubEnd/xhttp"
)

// CreateFactoryHandler 为租户创建专属工厂
func CreateFactoryHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := types.CreateFactoryRequest{}
		if err := c.BindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrParam)
			return
		}
		if err := validator.Verify(&req); err != nil {
			xhttp.Error(c, errcode.NewCustomErr(err.Error()))
			return
		}

		res, err := service.CreateFactory(c.Request.Context(), svcCtx, req)
		if err != nil {
			xhttp.Error(c, wrapErr(err))
			return
		}
		xhttp.OkJson(c, res)
	}
}

// GetRegistryOverviewHandler 目录总览
func GetRegistryOverviewHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		xhttp.OkJson(c, service.GetRegistryOverview(c.Request.Context(), svcCtx))
	}
}

// GetFactoryByServerIDHandler 正向查询租户的工厂
func GetFactoryByServerIDHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		serverID := c.Params.ByName("serverId")
		if serverID == "" {
			xhttp.Error(c, errcode.NewCustomErr("server id is null"))
			return
		}
		xhttp.OkJson(c, service.GetFactoryByServerID(c.Request.Context(), svcCtx, serverID))
	}
}

// GetServerIDByFactoryHandler 反向查询工厂所属租户
func GetServerIDByFactoryHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address := c.Params.ByName("factory")
		if address == "" {
			xhttp.Error(c, errcode.NewCustomErr("factory addr is null"))
			return
		}

		res, err := service.GetServerIDByFactory(c.Request.Context(), svcCtx, address)
		if err != nil {
			xhttp.Error(c, wrapErr(err))
			return
		}
		xhttp.OkJson(c, res)
	}
}

// GetFactoryInfoHandler 工厂身份视图
func GetFactoryInfoHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		address := c.Params.ByName("address")
		if address == "" {
			xhttp.Error(c, errcode.NewCustomErr("factory addr is null"))
			return
		}

		res, err := service.GetFactoryInfo(c.Request.Context(), svcCtx, address)
		if err != nil {
			xhttp.Error(c, wrapErr(err))
			return
		}
		xhttp.OkJson(c, res)
	}
}

// parseIndexParam 领取下标路径参数
func parseIndexParam(c *gin.Context, name string) (uint64, bool) {
	index, err := strconv.ParseUint(c.Params.ByName(name), 10, 64)
	if err != nil {
		xhttp.Error(c, errcode.NewCustomErr("claim index is illegal"))
		return 0, false
	}
	return index, true
}
