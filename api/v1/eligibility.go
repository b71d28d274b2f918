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

// BuildEligibilityHandler 由名单生成默克尔树并落库
func BuildEligibilityHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := types.BuildEligibilityRequest{}
		if err := c.BindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrParam)
			return
		}
		if err := validator.Verify(&req); err != nil {
			xhttp.Error(c, errcode.NewCustomErr(err.Error()))
			return
		}

		res, err := service.BuildEligibility(c.Request.Context(), svcCtx, req)
		if err != nil {
			xhttp.Error(c, wrapErr(err))
			return
		}
		xhttp.OkJson(c, res)
	}
}

// GetProofHandler 按根哈希和账户查证明
func GetProofHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		root := c.Params.ByName("root")
		account := c.Params.ByName("account")
		if root == "" || account == "" {
			xhttp.Error(c, errcode.NewCustomErr("root or account is null"))
			return
		}

		res, err := service.GetProof(c.Request.Context(), svcCtx, root, account)
		if err != nil {
			xhttp.Error(c, wrapErr(err))
			return
		}
		xhttp.OkJson(c, res)
	}
}
