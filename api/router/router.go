package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	v1 "github.com/drophub/DropHubEnd/api/v1"
	"github.com/drophub/DropHubEnd/service/svc"
)

func NewRouter(svcCtx *svc.ServerCtx) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	api := r.Group("/api/v1")
	{
		registry := api.Group("/registry")
		{
			registry.POST("/factories", v1.CreateFactoryHandler(svcCtx))
			registry.GET("/factories", v1.GetRegistryOverviewHandler(svcCtx))
			registry.GET("/factories/:serverId", v1.GetFactoryByServerIDHandler(svcCtx))
			registry.GET("/servers/:factory", v1.GetServerIDByFactoryHandler(svcCtx))
		}

		factories := api.Group("/factories")
		{
			factories.GET("/:address", v1.GetFactoryInfoHandler(svcCtx))
			factories.POST("/:address/airdrops", v1.CreateAirdropHandler(svcCtx))
		}

		campaigns := api.Group("/campaigns")
		{
			campaigns.GET("/:address", v1.GetCampaignInfoHandler(svcCtx))
			campaigns.GET("/:address/claimed/:index", v1.GetClaimStatusHandler(svcCtx))
			campaigns.GET("/:address/stats", v1.GetCampaignStatsHandler(svcCtx))
			campaigns.POST("/:address/claims", v1.ClaimHandler(svcCtx))
			campaigns.POST("/:address/withdrawal", v1.WithdrawHandler(svcCtx))
		}

		eligibility := api.Group("/eligibility")
		{
			eligibility.POST("", v1.BuildEligibilityHandler(svcCtx))
			eligibility.GET("/:root/proof/:account", v1.GetProofHandler(svcCtx))
		}

		token := api.Group("/token")
		{
			token.POST("/mint", v1.MintHandler(svcCtx))
			token.POST("/approve", v1.ApproveHandler(svcCtx))
			token.GET("/balance/:address", v1.GetBalanceHandler(svcCtx))
		}
	}
	return r
}
