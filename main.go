package main

import (
	"flag"
	_ "net/http/pprof"

	"github.com/drophub/DropHubEnd/api/router"
	"github.com/drophub/DropHubEnd/app"
	"github.com/drophub/DropHubEnd/config"
	"github.com/drophub/DropHubEnd/logger/xzap"
	"github.com/drophub/DropHubEnd/service/svc"
	service "github.com/drophub/DropHubEnd/service/v1"
)

const (
	defaultConfigPath = "./config/config.toml"
)

func main() {
	conf := flag.String("conf", defaultConfigPath, "conf file path")
	flag.Parse()
	c, err := config.UnmarshalConfig(*conf)
	if err != nil {
		panic(err)
	}

	if _, err := xzap.SetUp(c.Log.Level, c.Log.Development); err != nil {
		panic(err)
	}

	serverCtx, err := svc.NewServiceContext(c)
	if err != nil {
		panic(err)
	}

	// 启动事件记录器，核心发出的记录异步归档到数据库
	service.StartRecorder(serverCtx)

	// Initialize router
	r := router.NewRouter(serverCtx)

	app, err := app.NewPlatform(c, r, serverCtx)
	if err != nil {
		panic(err)
	}
	app.Start()
}
