package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"walletapi/internal/config"
	"walletapi/internal/handler"
	"walletapi/internal/svc"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/walletapi.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c, conf.UseEnv())

	server := rest.MustNewServer(c.RestConf, rest.WithCors(c.Cors.Origins...))
	defer server.Stop()

	ctx := svc.NewServiceContext(c)
	defer ctx.Close()
	handler.RegisterHandlers(server, ctx)

	// 设置优雅退出
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	logx.Infof("network: %s, explorer: %s", c.Chain.NetworkName, c.Chain.ExplorerUrl)

	go func() {
		server.Start()
	}()

	<-quit
	fmt.Println("shutting down...")
}
