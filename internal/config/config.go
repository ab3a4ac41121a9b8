package config

import (
	"time"

	"github.com/zeromicro/go-zero/rest"
)

type ChainConf struct {
	// RpcUrl is required; the process refuses to start without it.
	RpcUrl      string        `json:",env=POLYGON_RPC"`
	NetworkName string        `json:",default=Polygon,env=NETWORK_NAME"`
	ExplorerUrl string        `json:",default=https://polygonscan.com,env=EXPLORER_URL"`
	RpcTimeout  time.Duration `json:",default=15s"`
}

type ExplorerConf struct {
	ApiUrl string `json:",optional,env=EXPLORER_API_URL"`
	ApiKey string `json:",optional,env=EXPLORER_API_KEY"`
}

type CorsConf struct {
	Origins []string `json:",optional"`
}

type Config struct {
	rest.RestConf
	Chain    ChainConf
	Explorer ExplorerConf `json:",optional"`
	Cors     CorsConf     `json:",optional"`
}
