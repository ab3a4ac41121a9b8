package svc

import (
	"log"

	"walletapi/internal/chain"
	"walletapi/internal/config"
	"walletapi/internal/explorer"
)

type ServiceContext struct {
	Config   config.Config
	Chain    chain.Provider
	Explorer *explorer.Client

	closers []func()
}

func NewServiceContext(c config.Config) *ServiceContext {
	gateway, err := chain.NewGateway(c.Chain.RpcUrl, c.Chain.RpcTimeout)
	if err != nil {
		log.Fatalf("failed to init chain gateway: %v", err)
	}

	return &ServiceContext{
		Config:   c,
		Chain:    gateway,
		Explorer: explorer.NewClient(c.Explorer.ApiUrl, c.Explorer.ApiKey),
		closers:  []func(){gateway.Close},
	}
}

// Close releases connections opened on behalf of the service.
func (s *ServiceContext) Close() {
	for _, fn := range s.closers {
		fn()
	}
}
