package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collectors register on the default registry, which the go-zero dev server
// exposes on its metrics path.
var (
	WalletsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "walletapi",
		Name:      "wallets_generated_total",
		Help:      "Number of wallets generated.",
	})

	SendsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletapi",
		Name:      "sends_total",
		Help:      "Native transfer attempts by outcome (ok or error kind).",
	}, []string{"outcome"})

	StatusLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletapi",
		Name:      "status_lookups_total",
		Help:      "Transaction status lookups by resulting status.",
	}, []string{"status"})

	DegradedInfos = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletapi",
		Name:      "wallet_info_degraded_total",
		Help:      "Wallet-info sub-fetches that failed and were reported as unavailable.",
	}, []string{"field"})
)
