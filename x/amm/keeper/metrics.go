package keeper

import (
	"math/big"
	"sync"

	sdkmath "cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the AMM module
type Metrics struct {
	// Swap metrics
	SwapsTotal        *prometheus.CounterVec
	SwapVolume        *prometheus.CounterVec
	SwapFeesCollected *prometheus.CounterVec

	// Liquidity metrics
	LiquidityAdded   *prometheus.CounterVec
	LiquidityRemoved *prometheus.CounterVec
	PoolReserves     *prometheus.GaugeVec
	ClaimSupply      *prometheus.GaugeVec

	// Pool metrics
	PoolsTotal       prometheus.Gauge
	PoolCreationRate prometheus.Counter

	// Registry metrics
	RegistriesTotal prometheus.Gauge
	FeeUpdates      *prometheus.CounterVec
}

var (
	ammMetricsOnce sync.Once
	ammMetrics     *Metrics
)

// NewMetrics creates and registers AMM metrics (singleton pattern)
func NewMetrics() *Metrics {
	ammMetricsOnce.Do(func() {
		ammMetrics = &Metrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "reef",
					Subsystem: "amm",
					Name:      "swaps_total",
					Help:      "Total number of swaps executed",
				},
				[]string{"pool", "denom_in", "denom_out"},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "reef",
					Subsystem: "amm",
					Name:      "swap_volume_total",
					Help:      "Total swap input volume in base units",
				},
				[]string{"pool", "denom"},
			),
			SwapFeesCollected: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "reef",
					Subsystem: "amm",
					Name:      "swap_fees_collected_total",
					Help:      "Total swap fees retained by pools",
				},
				[]string{"pool", "denom"},
			),

			LiquidityAdded: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "reef",
					Subsystem: "amm",
					Name:      "liquidity_added_total",
					Help:      "Total liquidity deposited into pools",
				},
				[]string{"pool", "denom"},
			),
			LiquidityRemoved: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "reef",
					Subsystem: "amm",
					Name:      "liquidity_removed_total",
					Help:      "Total liquidity withdrawn from pools",
				},
				[]string{"pool", "denom"},
			),
			PoolReserves: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "reef",
					Subsystem: "amm",
					Name:      "pool_reserves",
					Help:      "Current pool reserves",
				},
				[]string{"pool", "denom"},
			),
			ClaimSupply: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "reef",
					Subsystem: "amm",
					Name:      "claim_supply",
					Help:      "Circulating claim-token supply per pool",
				},
				[]string{"pool"},
			),

			PoolsTotal: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "reef",
					Subsystem: "amm",
					Name:      "pools_total",
					Help:      "Total number of liquidity pools",
				},
			),
			PoolCreationRate: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "reef",
					Subsystem: "amm",
					Name:      "pool_creations_total",
					Help:      "Total number of pools created",
				},
			),

			RegistriesTotal: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "reef",
					Subsystem: "amm",
					Name:      "registries_total",
					Help:      "Total number of fee registries",
				},
			),
			FeeUpdates: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "reef",
					Subsystem: "amm",
					Name:      "fee_updates_total",
					Help:      "Registry fee rate updates",
				},
				[]string{"registry"},
			),
		}
	})
	return ammMetrics
}

// GetMetrics returns the singleton AMM metrics instance
func GetMetrics() *Metrics {
	if ammMetrics == nil {
		return NewMetrics()
	}
	return ammMetrics
}

// metricAmount converts a ledger amount to a float for metric export.
// Precision loss past 53 bits is acceptable for monitoring.
func metricAmount(a sdkmath.Int) float64 {
	f, _ := new(big.Float).SetInt(a.BigInt()).Float64()
	return f
}
