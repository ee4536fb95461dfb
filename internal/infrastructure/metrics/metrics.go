package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the bank.
type Metrics struct {
	// Account metrics
	AccountsOpened prometheus.Counter

	// Operation metrics, labelled by outcome (completed, failed)
	Deposits    *prometheus.CounterVec
	Withdrawals *prometheus.CounterVec
	Transfers   *prometheus.CounterVec

	// Amount distributions
	DepositAmount  prometheus.Histogram
	TransferAmount prometheus.Histogram

	// Fault metrics, labelled by taxonomy code
	Faults *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		AccountsOpened: promauto.NewCounter(prometheus.CounterOpts{
			Name: "minibank_accounts_opened_total",
			Help: "Total number of accounts opened",
		}),
		Deposits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minibank_deposits_total",
				Help: "Total number of deposits by outcome",
			},
			[]string{"outcome"},
		),
		Withdrawals: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minibank_withdrawals_total",
				Help: "Total number of withdrawals by outcome",
			},
			[]string{"outcome"},
		),
		Transfers: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minibank_transfers_total",
				Help: "Total number of transfers by outcome",
			},
			[]string{"outcome"},
		),
		DepositAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "minibank_deposit_amount",
			Help:    "Deposit amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
		}),
		TransferAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "minibank_transfer_amount",
			Help:    "Transfer amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
		}),
		Faults: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minibank_faults_total",
				Help: "Total banking faults by code",
			},
			[]string{"code"},
		),
	}
}

// Outcome labels.
const (
	OutcomeCompleted = "completed"
	OutcomeFailed    = "failed"
)
