package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	PacksBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePacksBought,
			Help: HelpTextPacksBought,
		},
		[]string{LabelPack},
	)

	PacksOpened = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePacksOpened,
			Help: HelpTextPacksOpened,
		},
	)

	CardsRevealed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCardsRevealed,
			Help: HelpTextCardsRevealed,
		},
		[]string{LabelTier},
	)

	CardsSold = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCardsSold,
			Help: HelpTextCardsSold,
		},
	)

	AchievementsClaimed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAchievementsClaimed,
			Help: HelpTextAchievementsClaimed,
		},
		[]string{LabelAchievement},
	)

	MoneyEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMoneyEarned,
			Help: HelpTextMoneyEarned,
		},
		[]string{LabelSource},
	)

	MoneySpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneySpent,
			Help: HelpTextMoneySpent,
		},
	)
)
