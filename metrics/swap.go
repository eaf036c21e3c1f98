package metrics

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/sprinter-htlc/coordinator"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	RELEASE_TTL = time.Hour * 2
)

type SwapMetrics struct {
	startTimeGauge         metric.Int64ObservableGauge
	submittedOrdersCounter metric.Int64Counter
	finalizedOrdersCounter metric.Int64Counter
	admittedFillsCounter   metric.Int64Counter
	rejectedFillsCounter   metric.Int64Counter
	secretReleaseHistogram metric.Float64Histogram
	releaseStartTimeCache  *ttlcache.Cache[string, time.Time]
	opts                   metric.MeasurementOption
}

// NewSwapMetrics initializes metrics related to order and fill processing
func NewSwapMetrics(ctx context.Context, meter metric.Meter, env, id, version string) (*SwapMetrics, error) {
	opts := metric.WithAttributes(
		attribute.String("env", env),
		attribute.String("id", id),
		attribute.String("version", version),
	)

	startTime := time.Now().Unix()
	startTimeGauge, err := meter.Int64ObservableGauge(
		"swap.StartTimeSeconds",
		metric.WithDescription("Start time of the coordinator"),
		metric.WithInt64Callback(func(ctx context.Context, result metric.Int64Observer) error {
			result.Observe(startTime, opts)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	submittedOrdersCounter, err := meter.Int64Counter(
		"swap.SubmittedOrders",
		metric.WithDescription("Number of submitted orders"),
	)
	if err != nil {
		return nil, err
	}
	finalizedOrdersCounter, err := meter.Int64Counter(
		"swap.FinalizedOrders",
		metric.WithDescription("Number of orders that were filled or expired"),
	)
	if err != nil {
		return nil, err
	}
	admittedFillsCounter, err := meter.Int64Counter(
		"swap.AdmittedFills",
		metric.WithDescription("Number of admitted partial fills"),
	)
	if err != nil {
		return nil, err
	}
	rejectedFillsCounter, err := meter.Int64Counter(
		"swap.RejectedFills",
		metric.WithDescription("Number of rejected fill requests by rejection kind"),
	)
	if err != nil {
		return nil, err
	}
	secretReleaseHistogram, err := meter.Float64Histogram(
		"swap.SecretReleaseTime",
		metric.WithDescription("Seconds between fill admission and secret release"),
	)
	if err != nil {
		return nil, err
	}

	cache := ttlcache.New(
		ttlcache.WithTTL[string, time.Time](RELEASE_TTL),
	)
	go cache.Start()

	return &SwapMetrics{
		startTimeGauge:         startTimeGauge,
		submittedOrdersCounter: submittedOrdersCounter,
		finalizedOrdersCounter: finalizedOrdersCounter,
		admittedFillsCounter:   admittedFillsCounter,
		rejectedFillsCounter:   rejectedFillsCounter,
		secretReleaseHistogram: secretReleaseHistogram,
		releaseStartTimeCache:  cache,
		opts:                   opts,
	}, nil
}

func (m *SwapMetrics) TrackOrderSubmitted(route coordinator.Route) {
	m.submittedOrdersCounter.Add(context.Background(), 1, m.opts, routeAttributes(route))
}

func (m *SwapMetrics) TrackOrderFinalized(route coordinator.Route, status coordinator.Status) {
	m.finalizedOrdersCounter.Add(
		context.Background(),
		1,
		m.opts,
		routeAttributes(route),
		metric.WithAttributes(attribute.String("status", string(status))))
}

func (m *SwapMetrics) TrackFillAdmitted(route coordinator.Route) {
	m.admittedFillsCounter.Add(context.Background(), 1, m.opts, routeAttributes(route))
}

func (m *SwapMetrics) TrackFillRejected(kind coordinator.Kind) {
	m.rejectedFillsCounter.Add(context.Background(), 1, m.opts, metric.WithAttributes(attribute.String("kind", string(kind))))
}

func (m *SwapMetrics) StartSecretRelease(fillID string) {
	m.releaseStartTimeCache.Set(fillID, time.Now(), ttlcache.DefaultTTL)
}

func (m *SwapMetrics) EndSecretRelease(fillID string, status coordinator.FillStatus) {
	startTime := m.releaseStartTimeCache.Get(fillID)
	if startTime == nil {
		log.Warn().Msgf("Secret release start time for fill %s not found", fillID)
		return
	}
	m.releaseStartTimeCache.Delete(fillID)

	m.secretReleaseHistogram.Record(
		context.Background(),
		time.Since(startTime.Value()).Seconds(),
		m.opts,
		metric.WithAttributes(attribute.String("status", string(status))))
}

// Stop halts the expiry loop of the release timing cache.
func (m *SwapMetrics) Stop() {
	m.releaseStartTimeCache.Stop()
}

func routeAttributes(route coordinator.Route) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.Int64("sourceChain", int64(route.SourceChain)),
		attribute.Int64("destinationChain", int64(route.DestinationChain)),
	)
}
