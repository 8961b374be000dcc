package graphql

import (
	"context"
	"time"

	"github.com/tournevent/carriertrack/internal/telemetry"
	"github.com/tournevent/carriertrack/pkg/tracknum"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Resolver is the root resolver for the GraphQL schema.
// It holds dependencies needed by all resolvers.
type Resolver struct {
	Registry *tracknum.Registry
	Logger   *otelzap.Logger
	Metrics  *telemetry.Metrics
}

// NewResolver creates a new resolver with the given dependencies.
func NewResolver(registry *tracknum.Registry, logger *otelzap.Logger, metrics *telemetry.Metrics) *Resolver {
	return &Resolver{
		Registry: registry,
		Logger:   logger,
		Metrics:  metrics,
	}
}

// Health reports service liveness.
func (r *Resolver) Health(ctx context.Context) (bool, error) {
	return true, nil
}

// Carriers lists the registered carrier services in dispatch order.
func (r *Resolver) Carriers(ctx context.Context) ([]CarrierInfo, error) {
	services := r.Registry.Services()
	infos := make([]CarrierInfo, len(services))
	for i, svc := range services {
		infos[i] = CarrierInfo{
			Service: string(svc),
			Carrier: string(svc.Carrier()),
		}
	}
	return infos, nil
}

// Classify classifies a candidate tracking number and builds its tracking
// URL.
func (r *Resolver) Classify(ctx context.Context, number string) (*Classification, error) {
	start := time.Now()

	result := &Classification{Candidate: number}

	svc := r.Registry.Classify(number)
	if svc == tracknum.ServiceNone {
		r.Metrics.RecordClassification("classify", "none", "no_match", time.Since(start).Seconds())
		r.Metrics.RecordNoMatch()
		r.Logger.Info("No carrier matched",
			zap.Int("candidate_length", len(number)),
		)
		return result, nil
	}

	carrier := string(svc.Carrier())
	service := string(svc)
	result.Valid = true
	result.Carrier = &carrier
	result.Service = &service
	if url, ok := r.Registry.TrackingURL(number); ok {
		result.TrackingURL = &url
	}

	r.Metrics.RecordClassification("classify", carrier, "match", time.Since(start).Seconds())
	r.Logger.Info("Classified tracking number",
		zap.String("carrier", carrier),
		zap.String("service", service),
	)
	return result, nil
}

// TrackingURL returns the tracking page URL for number, or nil when it
// validates for no carrier.
func (r *Resolver) TrackingURL(ctx context.Context, number string) (*string, error) {
	url, ok := r.Registry.TrackingURL(number)
	if !ok {
		return nil, nil
	}
	return &url, nil
}
