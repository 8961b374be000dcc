package tracknum

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Registry holds carrier validators in dispatch priority order.
type Registry struct {
	validators []Validator
	mu         sync.RWMutex
}

// NewRegistry creates a new empty validator registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a validator to the registry. Dispatch priority is
// registration order; registering a service twice replaces the earlier
// validator in place.
func (r *Registry) Register(v Validator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.validators {
		if existing.Service() == v.Service() {
			r.validators[i] = v
			return
		}
	}
	r.validators = append(r.validators, v)
}

// Get returns the validator for a service.
func (r *Registry) Get(svc Service) (Validator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, v := range r.validators {
		if v.Service() == svc {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, svc)
}

// Services returns the registered service tags in dispatch order.
func (r *Registry) Services() []Service {
	r.mu.RLock()
	defer r.mu.RUnlock()
	services := make([]Service, len(r.validators))
	for i, v := range r.validators {
		services[i] = v.Service()
	}
	return services
}

// Count returns the number of registered validators.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.validators)
}

// Classify trims surrounding whitespace from raw and returns the first
// registered service whose validator accepts it, or ServiceNone. The
// registered prefix and length gates are mutually exclusive, so at most one
// validator accepts in practice; the fixed order still resolves any future
// overlap deterministically.
func (r *Registry) Classify(raw string) Service {
	candidate := strings.TrimSpace(raw)
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, v := range r.validators {
		if v.Valid(candidate) {
			return v.Service()
		}
	}
	return ServiceNone
}

// Result describes a successful classification.
type Result struct {
	Service     Service
	Carrier     Carrier
	TrackingURL string
}

// Lookup classifies raw and builds the carrier tracking page URL. The raw
// candidate is substituted into the URL exactly as given, surrounding
// whitespace included. Returns ErrNoMatch when no validator accepts.
func (r *Registry) Lookup(raw string) (*Result, error) {
	svc := r.Classify(raw)
	if svc == ServiceNone {
		return nil, ErrNoMatch
	}
	url, _ := URLFor(svc.Carrier(), raw)
	return &Result{
		Service:     svc,
		Carrier:     svc.Carrier(),
		TrackingURL: url,
	}, nil
}

// TrackingURL returns the tracking page URL for raw. ok is false when raw
// validates for no registered service.
func (r *Registry) TrackingURL(raw string) (url string, ok bool) {
	result, err := r.Lookup(raw)
	if err != nil {
		return "", false
	}
	return result.TrackingURL, true
}

// CheckAll runs every registered validator over the candidate in parallel and
// returns the verdict per service. Validators are pure functions, so no
// coordination beyond collecting the results is needed.
func (r *Registry) CheckAll(raw string) map[Service]bool {
	candidate := strings.TrimSpace(raw)

	r.mu.RLock()
	validators := make([]Validator, len(r.validators))
	copy(validators, r.validators)
	r.mu.RUnlock()

	results := make(map[Service]bool, len(validators))
	mu := &sync.Mutex{}

	var g errgroup.Group
	for _, v := range validators {
		v := v
		g.Go(func() error {
			ok := v.Valid(candidate)
			mu.Lock()
			results[v.Service()] = ok
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	return results
}
