// Package mock provides a mock validator implementation for testing.
package mock

import (
	"github.com/tournevent/carriertrack/pkg/tracknum"
)

// Validator is a configurable validator for testing.
type Validator struct {
	service tracknum.Service
	accept  func(string) bool
}

// New creates a new mock validator. A nil accept function rejects everything.
func New(service tracknum.Service, accept func(string) bool) *Validator {
	return &Validator{service: service, accept: accept}
}

// AcceptAll creates a mock validator that accepts every candidate.
func AcceptAll(service tracknum.Service) *Validator {
	return New(service, func(string) bool { return true })
}

// Service returns the service tag.
func (v *Validator) Service() tracknum.Service {
	return v.service
}

// Valid reports the configured verdict for candidate.
func (v *Validator) Valid(candidate string) bool {
	if v.accept == nil {
		return false
	}
	return v.accept(candidate)
}
