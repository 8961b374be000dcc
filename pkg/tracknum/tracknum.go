// Package tracknum classifies shipment tracking numbers by their carrier
// check-digit schemes.
package tracknum

// Carrier identifies a shipping carrier.
type Carrier string

const (
	CarrierUPS   Carrier = "ups"
	CarrierFedEx Carrier = "fedex"
	CarrierUSPS  Carrier = "usps"
	CarrierNone  Carrier = ""
)

// Service identifies the carrier service whose check-digit scheme a tracking
// number satisfies. FedEx Express and FedEx Ground use different schemes but
// share one carrier.
type Service string

const (
	ServiceUPS          Service = "ups"
	ServiceFedExExpress Service = "fedex_express"
	ServiceFedExGround  Service = "fedex_ground"
	ServiceUSPS         Service = "usps"
	ServiceNone         Service = ""
)

// Carrier returns the carrier the service belongs to.
func (s Service) Carrier() Carrier {
	switch s {
	case ServiceUPS:
		return CarrierUPS
	case ServiceFedExExpress, ServiceFedExGround:
		return CarrierFedEx
	case ServiceUSPS:
		return CarrierUSPS
	default:
		return CarrierNone
	}
}

// Validator defines the interface that all carrier validators must implement.
type Validator interface {
	// Service returns the service tag this validator matches
	// (e.g. "ups", "fedex_ground").
	Service() Service

	// Valid reports whether candidate is a well-formed tracking number for
	// this service. The candidate must already be trimmed of surrounding
	// whitespace. Valid is total over all strings: it never panics and
	// performs no I/O.
	Valid(candidate string) bool
}
