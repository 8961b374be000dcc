package graphql

// Classification is the result of classifying a candidate tracking number.
// Carrier, Service, and TrackingURL are nil when the candidate validated for
// no carrier.
type Classification struct {
	Candidate   string  `json:"candidate"`
	Valid       bool    `json:"valid"`
	Carrier     *string `json:"carrier,omitempty"`
	Service     *string `json:"service,omitempty"`
	TrackingURL *string `json:"trackingUrl,omitempty"`
}

// CarrierInfo describes one registered carrier service.
type CarrierInfo struct {
	Service string `json:"service"`
	Carrier string `json:"carrier"`
}
