// Package fedex validates FedEx Express and FedEx Ground tracking numbers.
package fedex

import (
	"strings"

	"github.com/tournevent/carriertrack/pkg/tracknum"
)

const (
	expressLength = 12
	groundWindow  = 15
)

// expressWeights is the weight cycle applied to the first 11 Express digits.
var expressWeights = [3]int{3, 1, 7}

// groundPrefixes are the accepted FedEx Ground barcode prefixes. "00" is a
// tolerated variant of the "96" application identifier.
var groundPrefixes = []string{"96", "00"}

// Express checks FedEx Express tracking numbers (12-digit mod-11 scheme).
type Express struct{}

// NewExpress creates a new FedEx Express validator.
func NewExpress() *Express {
	return &Express{}
}

// Service returns the service tag.
func (e *Express) Service() tracknum.Service {
	return tracknum.ServiceFedExExpress
}

// Valid reports whether candidate is exactly 12 digits whose last digit
// matches the [3,1,7]-weighted sum of the first 11, mod 11, with a remainder
// of 10 mapping to check digit 0.
func (e *Express) Valid(candidate string) bool {
	if len(candidate) != expressLength {
		return false
	}

	total := 0
	for i := 0; i < expressLength-1; i++ {
		c := candidate[i]
		if c < '0' || c > '9' {
			return false
		}
		total += expressWeights[i%3] * int(c-'0')
	}

	check := total % 11
	if check == 10 {
		check = 0
	}

	last := candidate[expressLength-1]
	return last >= '0' && last <= '9' && int(last-'0') == check
}

// Ground checks FedEx Ground tracking numbers (15-digit right-to-left mod-10
// scheme). Barcodes longer than 15 characters carry extra leading data; only
// the rightmost 15 characters enter the checksum.
type Ground struct{}

// NewGround creates a new FedEx Ground validator.
func NewGround() *Ground {
	return &Ground{}
}

// Service returns the service tag.
func (g *Ground) Service() tracknum.Service {
	return tracknum.ServiceFedExGround
}

// Valid reports whether candidate is a well-formed FedEx Ground barcode: at
// least 15 characters, an accepted prefix, and a rightmost-15 window whose
// last digit matches the shared right-to-left mod-10 check digit.
func (g *Ground) Valid(candidate string) bool {
	if len(candidate) < groundWindow || !hasAnyPrefix(candidate, groundPrefixes) {
		return false
	}

	window := candidate[len(candidate)-groundWindow:]
	digit, ok := tracknum.RightToLeftCheckDigit(window[:groundWindow-1])
	if !ok {
		return false
	}

	last := window[groundWindow-1]
	return last >= '0' && last <= '9' && int(last-'0') == digit
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
