// Package usps validates USPS delivery confirmation tracking numbers.
package usps

import (
	"strings"

	"github.com/tournevent/carriertrack/pkg/tracknum"
)

const window = 22

// prefixes are the accepted USPS service prefixes.
var prefixes = []string{"91", "71", "73", "77", "81"}

// zipPrefix marks ZIP+4 routing barcodes, which never classify. None of the
// accepted prefixes start with "42", so the guard is unreachable through the
// prefix gate; it is kept from the original scheme.
const zipPrefix = "420"

// Validator checks USPS tracking numbers.
type Validator struct{}

// New creates a new USPS validator.
func New() *Validator {
	return &Validator{}
}

// Service returns the service tag.
func (v *Validator) Service() tracknum.Service {
	return tracknum.ServiceUSPS
}

// Valid reports whether candidate is a well-formed USPS confirmation number:
// at least 22 characters, an accepted service prefix, not a ZIP+4 routing
// barcode, and a rightmost-22 window whose last digit matches the shared
// right-to-left mod-10 check digit. Barcodes longer than 22 characters carry
// extra leading data; only the rightmost 22 characters enter the checksum.
func (v *Validator) Valid(candidate string) bool {
	if len(candidate) < window {
		return false
	}
	if !hasAnyPrefix(candidate, prefixes) || strings.HasPrefix(candidate, zipPrefix) {
		return false
	}

	win := candidate[len(candidate)-window:]
	digit, ok := tracknum.RightToLeftCheckDigit(win[:window-1])
	if !ok {
		return false
	}

	last := win[window-1]
	return last >= '0' && last <= '9' && int(last-'0') == digit
}

func hasAnyPrefix(s string, set []string) bool {
	for _, p := range set {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
