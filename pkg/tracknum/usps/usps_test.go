package usps_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tournevent/carriertrack/pkg/tracknum"
	"github.com/tournevent/carriertrack/pkg/tracknum/usps"
)

func TestValidator_Service(t *testing.T) {
	assert.Equal(t, tracknum.ServiceUSPS, usps.New().Service())
}

func TestValidator_Valid(t *testing.T) {
	v := usps.New()

	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		// Body "910001234567890123456" totals 158, check digit 2.
		{"valid 91 prefix", "9100012345678901234562", true},
		// Body "710005554443332221119" totals 136, check digit 4.
		{"valid 71 prefix", "7100055544433322211194", true},
		// Longer barcodes only use the rightmost 22 characters.
		{"longer barcode", "919100012345678901234562", true},

		{"wrong check digit", "9100012345678901234567", false},
		{"twenty-one characters", "910001234567890123456", false},
		{"unaccepted prefix", "9200012345678901234562", false},
		{"zip routing prefix", "4200012345678901234562", false},
		{"letter in window", "91000123456789012345A2", false},
		{"letter check", "910001234567890123456X", false},
		{"empty", "", false},
		// Prefix gate applies to the whole candidate, not the window.
		{"long barcode bad leading prefix", "009100012345678901234562", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Valid(tt.candidate))
		})
	}
}
