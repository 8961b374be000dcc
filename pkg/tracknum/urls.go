package tracknum

// Tracking page URL templates by carrier. The tracking number is substituted
// verbatim; no URL escaping is applied, so a number containing query
// metacharacters passes through untouched. Known limitation, kept from the
// original templates.
const (
	upsURLPrefix   = "http://wwwapps.ups.com/tracking/tracking.cgi?tracknum="
	fedexURLPrefix = "http://www.fedex.com/Tracking?tracknumbers="
	uspsURLPrefix  = "http://trkcnfrm1.smi.usps.com/PTSInternetWeb/InterLabelInquiry.do?strOrigTrackNum="
)

// URLFor returns the carrier tracking page URL for number. ok is false when
// the carrier has no URL template.
func URLFor(carrier Carrier, number string) (url string, ok bool) {
	switch carrier {
	case CarrierUPS:
		return upsURLPrefix + number, true
	case CarrierFedEx:
		return fedexURLPrefix + number, true
	case CarrierUSPS:
		return uspsURLPrefix + number, true
	default:
		return "", false
	}
}
