package tracknum

// RightToLeftCheckDigit computes the alternating mod-10 check digit shared by
// the FedEx Ground and USPS schemes. body holds the window digits with the
// trailing check character excluded; each digit is weighted by its distance
// from the right edge of the full window (body plus check character): digits
// at even distances are summed and tripled, the rest are summed as-is.
//
// The raw formula 10 - (total mod 10) yields 10 when the total is a multiple
// of 10; the returned digit is reduced mod 10 so such totals compare against
// a '0' check character. ok is false when body contains a non-digit.
func RightToLeftCheckDigit(body string) (digit int, ok bool) {
	width := len(body) + 1
	var evenSum, oddSum int
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		d := int(c - '0')
		if (width-i)%2 == 0 {
			evenSum += d
		} else {
			oddSum += d
		}
	}
	total := evenSum*3 + oddSum
	return (10 - total%10) % 10, true
}
