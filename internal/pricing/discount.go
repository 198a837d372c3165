package pricing

// Discount is the loyalty policy: a flat 10% of the subtotal, floored
// to whole KRW, for recognized repeat customers. Loyalty status comes
// from the session and is treated as an opaque boolean here.
func Discount(subtotal int64, loyal bool) int64 {
	if !loyal {
		return 0
	}
	return subtotal / 10
}

// Total is the checkout amount after the loyalty discount.
func Total(subtotal int64, loyal bool) int64 {
	return subtotal - Discount(subtotal, loyal)
}
