package pkg

import "math/rand"

const (
	alphanumericChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	numericChars      = "0123456789"
)

// RandomString returns a random reference string of the given length, drawn
// from uppercase alphanumerics, or digits only when numbersOnly is set.
//
// Job numbers built from this are human-readable references, not uniqueness
// guaranteed keys; collision probability is treated as negligible.
func RandomString(length int, numbersOnly bool) string {
	chars := alphanumericChars
	if numbersOnly {
		chars = numericChars
	}
	out := make([]byte, length)
	for i := range out {
		out[i] = chars[rand.Intn(len(chars))]
	}
	return string(out)
}
