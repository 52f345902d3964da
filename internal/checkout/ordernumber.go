package checkout

import (
	"crypto/rand"
	"math/big"
	"time"
)

const (
	orderNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	orderNumberSuffix   = 6
)

// NewOrderNumber returns a human readable order number of the form
// YYYYMMDD-XXXXXX. The suffix is random, so uniqueness is enforced by the
// orders table and callers retry on conflict.
func NewOrderNumber(now time.Time) string {
	suffix := make([]byte, orderNumberSuffix)
	limit := big.NewInt(int64(len(orderNumberAlphabet)))

	for i := range suffix {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			// crypto/rand does not fail on supported platforms
			panic(err)
		}
		suffix[i] = orderNumberAlphabet[n.Int64()]
	}

	return now.UTC().Format("20060102") + "-" + string(suffix)
}
