package usecase

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"
)

const orderNumberAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

var orderNumberNow = time.Now

// NewOrderNumber builds a customer-facing order number from the last six
// digits of the current unix-millisecond clock plus a five character random
// suffix. Uniqueness is ultimately enforced by the storage layer.
func NewOrderNumber() string {
	millis := strconv.FormatInt(orderNumberNow().UnixMilli(), 10)
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}
	return millis + randomSuffix(5)
}

func randomSuffix(length int) string {
	out := make([]byte, length)
	max := big.NewInt(int64(len(orderNumberAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform source is broken
			out[i] = orderNumberAlphabet[0]
			continue
		}
		out[i] = orderNumberAlphabet[n.Int64()]
	}
	return string(out)
}
