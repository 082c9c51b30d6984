package auth

import (
	"crypto/rand"
	"math/big"
)

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*_+=?"

// GeneratePassword returns a random one-time password for invited users.
func GeneratePassword(length int) string {
	if length <= 0 {
		length = 8
	}
	buf := make([]byte, length)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform entropy source is
			// broken; fall back to the first character rather than panic.
			buf[i] = passwordAlphabet[0]
			continue
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}
	return string(buf)
}
