// Package daily derives a deterministic random source per UTC date, so every
// daily session started on the same day gets the same secrets.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"math/rand/v2"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed returns the PCG seed pair for a date: the first 16 bytes of
// HMAC-SHA256(salt, YYYY-MM-DD).
func Seed(date time.Time, salt string) (uint64, uint64) {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8]), binary.BigEndian.Uint64(sum[8:16])
}

// Rand returns a generator seeded for date. The sequence is identical for
// any two calls with the same UTC day and salt.
func Rand(date time.Time, salt string) *rand.Rand {
	s1, s2 := Seed(date, salt)
	return rand.New(rand.NewPCG(s1, s2))
}
