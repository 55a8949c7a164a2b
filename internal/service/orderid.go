package service

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultOrderIDPrefix = "MK"

	base36     = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffixSize = 5
)

// NewOrderID returns <prefix>-<base36 unix ms>-<5 random base36 chars>, uppercased.
// Uniqueness is probabilistic only.
func NewOrderID(prefix string, now time.Time) string {
	suffix := make([]byte, suffixSize)
	for i := range suffix {
		suffix[i] = base36[rand.Intn(len(base36))]
	}
	return strings.ToUpper(prefix + "-" + strconv.FormatInt(now.UnixMilli(), 36) + "-" + string(suffix))
}
