package services

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderNumber_Format(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 30, 15, 0, time.UTC)

	number := GenerateOrderNumber(now)

	assert.Regexp(t, regexp.MustCompile(`^ORD-20260831143015-[0-9A-F]{8}$`), number)
}

func TestGenerateOrderNumber_UsesUTCPrefix(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	local := time.Date(2026, 8, 31, 5, 0, 0, 0, loc)

	number := GenerateOrderNumber(local)

	assert.True(t, strings.HasPrefix(number, "ORD-20260831000000-"))
}

func TestGenerateOrderNumber_RandomSuffix(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		number := GenerateOrderNumber(now)
		assert.False(t, seen[number], "duplicate order number %s", number)
		seen[number] = true
	}
}
