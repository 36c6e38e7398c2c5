package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateOrderNumber builds a human-readable order number from a UTC time
// prefix and a short random suffix, e.g. ORD-20260831143015-9F2C41AB.
// Collisions are not retried here; the unique index on orders.number rejects
// the losing insert.
func GenerateOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", now.UTC().Format("20060102150405"), suffix)
}
