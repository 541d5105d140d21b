package xid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewTerminalID returns a terminal identifier in the TERM-XXXXXXXX form the
// backend registry expects.
func NewTerminalID() string {
	return fmt.Sprintf("TERM-%s", strings.ToUpper(uuid.NewString()[:8]))
}

// New returns a prefixed unique id, used for offline queue entries and
// client-side idempotency keys.
func New(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}
