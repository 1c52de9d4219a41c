package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotConfigured is returned when no bot credential is configured and a
// resolve operation is attempted.
var ErrNotConfigured = errors.New("telegram api not configured")

// Resource names used in NotFoundError messages.
const (
	ResourcePack  = "Pack"
	ResourceEmoji = "Emoji"
)

// NotFoundError reports that the upstream service does not know the
// requested pack or emoji.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}
