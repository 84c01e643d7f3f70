package backend

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/lexidocs/lexi-cli/internal/core/domain"
)

type statusError struct {
	operation string
	status    int
	body      string
}

func newStatusError(operation string, resp *http.Response) *statusError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	return &statusError{
		operation: operation,
		status:    resp.StatusCode,
		body:      strings.TrimSpace(string(raw)),
	}
}

func (e *statusError) Error() string {
	if e.body == "" {
		return fmt.Sprintf("backend %s status %d", e.operation, e.status)
	}
	return fmt.Sprintf("backend %s status %d: %s", e.operation, e.status, e.body)
}

// wrapCall maps a transport failure onto the typed error taxonomy. HTTP
// statuses resolve through byStatus first; anything else (network faults,
// unmapped statuses) falls back to the operation's semantic kind.
func wrapCall(operation string, err error, byStatus map[int]error, fallback error) error {
	if err == nil {
		return nil
	}
	kind := fallback
	var se *statusError
	if errors.As(err, &se) {
		if mapped, ok := byStatus[se.status]; ok {
			kind = mapped
		}
	}
	return domain.WrapError(kind, operation, err)
}
