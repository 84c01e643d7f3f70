package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRegistration       = errors.New("registration failed")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrDocumentNotFound   = errors.New("document not found")
	ErrUpload             = errors.New("upload failed")
	ErrAnalysis           = errors.New("analysis failed")
	ErrChat               = errors.New("chat failed")
	ErrInvalidInput       = errors.New("invalid input")
	ErrBadPayload         = errors.New("malformed backend payload")
	ErrServer             = errors.New("server error")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
