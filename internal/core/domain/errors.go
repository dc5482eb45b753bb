package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrNotFound      = errors.New("document not found")
	ErrAlreadyExists = errors.New("document already exists")
	ErrInvalidKey    = errors.New("invalid document key")
)

var keyPattern = regexp.MustCompile(`^[a-zA-Z0-9._:-]+$`)

// ValidateKey checks a client-supplied document key. Keys travel in URL paths
// and store lookups, so only a conservative character set is accepted.
func ValidateKey(key string) error {
	if key == "" || !keyPattern.MatchString(key) {
		return ErrInvalidKey
	}
	return nil
}

// FieldViolation names one schema constraint a payload broke.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrSchemaViolation carries every constraint a payload broke, never just the
// first one. Handlers render the full list back to the client.
type ErrSchemaViolation struct {
	Violations []FieldViolation
}

func (e *ErrSchemaViolation) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		if v.Field == "" {
			parts = append(parts, v.Message)
			continue
		}
		parts = append(parts, v.Field+": "+v.Message)
	}
	return fmt.Sprintf("schema validation failed: %s", strings.Join(parts, "; "))
}
