package service

import (
	"errors"
	"strings"
)

// Not-found sentinels, one per collection. Handlers map them to 404 with
// the entity-specific message.
var (
	ErrTeamMemberNotFound = errors.New("team member not found")
	ErrNewsNotFound       = errors.New("news not found")
	ErrPortfolioNotFound  = errors.New("portfolio company not found")
)

// ValidationError reports required fields that were missing or unparseable.
// Message, when set, overrides the generated text (some endpoints promise a
// fixed wording to clients).
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
