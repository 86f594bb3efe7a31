package snapshot

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yourusername/scoreline/internal/models"
)

var validate = validator.New()

// ValidationError reports every invalid field of a snapshot
type ValidationError struct {
	Fields validator.ValidationErrors
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("invalid market snapshot:")
	for _, fe := range e.Fields {
		b.WriteString("\n- ")
		b.WriteString(describe(fe))
	}
	return b.String()
}

// Unwrap exposes the underlying validator errors
func (e *ValidationError) Unwrap() error {
	return e.Fields
}

// Validate checks the snapshot's structural constraints. Prices are not checked
// here; unusable prices only cause their market to be skipped.
func Validate(s *models.MarketSnapshot) error {
	if s == nil {
		return models.ErrNilSnapshot
	}
	if err := validate.Struct(s); err != nil {
		if fields, ok := err.(validator.ValidationErrors); ok {
			return &ValidationError{Fields: fields}
		}
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "MarketSnapshot.")

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("field '%s' is required", field)
	case "min":
		return fmt.Sprintf("field '%s' needs at least %s entries", field, fe.Param())
	case "max":
		return fmt.Sprintf("field '%s' allows at most %s entries", field, fe.Param())
	case "gte":
		return fmt.Sprintf("field '%s' must be >= %s, got %v", field, fe.Param(), fe.Value())
	case "lte":
		return fmt.Sprintf("field '%s' must be <= %s, got %v", field, fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("field '%s' failed validation: %s", field, fe.Tag())
	}
}
