package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid is returned, wrapped with the offending fields, for a
// configuration that fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// minGeneratedNodes mirrors the smallest instance the random sources build.
const minGeneratedNodes = 3

var validate = validator.New()

// Validate checks field constraints and the rules that span fields.
func (c *Config) Validate() error {
	var problems []string
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		for _, fe := range verrs {
			problems = append(problems, formatFieldError(fe))
		}
	}
	if c.Instance.Source != SourceCSV && c.Instance.Nodes < minGeneratedNodes {
		problems = append(problems, fmt.Sprintf("instance.nodes must be at least %d for source %q", minGeneratedNodes, c.Instance.Source))
	}
	if c.Solve.Timeout.Duration < 0 {
		problems = append(problems, "solve.timeout must not be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}

	return nil
}

// formatFieldError renders one validator failure as section.field message.
func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(strings.TrimPrefix(e.Namespace(), "Config."))

	switch e.Tag() {
	case "required_if":
		return fmt.Sprintf("%s is required when %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "ltfield":
		return fmt.Sprintf("%s must be less than %s", field, strings.ToLower(e.Param()))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
