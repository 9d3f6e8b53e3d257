package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hance08/teller/internal/config"
)

var validate = validator.New()

// ValidateConfig checks the loaded configuration, including every seed
// account, and reports all violations at once.
func ValidateConfig(cfg *config.Config) error {
	if cfg == nil {
		return errors.New("configuration is missing")
	}

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("failed to validate configuration: %w", err)
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")

	// never echo a PIN back; composite values may contain one
	if fe.Field() == "PIN" || !isScalar(fe.Kind()) {
		return fmt.Sprintf("%s must be %s", field, ruleText(fe))
	}
	if fe.Value() == nil || fe.Value() == "" {
		return fmt.Sprintf("%s must be %s", field, ruleText(fe))
	}
	return fmt.Sprintf("%s must be %s (got %v)", field, ruleText(fe), fe.Value())
}

func isScalar(kind reflect.Kind) bool {
	switch kind {
	case reflect.Slice, reflect.Array, reflect.Struct, reflect.Map, reflect.Ptr, reflect.Interface:
		return false
	default:
		return true
	}
}

func ruleText(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "set"
	case "numeric":
		return "numeric"
	case "alpha":
		return "letters only"
	case "len":
		return fmt.Sprintf("exactly %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("one of [%s]", fe.Param())
	default:
		return fmt.Sprintf("valid (%s)", fe.Tag())
	}
}
