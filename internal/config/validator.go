package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	// Register custom validation for the comparison mode
	_ = validate.RegisterValidation("comparemode", func(fl validator.FieldLevel) bool {
		mode := fl.Field().String()
		return mode == "" || mode == "mutual" || mode == "target"
	})

	// Register custom validation for log level
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		level := fl.Field().String()
		if level == "" {
			return true
		}
		_, err := zerolog.ParseLevel(strings.ToLower(level))
		return err == nil
	})

	// Register custom validation for log format
	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "", "json", "console", "text":
			return true
		default:
			return false
		}
	})

	if err := validate.Struct(cfg); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("field '%s' failed on '%s' rule", fieldErr.Namespace(), fieldErr.Tag()))
			}
			return fmt.Errorf("config validation failed: %s", strings.Join(messages, "; "))
		}
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}
