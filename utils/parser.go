package utils

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Valerii9116/TimaxPaySolanaTransak/types"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ParseWidgetConfig parses and validates a ramp widget request body.
func ParseWidgetConfig(data []byte) (*types.WidgetConfig, error) {
	var cfg types.WidgetConfig

	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &types.TerminalError{
			Code:    types.ErrInvalidRequest,
			Message: fmt.Sprintf("failed to parse widget config: %v", err),
		}
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, &types.TerminalError{
			Code:    types.ErrInvalidRequest,
			Message: fmt.Sprintf("widget config validation failed: %v", err),
		}
	}

	return &cfg, nil
}

// ValidateStruct runs tag validation on any request type.
func ValidateStruct(v any) error {
	return validate.Struct(v)
}
