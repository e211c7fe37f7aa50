package config

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/williamokano/contract_sync/pkg/storage"
)

// Validate checks a resolved configuration against Schema. Every violation is
// reported in a single error wrapping storage.ErrInvalidConfig.
func Validate(cfg *ContractConfig) error {
	schemaLoader := gojsonschema.NewStringLoader(Schema)
	documentLoader := gojsonschema.NewGoLoader(cfg)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate schema: %w", err)
	}

	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if s, ok := settingByName(field); ok {
			problems = append(problems, fmt.Sprintf("%s (set %s): %s", field, s.Hint(), desc.Description()))
			continue
		}
		problems = append(problems, desc.String())
	}

	return fmt.Errorf("%w: %s", storage.ErrInvalidConfig, strings.Join(problems, "; "))
}
