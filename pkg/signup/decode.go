package signup

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var ErrInvalidRequest = errors.New("invalid sign-up request")

// requestSchema describes the wire shape of ManualSignUpRequest
const requestSchema = `{
    "$schema": "http://json-schema.org/draft-07/schema#",
    "type": "object",
    "properties": {
        "signUpType": {"type": "string", "enum": ["manual"]},
        "userName": {"type": "string"},
        "password": {"type": "string"},
        "email": {"type": "string"},
        "countryCode": {"type": "integer"},
        "mobileNumber": {"type": "integer"}
    },
    "required": ["signUpType", "userName", "password"],
    "oneOf": [
        {"required": ["email"]},
        {"required": ["countryCode", "mobileNumber"]}
    ]
}`

var requestSchemaLoader = gojsonschema.NewStringLoader(requestSchema)

// DecodeManualSignUpRequest picks the variant matching data's shape
func DecodeManualSignUpRequest(data []byte) (ManualSignUpRequest, error) {
	result, err := gojsonschema.Validate(requestSchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(problems, "; "))
	}

	var probe struct {
		Email *string `json:"email"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	if probe.Email != nil {
		var req ManualSignUpWithEmail
		if err := json.Unmarshal(data, &req); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		return req, nil
	}

	var req ManualSignUpWithMobile
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return req, nil
}
