// Package signup holds the wire types of the BFF sign-up and health endpoints.
//
// ManualSignUpRequest is a tagged union: every variant carries signUpType, and
// the variant is told apart by its fields, {email} or {countryCode, mobileNumber}.
package signup

import (
	"encoding/json"
	"time"
)

// SignUpType discriminates sign-up requests
type SignUpType string

const (
	SignUpTypeManual SignUpType = "manual"
)

// ManualSignUpRequestBase holds the fields shared by every manual sign-up variant
type ManualSignUpRequestBase struct {
	SignUpType SignUpType `json:"signUpType"`
	UserName   string     `json:"userName"`
	Password   string     `json:"password"`
}

// ManualSignUpRequest is implemented by ManualSignUpWithEmail and ManualSignUpWithMobile only
type ManualSignUpRequest interface {
	Base() ManualSignUpRequestBase
	isManualSignUpRequest()
}

type ManualSignUpWithEmail struct {
	ManualSignUpRequestBase
	Email string `json:"email"`
}

type ManualSignUpWithMobile struct {
	ManualSignUpRequestBase
	CountryCode  int   `json:"countryCode"`
	MobileNumber int64 `json:"mobileNumber"`
}

func (r ManualSignUpWithEmail) Base() ManualSignUpRequestBase  { return r.ManualSignUpRequestBase }
func (r ManualSignUpWithMobile) Base() ManualSignUpRequestBase { return r.ManualSignUpRequestBase }

func (ManualSignUpWithEmail) isManualSignUpRequest()  {}
func (ManualSignUpWithMobile) isManualSignUpRequest() {}

// MarshalJSON always emits the discriminant, defaulting it to manual
func (r ManualSignUpWithEmail) MarshalJSON() ([]byte, error) {
	type plain ManualSignUpWithEmail
	if r.SignUpType == "" {
		r.SignUpType = SignUpTypeManual
	}
	return json.Marshal(plain(r))
}

// MarshalJSON always emits the discriminant, defaulting it to manual
func (r ManualSignUpWithMobile) MarshalJSON() ([]byte, error) {
	type plain ManualSignUpWithMobile
	if r.SignUpType == "" {
		r.SignUpType = SignUpTypeManual
	}
	return json.Marshal(plain(r))
}

type ResponseMessage struct {
	Message string `json:"message"`
}

type ErrorResponseSchema struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// HealthResponse reports service status. Timestamp is serialised as ISO-8601.
type HealthResponse struct {
	Status    string    `json:"status"`
	Uptime    float64   `json:"uptime"` // seconds
	Timestamp time.Time `json:"timestamp"`
}
