package signup

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeManualSignUpRequest(t *testing.T) {
	t.Run("email_variant", func(t *testing.T) {
		req, err := DecodeManualSignUpRequest([]byte(`{
			"signUpType": "manual",
			"userName": "jdoe",
			"password": "s3cret",
			"email": "jdoe@example.com"
		}`))
		require.NoError(t, err)

		email, ok := req.(ManualSignUpWithEmail)
		require.True(t, ok, "expected email variant, got %T", req)
		assert.Equal(t, "jdoe@example.com", email.Email)
		assert.Equal(t, "jdoe", email.UserName)
		assert.Equal(t, SignUpTypeManual, req.Base().SignUpType)
	})

	t.Run("mobile_variant", func(t *testing.T) {
		req, err := DecodeManualSignUpRequest([]byte(`{
			"signUpType": "manual",
			"userName": "jdoe",
			"password": "s3cret",
			"countryCode": 91,
			"mobileNumber": 9876543210
		}`))
		require.NoError(t, err)

		mobile, ok := req.(ManualSignUpWithMobile)
		require.True(t, ok, "expected mobile variant, got %T", req)
		assert.Equal(t, 91, mobile.CountryCode)
		assert.Equal(t, int64(9876543210), mobile.MobileNumber)
		assert.Equal(t, "s3cret", req.Base().Password)
	})

	invalid := []struct {
		name string
		body string
	}{
		{"unknown_sign_up_type", `{"signUpType":"social","userName":"u","password":"p","email":"e@x.io"}`},
		{"missing_discriminant", `{"userName":"u","password":"p","email":"e@x.io"}`},
		{"missing_user_name", `{"signUpType":"manual","password":"p","email":"e@x.io"}`},
		{"neither_shape", `{"signUpType":"manual","userName":"u","password":"p"}`},
		{"both_shapes", `{"signUpType":"manual","userName":"u","password":"p","email":"e@x.io","countryCode":1,"mobileNumber":5550100}`},
		{"mobile_without_country_code", `{"signUpType":"manual","userName":"u","password":"p","mobileNumber":5550100}`},
		{"mobile_number_as_string", `{"signUpType":"manual","userName":"u","password":"p","countryCode":1,"mobileNumber":"5550100"}`},
		{"not_json", `signUpType=manual`},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			req, err := DecodeManualSignUpRequest([]byte(tt.body))
			assert.Nil(t, req)
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}

func TestManualSignUpRequest_Marshal(t *testing.T) {
	t.Run("email_defaults_discriminant", func(t *testing.T) {
		data, err := json.Marshal(ManualSignUpWithEmail{
			ManualSignUpRequestBase: ManualSignUpRequestBase{UserName: "u", Password: "p"},
			Email:                   "u@example.com",
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"signUpType":"manual","userName":"u","password":"p","email":"u@example.com"}`, string(data))
	})

	t.Run("mobile_through_interface", func(t *testing.T) {
		var req ManualSignUpRequest = ManualSignUpWithMobile{
			ManualSignUpRequestBase: ManualSignUpRequestBase{SignUpType: SignUpTypeManual, UserName: "u", Password: "p"},
			CountryCode:             44,
			MobileNumber:            7700900123,
		}

		data, err := json.Marshal(req)
		require.NoError(t, err)
		assert.JSONEq(t, `{"signUpType":"manual","userName":"u","password":"p","countryCode":44,"mobileNumber":7700900123}`, string(data))

		decoded, err := DecodeManualSignUpRequest(data)
		require.NoError(t, err)
		assert.Equal(t, req, decoded)
	})
}

func TestHealthResponse_TimestampISO8601(t *testing.T) {
	data, err := json.Marshal(HealthResponse{
		Status:    "ok",
		Uptime:    12.5,
		Timestamp: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok","uptime":12.5,"timestamp":"2025-01-02T03:04:05Z"}`, string(data))
}

func TestErrorResponseSchema_JSON(t *testing.T) {
	var resp ErrorResponseSchema
	require.NoError(t, json.Unmarshal([]byte(`{"statusCode":409,"error":"Conflict","message":"user exists"}`), &resp))

	assert.Equal(t, ErrorResponseSchema{StatusCode: 409, Error: "Conflict", Message: "user exists"}, resp)
}
