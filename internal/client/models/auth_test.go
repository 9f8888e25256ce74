package models

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.com", "first.last+tag@hotel-hub.example.org", "x_y%z@sub.domain.io"}
	invalid := []string{"", "plain", "a@b", "a@b.c", "@b.com", "a b@c.com", "a@b.com "}

	for _, e := range valid {
		assert.True(t, IsValidEmail(e), e)
	}
	for _, e := range invalid {
		assert.False(t, IsValidEmail(e), e)
	}
}

func TestCredentials_Validate(t *testing.T) {
	tests := []struct {
		name  string
		creds Credentials
		ok    bool
	}{
		{name: "both present", creds: Credentials{Email: "a@b.com", Password: "x"}, ok: true},
		{name: "format not checked", creds: Credentials{Email: "not-an-email", Password: "x"}, ok: true},
		{name: "empty password", creds: Credentials{Email: "a@b.com"}},
		{name: "empty email", creds: Credentials{Password: "x"}},
		{name: "both empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.creds.Validate()
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Equal(t, "Please fill in all fields", err.Error())
		})
	}
}

func TestCredentials_ValidateForSignup(t *testing.T) {
	err := Credentials{Email: "not-an-email", Password: "x"}.ValidateForSignup()
	require.Error(t, err)
	assert.Equal(t, MsgInvalidEmail, err.Error())

	err = Credentials{Email: "a@b.com"}.ValidateForSignup()
	require.Error(t, err)
	assert.Equal(t, MsgFillAllFields, err.Error())

	require.NoError(t, Credentials{Email: "a@b.com", Password: "x"}.ValidateForSignup())
}

func TestIsValidationError_Wrapped(t *testing.T) {
	err := fmt.Errorf("form: %w", &ValidationError{Message: "m"})
	assert.True(t, IsValidationError(err))
	assert.False(t, IsValidationError(fmt.Errorf("other")))
}

func TestLoginResponse_Decode(t *testing.T) {
	body := `{"user_id":1,"is_admin":0,"is_staff":1,"access_token":"tok",
		"refresh_token":"rtok","token_type":"bearer","expires_in":3600}`

	var lr LoginResponse
	require.NoError(t, json.Unmarshal([]byte(body), &lr))

	assert.Equal(t, int64(1), lr.UserID)
	assert.False(t, bool(lr.IsAdmin))
	assert.True(t, bool(lr.IsStaff))
	assert.Equal(t, "tok", lr.AccessToken)
	assert.Equal(t, "rtok", lr.RefreshToken)
	assert.Equal(t, int64(3600), lr.ExpiresIn)
}

func TestAuthResponse_OptionalFields(t *testing.T) {
	var ar AuthResponse
	require.NoError(t, json.Unmarshal([]byte(`{"message":"created"}`), &ar))
	assert.Equal(t, "created", ar.Message)
	assert.Nil(t, ar.User)

	require.NoError(t, json.Unmarshal([]byte(`{"message":"ok","user":{"id":"7","email":"a@b.com"}}`), &ar))
	require.NotNil(t, ar.User)
	assert.Equal(t, "7", ar.User.ID)
}
