package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlag_Unmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    Flag
		wantErr bool
	}{
		{in: `1`, want: true},
		{in: `0`, want: false},
		{in: `true`, want: true},
		{in: `false`, want: false},
		{in: `null`, want: false},
		{in: `"yes"`, wantErr: true},
	}
	for _, tt := range tests {
		var f Flag
		err := json.Unmarshal([]byte(tt.in), &f)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, f, tt.in)
	}
}

func TestFlag_MarshalAsInteger(t *testing.T) {
	b, err := json.Marshal(struct {
		A Flag `json:"a"`
		B Flag `json:"b"`
	}{A: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1,"b":0}`, string(b))
}

func TestUser_DecodeWithNullProfileFields(t *testing.T) {
	body := `{"user_id":5,"email":"guest@hotel.example","is_admin":0,"is_staff":0,
		"profile":{"full_name":"Ann Guest","phone_number":null,"gender":null,"birth_date":null,
		"bio":null,"profile_picture":null,"nationality":"LV","preferred_language":"en"}}`

	var u User
	require.NoError(t, json.Unmarshal([]byte(body), &u))

	assert.Equal(t, int64(5), u.UserID)
	require.NotNil(t, u.Profile.FullName)
	assert.Equal(t, "Ann Guest", *u.Profile.FullName)
	assert.Nil(t, u.Profile.PhoneNumber)
	assert.Equal(t, "en", u.Profile.PreferredLanguage)
	assert.Equal(t, "Ann Guest", u.DisplayName())
}

func TestUser_DisplayNameFallsBackToEmail(t *testing.T) {
	u := &User{Email: "a@b.com"}
	assert.Equal(t, "a@b.com", u.DisplayName())

	empty := ""
	u.Profile.FullName = &empty
	assert.Equal(t, "a@b.com", u.DisplayName())
}

func TestStringOrDash(t *testing.T) {
	v := "LV"
	empty := ""
	assert.Equal(t, "LV", StringOrDash(&v))
	assert.Equal(t, "-", StringOrDash(&empty))
	assert.Equal(t, "-", StringOrDash(nil))
}
