package models

import (
	"encoding/json"
	"fmt"
)

// Flag is a boolean the API encodes as 0/1. JSON booleans are accepted too.
type Flag bool

func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

func (f *Flag) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case nil:
		*f = false
	case bool:
		*f = Flag(value)
	case float64:
		*f = value != 0
	default:
		return fmt.Errorf("invalid flag value %s", string(b))
	}
	return nil
}

// UserProfile is nested in User. Nil pointers stand for JSON null.
type UserProfile struct {
	FullName          *string `json:"full_name"`
	PhoneNumber       *string `json:"phone_number"`
	Gender            *string `json:"gender"`
	BirthDate         *string `json:"birth_date"`
	Bio               *string `json:"bio"`
	ProfilePicture    *string `json:"profile_picture"`
	Nationality       *string `json:"nationality"`
	PreferredLanguage string  `json:"preferred_language"`
}

// User is the authenticated user as returned by GET /user/me.
type User struct {
	UserID  int64       `json:"user_id"`
	Email   string      `json:"email"`
	IsAdmin Flag        `json:"is_admin"`
	IsStaff Flag        `json:"is_staff"`
	Profile UserProfile `json:"profile"`
}

// DisplayName is the full name when set, otherwise the email.
func (u *User) DisplayName() string {
	if u.Profile.FullName != nil && *u.Profile.FullName != "" {
		return *u.Profile.FullName
	}
	return u.Email
}

// StringOrDash dereferences s, returning "-" for nil or empty.
func StringOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
