package util

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

// RegisterInput is the structured registration form input validated by the
// ordered rule list below.
type RegisterInput struct {
	Username string
	RollNo   string
	Email    string
	Password string
}

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,64}$`)

// ValidateUsername checks the username format (3-64 word characters).
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username is required")
	}
	if !usernameRe.MatchString(username) {
		return fmt.Errorf("username must be 3-64 letters, digits or underscores")
	}
	return nil
}

// ValidateRollNo checks that the roll number is exactly 8 characters.
func ValidateRollNo(rollno string) error {
	if rollno == "" {
		return fmt.Errorf("rollno is required")
	}
	if utf8.RuneCountInString(rollno) != 8 {
		return fmt.Errorf("rollno must be exactly 8 characters")
	}
	return nil
}

// ValidateEmail checks email syntax.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// ValidatePassword checks the password length bounds.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if len(password) < 6 || len(password) > 64 {
		return fmt.Errorf("password must be 6-64 characters")
	}
	return nil
}

// ValidatePostBody checks a post body (required, at most 280 characters).
func ValidatePostBody(body string) error {
	if strings.TrimSpace(body) == "" {
		return fmt.Errorf("post body is required")
	}
	if utf8.RuneCountInString(body) > 280 {
		return fmt.Errorf("post body too long, max 280 characters")
	}
	return nil
}

// registerRules run in order; the first failure is the one surfaced on the
// form.
var registerRules = []func(RegisterInput) error{
	func(in RegisterInput) error { return ValidateUsername(in.Username) },
	func(in RegisterInput) error { return ValidateRollNo(in.RollNo) },
	func(in RegisterInput) error { return ValidateEmail(in.Email) },
	func(in RegisterInput) error { return ValidatePassword(in.Password) },
}

// ValidateRegistration evaluates the registration rules in order and returns
// the first violation, or nil when the input is well-formed. Uniqueness
// checks run separately against the store.
func ValidateRegistration(in RegisterInput) error {
	for _, rule := range registerRules {
		if err := rule(in); err != nil {
			return err
		}
	}
	return nil
}
