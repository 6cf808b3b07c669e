package util

import (
	"strings"
	"testing"
)

func TestValidateRollNo_Valid(t *testing.T) {
	testCases := []string{"12345678", "BT200042", "abcdefgh"}

	for _, rollno := range testCases {
		if err := ValidateRollNo(rollno); err != nil {
			t.Errorf("ValidateRollNo(%q) error = %v, want nil", rollno, err)
		}
	}
}

func TestValidateRollNo_Multibyte(t *testing.T) {
	// the length rule counts characters, not bytes
	if err := ValidateRollNo("ΑΒ200042"); err != nil {
		t.Errorf("8-rune rollno error = %v, want nil", err)
	}
	if err := ValidateRollNo("ΑΒΓΔΕΖΗΘΙ"); err == nil {
		t.Error("9-rune rollno should fail")
	}
}

func TestValidateRollNo_Invalid(t *testing.T) {
	testCases := []string{"", "1234567", "123456789", "1"}

	for _, rollno := range testCases {
		if err := ValidateRollNo(rollno); err == nil {
			t.Errorf("ValidateRollNo(%q) error = nil, want error", rollno)
		}
	}
}

func TestValidateUsername(t *testing.T) {
	valid := []string{"alice", "bob_2024", "Mukul"}
	for _, username := range valid {
		if err := ValidateUsername(username); err != nil {
			t.Errorf("ValidateUsername(%q) error = %v, want nil", username, err)
		}
	}

	invalid := []string{"", "ab", "has space", "weird!char", strings.Repeat("x", 65)}
	for _, username := range invalid {
		if err := ValidateUsername(username); err == nil {
			t.Errorf("ValidateUsername(%q) error = nil, want error", username)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@x.com", "vishav@iitb.ac.in"}
	for _, email := range valid {
		if err := ValidateEmail(email); err != nil {
			t.Errorf("ValidateEmail(%q) error = %v, want nil", email, err)
		}
	}

	invalid := []string{"", "not-an-email", "a@", "@x.com", "a b@x.com"}
	for _, email := range invalid {
		if err := ValidateEmail(email); err == nil {
			t.Errorf("ValidateEmail(%q) error = nil, want error", email)
		}
	}
}

func TestValidatePostBody(t *testing.T) {
	if err := ValidatePostBody("Beautiful day in Kharghar"); err != nil {
		t.Errorf("valid body error = %v, want nil", err)
	}
	if err := ValidatePostBody(""); err == nil {
		t.Error("empty body should fail")
	}
	if err := ValidatePostBody("   "); err == nil {
		t.Error("whitespace body should fail")
	}
	if err := ValidatePostBody(strings.Repeat("a", 281)); err == nil {
		t.Error("281 char body should fail")
	}
	// 280 multibyte characters fit even though they exceed 280 bytes
	if err := ValidatePostBody(strings.Repeat("ü", 280)); err != nil {
		t.Errorf("280-rune body error = %v, want nil", err)
	}
	if err := ValidatePostBody(strings.Repeat("ü", 281)); err == nil {
		t.Error("281-rune body should fail")
	}
}

func TestValidateRegistration_RuleOrder(t *testing.T) {
	// a request with several problems surfaces the username one first
	in := RegisterInput{Username: "", RollNo: "short", Email: "bad", Password: ""}
	err := ValidateRegistration(in)
	if err == nil {
		t.Fatal("invalid input should fail")
	}
	if !strings.Contains(err.Error(), "username") {
		t.Errorf("error = %q, want the username rule first", err)
	}
}

func TestValidateRegistration_Valid(t *testing.T) {
	in := RegisterInput{
		Username: "alice",
		RollNo:   "12345678",
		Email:    "a@x.com",
		Password: "password1",
	}
	if err := ValidateRegistration(in); err != nil {
		t.Errorf("ValidateRegistration error = %v, want nil", err)
	}
}

func TestValidateRegistration_SevenCharRollNo(t *testing.T) {
	in := RegisterInput{
		Username: "bob",
		RollNo:   "1234567",
		Email:    "c@z.com",
		Password: "password3",
	}
	err := ValidateRegistration(in)
	if err == nil {
		t.Fatal("7-char rollno should fail")
	}
	if !strings.Contains(err.Error(), "rollno") {
		t.Errorf("error = %q, want rollno rule", err)
	}
}
