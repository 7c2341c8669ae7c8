package validation

import "testing"

func TestIsValidEmail(t *testing.T) {
	valid := []string{"rohan@hostel.edu", "a.b+c@example.co.in", "x_1@sub.domain.org"}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}

	invalid := []string{"", "rohan", "rohan@", "@hostel.edu", "rohan@hostel", "rohan hostel@edu.in"}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestIsValidSID(t *testing.T) {
	if !IsValidSID("20231042") {
		t.Errorf("expected 8 digit SID to be valid")
	}

	invalid := []string{"", "1234567", "123456789", "2023104a", "2023 104"}
	for _, sid := range invalid {
		if IsValidSID(sid) {
			t.Errorf("expected %q to be invalid", sid)
		}
	}
}

func TestIsValidPhone(t *testing.T) {
	if !IsValidPhone("9876543210") {
		t.Errorf("expected 10 digit phone to be valid")
	}

	invalid := []string{"", "987654321", "98765432100", "98765-4321", "+919876543210"}
	for _, phone := range invalid {
		if IsValidPhone(phone) {
			t.Errorf("expected %q to be invalid", phone)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	if IsValidPassword("12345") {
		t.Errorf("expected 5 char password to be invalid")
	}
	if !IsValidPassword("123456") {
		t.Errorf("expected 6 char password to be valid")
	}
}
