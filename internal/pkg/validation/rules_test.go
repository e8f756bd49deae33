package validation

import "testing"

func TestValidEmail(t *testing.T) {
	valid := []string{"jane@example.com", "j.doe+tag@sub.example.co"}
	invalid := []string{"", "jane", "jane@", "@example.com", "jane@example"}

	for _, s := range valid {
		if !ValidEmail(s) {
			t.Errorf("expected %q to be a valid email", s)
		}
	}
	for _, s := range invalid {
		if ValidEmail(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func TestValidPhone(t *testing.T) {
	valid := []string{"+15550100123", "0555 010 0123", "555-010-0123"}
	invalid := []string{"", "abc", "12345", "+", "555_010"}

	for _, s := range valid {
		if !ValidPhone(s) {
			t.Errorf("expected %q to be a valid phone number", s)
		}
	}
	for _, s := range invalid {
		if ValidPhone(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func TestValidURL(t *testing.T) {
	if !ValidURL("https://example.com/avatar.png") {
		t.Error("expected https URL to be valid")
	}
	if ValidURL("ftp://example.com/avatar.png") {
		t.Error("expected non-http scheme to be rejected")
	}
}

func TestGeneratedCodePatterns(t *testing.T) {
	if !CompiledPatterns.StudentCode.MatchString("STU20260001") {
		t.Error("expected STU20260001 to match the student code pattern")
	}
	if !CompiledPatterns.EmployeeCode.MatchString("EMP20260042") {
		t.Error("expected EMP20260042 to match the employee code pattern")
	}
	if !CompiledPatterns.CourseCode.MatchString("MAT0001") {
		t.Error("expected MAT0001 to match the course code pattern")
	}
	if CompiledPatterns.CourseCode.MatchString("MATH0001") {
		t.Error("course codes use exactly three letters")
	}
}
