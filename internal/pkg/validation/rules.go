package validation

import "regexp"

// Field constraints shared by the student and teacher schemas.
var (
	NameMinLength = 2
	NameMaxLength = 100

	TitleMinLength = 3
	TitleMaxLength = 200
)

// Validation patterns
var (
	// EmailPattern matches a conventional mailbox@domain address
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// PhonePattern allows an optional leading + followed by 7-15 digits,
	// with spaces, dots or dashes as separators
	PhonePattern = `^\+?[0-9][0-9 .\-]{5,18}[0-9]$`

	// URLPattern matches http(s) URLs for profile pictures
	URLPattern = `^https?://[^\s]+$`

	// StudentCodePattern matches generated student codes, e.g. STU20260001
	StudentCodePattern = `^STU\d{4}\d{4}$`

	// EmployeeCodePattern matches generated employee codes, e.g. EMP20260001
	EmployeeCodePattern = `^EMP\d{4}\d{4}$`

	// CourseCodePattern matches generated course codes, e.g. MAT0001 or GEN0012
	CourseCodePattern = `^[A-Z]{3}\d{4}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email        *regexp.Regexp
	Phone        *regexp.Regexp
	URL          *regexp.Regexp
	StudentCode  *regexp.Regexp
	EmployeeCode *regexp.Regexp
	CourseCode   *regexp.Regexp
}{
	Email:        regexp.MustCompile(EmailPattern),
	Phone:        regexp.MustCompile(PhonePattern),
	URL:          regexp.MustCompile(URLPattern),
	StudentCode:  regexp.MustCompile(StudentCodePattern),
	EmployeeCode: regexp.MustCompile(EmployeeCodePattern),
	CourseCode:   regexp.MustCompile(CourseCodePattern),
}

// ValidEmail reports whether s looks like a valid email address
func ValidEmail(s string) bool {
	return CompiledPatterns.Email.MatchString(s)
}

// ValidPhone reports whether s looks like a valid phone number
func ValidPhone(s string) bool {
	return CompiledPatterns.Phone.MatchString(s)
}

// ValidURL reports whether s looks like a valid http(s) URL
func ValidURL(s string) bool {
	return CompiledPatterns.URL.MatchString(s)
}
