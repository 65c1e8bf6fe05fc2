package auth

import (
	"strings"
)

// specialCharacters is the punctuation set the signup form accepts as "special".
const specialCharacters = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

type StrengthLevel string

const (
	StrengthNotSet StrengthLevel = "not_set"
	StrengthWeak   StrengthLevel = "weak"
	StrengthFair   StrengthLevel = "fair"
	StrengthGood   StrengthLevel = "good"
	StrengthStrong StrengthLevel = "strong"
)

// MaxStrengthScore is reached when all five criteria hold.
const MaxStrengthScore = 5

// PasswordStrength scores a password out of five: length, upper case,
// lower case, digit and special character each add one point.
type PasswordStrength struct {
	Score   int           `json:"score"`
	Level   StrengthLevel `json:"level"`
	Missing []string      `json:"missing"`
}

func CheckPasswordStrength(password string) PasswordStrength {
	var s PasswordStrength
	criteria := []struct {
		ok   bool
		hint string
	}{
		{TextLength(password) >= SignupPasswordMinLength, "At least 8 characters"},
		{hasUpper(password), "Uppercase letter"},
		{hasLower(password), "Lowercase letter"},
		{hasDigit(password), "Number"},
		{hasSpecial(password), "Special character"},
	}
	for _, c := range criteria {
		if c.ok {
			s.Score++
		} else {
			s.Missing = append(s.Missing, c.hint)
		}
	}

	switch {
	case password == "":
		s.Level = StrengthNotSet
	case s.Score <= 2:
		s.Level = StrengthWeak
	case s.Score == 3:
		s.Level = StrengthFair
	case s.Score == 4:
		s.Level = StrengthGood
	default:
		s.Level = StrengthStrong
	}
	return s
}

// Percentage is the fill ratio of the strength bar.
func (s PasswordStrength) Percentage() int {
	if s.Level == StrengthNotSet {
		return 0
	}
	return s.Score * 100 / MaxStrengthScore
}

// Text is the caption displayed under the strength bar.
func (s PasswordStrength) Text() string {
	switch s.Level {
	case StrengthNotSet:
		return "Not set"
	case StrengthWeak:
		return "Weak - Add: " + strings.Join(s.Missing, ", ")
	case StrengthFair:
		return "Fair - Add: " + strings.Join(s.Missing, ", ")
	case StrengthGood:
		return "Good"
	default:
		return "Strong"
	}
}

// IsPasswordComplex is the hard requirement applied at signup.
func IsPasswordComplex(s string) bool {
	return hasUpper(s) && hasLower(s) && hasDigit(s) && hasSpecial(s)
}

func hasUpper(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool { return r >= 'A' && r <= 'Z' })
}

func hasLower(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool { return r >= 'a' && r <= 'z' })
}

func hasDigit(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool { return r >= '0' && r <= '9' })
}

func hasSpecial(s string) bool {
	return strings.ContainsAny(s, specialCharacters)
}
