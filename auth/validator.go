package auth

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"

	"meet-lab/errors"

	"github.com/go-playground/validator/v10"
)

const (
	LoginPasswordMinLength  = 6
	SignupPasswordMinLength = 8
)

// emailShape only checks for something@something.tld without spaces.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("textmin", func(fl validator.FieldLevel) bool {
		want, err := strconv.Atoi(fl.Param())
		return err == nil && TextLength(fl.Field().String()) >= want
	})
	return v
}

// TextLength counts UTF-16 code units, the unit browser form lengths are
// measured in: an emoji outside the BMP counts as two.
func TextLength(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

type LoginForm struct {
	Email      string `json:"email" validate:"required,emailshape"`
	Password   string `json:"password" validate:"required,textmin=6"`
	RememberMe bool   `json:"rememberMe"`
}

// Normalized trims what the form trims; passwords are taken as typed.
func (f LoginForm) Normalized() LoginForm {
	f.Email = strings.TrimSpace(f.Email)
	return f
}

// Field order is the order checks are reported in.
type SignupForm struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Email           string `json:"email" validate:"required,emailshape"`
	Password        string `json:"password" validate:"textmin=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=Password"`
	AgreeTerms      bool   `json:"agreeTerms" validate:"required"`
}

func (f SignupForm) Normalized() SignupForm {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.TrimSpace(f.Email)
	return f
}

var loginMessages = map[string]string{
	"required":   "Please enter email and password",
	"emailshape": "Please enter a valid email address",
	"textmin":    "Password must be at least 6 characters",
}

var signupMessages = map[string]string{
	"FirstName.required": "Please enter your first and last name",
	"LastName.required":  "Please enter your first and last name",
	"Email.required":     "Please enter your email address",
	"Email.emailshape":   "Please enter a valid email address",
	"Password.textmin":   "Password must be at least 8 characters",
	"ConfirmPassword":    "Passwords do not match",
	"AgreeTerms":         "Please agree to the Terms of Service and Privacy Policy",
}

// ValidateLogin expects a normalized form. Missing fields win over
// malformed ones, whatever the field order.
func ValidateLogin(form LoginForm) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err
	}

	first := fieldErrors[0]
	for _, fe := range fieldErrors {
		if fe.Tag() == "required" {
			first = fe
			break
		}
	}
	return errors.NewValidationError(first.Field(), loginMessages[first.Tag()])
}

// ValidateSignup expects a normalized form.
func ValidateSignup(form SignupForm) error {
	err := validate.Struct(form)
	if err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
			return err
		}
		fe := fieldErrors[0]
		message, ok := signupMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			message = signupMessages[fe.Field()]
		}
		return errors.NewValidationError(fe.Field(), message)
	}

	if !IsPasswordComplex(form.Password) {
		return errors.NewValidationError("Password",
			"Password must contain uppercase, lowercase, number, and special character")
	}
	return nil
}
