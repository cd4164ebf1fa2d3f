package validation

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrMissingFields = errors.New("name or email missing")
	ErrHoneypot      = errors.New("honeypot field filled")
	ErrInvalidEmail  = errors.New("invalid email format")
)

var messages = map[error]string{
	ErrMissingFields: "Please provide both your name and email.",
	ErrHoneypot:      "Invalid submission.",
	ErrInvalidEmail:  "Please enter a valid email address.",
}

// GenericMessage is shown for errors that are not validation sentinels
const GenericMessage = "Something went wrong. Please try again."

// Deliberately loose: something@something.something without whitespace.
// RE2's \s is ASCII only, so vertical tab, Unicode spaces and the BOM are
// excluded explicitly.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// Input is a submission that passed validation
type Input struct {
	Name     string
	Email    string
	Honeypot string
}

// IsValidEmail reports whether email has a plausible address shape
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// NormalizeEmail returns the form of an email used for storage and comparison
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate trims the raw form values and checks them in order: required
// fields, honeypot, email shape. The returned error is one of the package
// sentinels; Message turns it into the text shown to the submitter.
func Validate(name, email, honeypot string) (Input, error) {
	in := Input{
		Name:     strings.TrimSpace(name),
		Email:    NormalizeEmail(email),
		Honeypot: strings.TrimSpace(honeypot),
	}

	if in.Name == "" || in.Email == "" {
		return in, ErrMissingFields
	}
	if in.Honeypot != "" {
		return in, ErrHoneypot
	}
	if !IsValidEmail(in.Email) {
		return in, ErrInvalidEmail
	}
	return in, nil
}

// IsValidationError reports whether err is one of the validation sentinels
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingFields) ||
		errors.Is(err, ErrHoneypot) ||
		errors.Is(err, ErrInvalidEmail)
}

// Message returns the user-facing text for a validation error
func Message(err error) string {
	for sentinel, msg := range messages {
		if errors.Is(err, sentinel) {
			return msg
		}
	}
	return GenericMessage
}
