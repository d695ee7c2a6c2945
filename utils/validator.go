package utils

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

var emailRegexp = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

// Validator accumulates field checks shared by every handler. It keeps the
// first failure only, since error responses carry a single message.
type Validator struct {
	message string
}

func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) check(cond bool, message string) {
	if !cond && v.message == "" {
		v.message = message
	}
}

func (v *Validator) Valid() bool {
	return v.message == ""
}

// Err returns a 400 CustomError for the first failed check, nil when valid.
func (v *Validator) Err() *CustomError {
	if v.message == "" {
		return nil
	}
	return NewCustomError(http.StatusBadRequest, v.message)
}

// Required fails on empty or whitespace-only values.
func (v *Validator) Required(value, field string) {
	v.check(strings.TrimSpace(value) != "", fmt.Sprintf("%s is required", field))
}

// MaxLength bounds the character count, so multibyte names are measured
// the way the clients count them.
func (v *Validator) MaxLength(value, field string, max int) {
	v.check(utf8.RuneCountInString(strings.TrimSpace(value)) <= max, fmt.Sprintf("%s must be less than %d characters", field, max))
}

// OneOf fails when value is not in the allowed set.
func (v *Validator) OneOf(value, field string, allowed []string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.check(false, fmt.Sprintf("Invalid %s", field))
}

func (v *Validator) Email(email string) {
	v.check(email != "", "Email is required")
	v.check(emailRegexp.MatchString(email), "Email must be a valid email address")
}

func (v *Validator) Password(password, field string) {
	v.check(password != "", fmt.Sprintf("%s is required", field))
	v.check(len(password) >= 6, fmt.Sprintf("%s must be at least 6 characters", field))
	v.check(len(password) <= 72, fmt.Sprintf("%s must be at most 72 characters", field))
}

// Date parses an optional date string, accepting "2006-01-02" or RFC3339.
// An empty input yields nil without failing the validator.
func (v *Validator) Date(value, field string) *time.Time {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	v.check(false, fmt.Sprintf("Invalid %s", field))
	return nil
}

// DateOrder fails when both dates are set and end precedes start.
func (v *Validator) DateOrder(start, end *time.Time) {
	if start == nil || end == nil {
		return
	}
	v.check(!end.Before(*start), "End date must be after start date")
}
