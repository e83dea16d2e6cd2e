// Package contact validates and submits the contact form. Submission is
// simulated: it waits a fixed delay and never leaves the process.
package contact

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// ErrInvalidForm is wrapped by every ValidationError.
var ErrInvalidForm = errors.New("contact: invalid form")

// Form is the contact form. Phone is optional.
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// FieldError describes one failing field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string { return e.Field + ": " + e.Message }

// ValidationError lists every failing field in form order.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return fmt.Sprintf("contact: %s", strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidForm }

// Field returns the message for field, or "" if it passed.
func (e *ValidationError) Field(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

// Validate applies the form rules. Lengths count characters as typed,
// surrounding whitespace included.
func (f Form) Validate() error {
	var errs []FieldError
	minLen := func(field, value string, n int, msg string) {
		if utf8.RuneCountInString(value) < n {
			errs = append(errs, FieldError{Field: field, Message: msg})
		}
	}

	minLen("name", f.Name, 2, "Name must be at least 2 characters")
	if !validEmail(f.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "Invalid email address"})
	}
	minLen("subject", f.Subject, 3, "Subject must be at least 3 characters")
	minLen("message", f.Message, 10, "Message must be at least 10 characters")

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// validEmail accepts a bare address (no display name) whose domain has
// at least one dot.
func validEmail(s string) bool {
	s = strings.TrimSpace(s)
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	domain := s[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}
