package domain

import (
	"errors"
	"net/mail"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Length bounds for contact messages. Lengths count Unicode code points.
const (
	SubjectMinLength = 3
	SubjectMaxLength = 200
	MessageMinLength = 10
	MessageMaxLength = 5000
	NameMaxLength    = 100
)

// Contact form field names, matching the JSON keys.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// User-facing messages for the JSON endpoint. Only the first failing rule is
// reported.
const (
	MsgRequiredFields  = "Email, subject, and message are required fields"
	MsgInvalidEmail    = "Please provide a valid email address"
	MsgMessageLength   = "Message must be between 10 and 5000 characters"
	MsgSubjectLength   = "Subject must be between 3 and 200 characters"
	MsgNameLength      = "Name must be at most 100 characters"
	msgGenericValidity = "Invalid contact message"
)

// EmailPattern is the shape check applied to contact email addresses.
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s passes EmailPattern and is also a bare
// RFC 5322 addr-spec, which is what the SMTP client will accept as a
// recipient or reply-to address.
func ValidEmail(s string) bool {
	if !EmailPattern.MatchString(s) {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Name == "" && addr.Address == s
}

// ContactMessage is what a visitor submits through the contact form.
// Name is optional and only used to greet the sender.
type ContactMessage struct {
	Name    string `json:"name,omitempty" validate:"max=100"`
	Email   string `json:"email"          validate:"notblank,contactemail"`
	Subject string `json:"subject"        validate:"notblank,min=3,max=200"`
	Message string `json:"message"        validate:"notblank,min=10,max=5000"`
}

var contactValidate = newContactValidator()

func newContactValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("contactemail", func(fl validator.FieldLevel) bool {
		return ValidEmail(fl.Field().String())
	})
	return v
}

// fieldPrecedence is the order in which field failures are reported by
// Validate once the required-fields check has passed.
var fieldPrecedence = []string{FieldEmail, FieldMessage, FieldSubject, FieldName}

// Validate checks the message and returns a *ValidationError for the first
// failing rule: missing required fields, then email shape, message length,
// subject length and name length.
func (m ContactMessage) Validate() error {
	failures := m.failures()
	if len(failures) == 0 {
		return nil
	}

	for _, field := range []string{FieldEmail, FieldSubject, FieldMessage} {
		if fe, ok := failures[field]; ok && fe.Tag() == "notblank" {
			return NewValidationError(field, MsgRequiredFields, ErrValidation)
		}
	}

	for _, field := range fieldPrecedence {
		if fe, ok := failures[field]; ok {
			return NewValidationError(field, apiMessage(fe), ErrValidation)
		}
	}

	return NewValidationError("", msgGenericValidity, ErrValidation)
}

// FieldErrors runs the same checks as Validate but reports the first failure
// of every field, worded for display next to the form input.
func (m ContactMessage) FieldErrors() map[string]string {
	failures := m.failures()
	out := make(map[string]string, len(failures))
	for field, fe := range failures {
		out[field] = formMessage(fe)
	}
	return out
}

// failures returns the first failing validator check per field.
func (m ContactMessage) failures() map[string]validator.FieldError {
	err := contactValidate.Struct(m)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]validator.FieldError{}
	}

	out := make(map[string]validator.FieldError, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; !seen {
			out[fe.Field()] = fe
		}
	}
	return out
}

func apiMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case FieldEmail:
		return MsgInvalidEmail
	case FieldMessage:
		return MsgMessageLength
	case FieldSubject:
		return MsgSubjectLength
	case FieldName:
		return MsgNameLength
	default:
		return msgGenericValidity
	}
}

func formMessage(fe validator.FieldError) string {
	label := map[string]string{
		FieldName:    "Name",
		FieldEmail:   "Email",
		FieldSubject: "Subject",
		FieldMessage: "Message",
	}[fe.Field()]

	switch fe.Tag() {
	case "notblank":
		return label + " is required"
	case "contactemail":
		return "Please enter a valid email address"
	case "min":
		return label + " should be at least " + fe.Param() + " characters"
	case "max":
		return label + " should not exceed " + fe.Param() + " characters"
	default:
		return label + " is invalid"
	}
}
