package model

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports a field value that violates a type, range, format or
// non-blank rule. The message is safe to return to clients.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

var validate = validator.New()

const (
	MinRating = 0.0
	MaxRating = 5.0
)

// requiredText trims value and rejects it when shorter than minLen.
func requiredText(field, value string, minLen int) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", invalid(field, "%s is required", field)
	}
	if len([]rune(trimmed)) < minLen {
		return "", invalid(field, "%s must be at least %d characters long", field, minLen)
	}
	return trimmed, nil
}

func optionalText(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	return &trimmed
}

func validateRating(field string, rating *float64) (*float64, error) {
	if rating == nil {
		return nil, nil
	}
	r := *rating
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return nil, invalid(field, "%s must be a number", field)
	}
	if r < MinRating || r > MaxRating {
		return nil, invalid(field, "%s must be between %g and %g", field, MinRating, MaxRating)
	}
	return &r, nil
}

// validatePrice rounds to cents, so 12.999 is stored as 13.00.
func validatePrice(price *float64) (*float64, error) {
	if price == nil {
		return nil, nil
	}
	p := *price
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return nil, invalid("price", "price must be a number")
	}
	if p < 0 {
		return nil, invalid("price", "price must be a non-negative number")
	}
	rounded := math.Round(p*100) / 100
	return &rounded, nil
}

func validatePhoneNumber(phone *string) (*string, error) {
	if phone == nil {
		return nil, nil
	}
	hasDigit := false
	for _, r := range *phone {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r == ' ', r == '-', r == '(', r == ')', r == '+', r == '.':
		default:
			return nil, invalid("phone_number", "phone number contains invalid characters")
		}
	}
	if !hasDigit {
		return nil, invalid("phone_number", "phone number must contain at least one digit")
	}
	p := *phone
	return &p, nil
}

func validateImageURL(url *string) (*string, error) {
	if url == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*url)
	if trimmed == "" {
		return nil, invalid("image_url", "image URL must not be empty")
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		return nil, invalid("image_url", "image URL must start with http:// or https://")
	}
	return &trimmed, nil
}

func validateUsername(username *string) (*string, error) {
	if username == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*username)
	if trimmed == "" {
		return nil, invalid("username", "username must be at least 1 character long")
	}
	return &trimmed, nil
}

func validateEmail(email string) (string, error) {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return "", invalid("email", "email is required")
	}
	if err := validate.Var(trimmed, "email"); err != nil {
		return "", invalid("email", "email must be a valid email address")
	}
	return trimmed, nil
}

func validateReference(field string, id uint) error {
	if id == 0 {
		return invalid(field, "%s is required", field)
	}
	return nil
}
