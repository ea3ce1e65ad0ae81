package serverutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Indonesian mobile numbers: +62/62/0 prefix followed by 8[1-9] and 6-10
// more digits.
var indonesianPhoneRegex = regexp.MustCompile(`^(?:\+62|62|0)8[1-9][0-9]{6,10}$`)

var slugRegex = regexp.MustCompile(`^[a-z0-9-]+$`)

func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			first := verrs[0]
			return NewBadRequest(fmt.Sprintf("field '%s' failed validation on '%s'", first.Field(), first.Tag()))
		}
		return NewBadRequest(err.Error())
	}
	return nil
}

// ValidateIndonesianPhone checks the raw number and returns it normalized to
// the +62 form.
func ValidateIndonesianPhone(phone string) (string, error) {
	trimmed := strings.TrimSpace(phone)
	if !indonesianPhoneRegex.MatchString(trimmed) {
		return "", NewBadRequest("invalid Indonesian phone number")
	}
	switch {
	case strings.HasPrefix(trimmed, "+62"):
		return trimmed, nil
	case strings.HasPrefix(trimmed, "62"):
		return "+" + trimmed, nil
	default: // leading 0
		return "+62" + trimmed[1:], nil
	}
}

// ValidateSlug enforces the public slug charset (lowercase, digits, hyphen).
func ValidateSlug(slug string) error {
	if slug == "" || !slugRegex.MatchString(slug) {
		return NewBadRequest("slug may only contain lowercase letters, numbers, and hyphens")
	}
	return nil
}
