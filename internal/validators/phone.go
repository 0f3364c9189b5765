package validators

import (
	"errors"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const DefaultPhoneRegion = "AR"

var ErrInvalidPhone = errors.New("validators: invalid phone number")

// NormalizePhone parses a client phone in the given default region and
// returns it in E.164 form.
func NormalizePhone(phone, region string) (string, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "", ErrInvalidPhone
	}
	if region == "" {
		region = DefaultPhoneRegion
	}

	parsed, err := phonenumbers.Parse(phone, region)
	if err != nil {
		return "", ErrInvalidPhone
	}
	if !phonenumbers.IsPossibleNumber(parsed) {
		return "", ErrInvalidPhone
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}
