package services

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/palace/internal/common"
	"github.com/dmitrijs2005/palace/internal/server/models"
)

// validEmail accepts a bare address ("a@b.c"); display names, angle brackets
// and surrounding whitespace are rejected.
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	at := strings.LastIndexByte(email, '@')
	domain := email[at+1:]
	return strings.Contains(domain, ".") &&
		!strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}

func (r SignupRequest) validate() error {
	v := common.NewValidationError()

	if !validEmail(r.Email) {
		v.Add("email", "invalid email")
	}
	if utf8.RuneCountInString(r.Password) < common.MinPasswordLength {
		v.Add("password", "must be at least 6 characters")
	}
	if strings.TrimSpace(r.FirstName) == "" {
		v.Add("firstName", "required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		v.Add("lastName", "required")
	}
	if !r.Gender.Valid() {
		v.Add("gender", "must be male or female")
	}

	return v.OrNil()
}

func validateLogin(email string) error {
	v := common.NewValidationError()
	if !validEmail(email) {
		v.Add("email", "invalid email")
	}
	return v.OrNil()
}

func validateRegions(regions []models.Region) error {
	v := common.NewValidationError()
	for _, r := range regions {
		if !r.Valid() {
			v.Add("subscribedRegions", "unknown region "+string(r))
		}
	}
	return v.OrNil()
}
