package validation

import (
	"regexp"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldGivenName       = "givenName"
	FieldFamilyName      = "familyName"
	FieldFavoriteFood    = "favoriteFood"
)

// Reason codes. Screens turn these into localized text.
const (
	ReasonRequired     = "required"
	ReasonInvalidEmail = "invalid_email"
	ReasonTooShort     = "too_short"
	ReasonWeakPassword = "weak_password"
	ReasonMismatch     = "mismatch"
	ReasonTooLong      = "too_long"
)

const (
	MinPasswordLength = 8
	// MaxPasswordBytes is the most bcrypt will hash.
	MaxPasswordBytes  = 72
	MaxProfileField   = 100
	passwordSymbols   = "@$!%*?&"
)

// nonSpace is a run of anything but whitespace, counting Unicode spaces,
// vertical tab and the byte order mark as whitespace.
const nonSpace = `[^\s\v\p{Z}\x{FEFF}]+`

var emailPattern = regexp.MustCompile(nonSpace + `@` + nonSpace + `\.` + nonSpace)

// Errors maps a form field to the reason it was rejected.
type Errors map[string]string

func (e Errors) Valid() bool {
	return len(e) == 0
}

func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// PasswordLength counts UTF-16 code units, so a character outside the Basic
// Multilingual Plane counts twice.
func PasswordLength(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// IsStrongPassword reports whether s is at least MinPasswordLength long, uses
// only letters, digits and @$!%*?&, and contains one of each class.
func IsStrongPassword(s string) bool {
	if PasswordLength(s) < MinPasswordLength {
		return false
	}

	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		default:
			return false
		}
	}
	return lower && upper && digit && symbol
}

func ValidateLogin(email, password string) Errors {
	errs := Errors{}

	validateEmail(errs, email)

	if password == "" {
		errs[FieldPassword] = ReasonRequired
	} else if PasswordLength(password) < MinPasswordLength {
		errs[FieldPassword] = ReasonTooShort
	}

	return errs
}

// ValidateRegister checks a sign-up form. The confirmation is compared even
// when the password itself is already rejected.
func ValidateRegister(email, password, confirm string) Errors {
	errs := ValidateCredentials(email, password)

	if password != confirm {
		errs[FieldConfirmPassword] = ReasonMismatch
	}

	return errs
}

// ValidateCredentials applies the sign-up rules without a confirmation field.
func ValidateCredentials(email, password string) Errors {
	errs := Errors{}

	validateEmail(errs, email)

	if password == "" {
		errs[FieldPassword] = ReasonRequired
	} else if !IsStrongPassword(password) {
		errs[FieldPassword] = ReasonWeakPassword
	} else if len(password) > MaxPasswordBytes {
		errs[FieldPassword] = ReasonTooLong
	}

	return errs
}

func ValidateProfile(givenName, familyName, favoriteFood string) Errors {
	errs := Errors{}
	for field, value := range map[string]string{
		FieldGivenName:    givenName,
		FieldFamilyName:   familyName,
		FieldFavoriteFood: favoriteFood,
	} {
		if utf8.RuneCountInString(strings.TrimSpace(value)) > MaxProfileField {
			errs[field] = ReasonTooLong
		}
	}
	return errs
}

func validateEmail(errs Errors, email string) {
	if email == "" {
		errs[FieldEmail] = ReasonRequired
	} else if !IsEmail(email) {
		errs[FieldEmail] = ReasonInvalidEmail
	}
}
