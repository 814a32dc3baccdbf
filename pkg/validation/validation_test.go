package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestIsEmail(t *testing.T) {
	cases := map[string]bool{
		"ana@example.com":  true,
		"a@b.c":            true,
		"  ana@example.co": true,
		"ana.example.com":  false,
		"ana@example":      false,
		"@example.com":     false,
		"ana@.com":         false,
		"":                 false,
		"\v@b.c":           false,
		"\u00a0@b.c":       false,
		"a@\u2003.c":       false,
		"a@b.\ufeff":       false,
		"a@b.\u2028":       false,
	}
	for in, want := range cases {
		assert.Equal(t, want, IsEmail(in), in)
	}
}

func TestIsEmail_WithoutAtIsRejected(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.StringMatching(`[^@]*`).Draw(rt, "s")
		if IsEmail(s) {
			rt.Fatalf("accepted %q without '@'", s)
		}
	})
}

func TestIsStrongPassword(t *testing.T) {
	assert.True(t, IsStrongPassword("Abcdef1!"))
	assert.True(t, IsStrongPassword("Tacos&Burritos2024"))

	assert.False(t, IsStrongPassword("Abcde1!"), "7 chars")
	assert.False(t, IsStrongPassword("abcdefg1!"), "no upper")
	assert.False(t, IsStrongPassword("ABCDEFG1!"), "no lower")
	assert.False(t, IsStrongPassword("Abcdefgh!"), "no digit")
	assert.False(t, IsStrongPassword("Abcdefgh1"), "no symbol")
	assert.False(t, IsStrongPassword("Abcd efg1!"), "space is not allowed")
	assert.False(t, IsStrongPassword("Abcdefg1#"), "# is not an accepted symbol")
}

func TestIsStrongPassword_Generated(t *testing.T) {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789@$!%*?&"

	rapid.Check(t, func(rt *rapid.T) {
		lower := rapid.RuneFrom([]rune("abcdefghijklmnopqrstuvwxyz")).Draw(rt, "lower")
		upper := rapid.RuneFrom([]rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")).Draw(rt, "upper")
		digit := rapid.RuneFrom([]rune("0123456789")).Draw(rt, "digit")
		symbol := rapid.RuneFrom([]rune(passwordSymbols)).Draw(rt, "symbol")
		filler := rapid.StringOfN(rapid.RuneFrom([]rune(alphabet)), 4, 32, -1).Draw(rt, "filler")

		pw := filler + string([]rune{symbol, digit, upper, lower})
		if !IsStrongPassword(pw) {
			rt.Fatalf("rejected %q", pw)
		}

		bad := rapid.RuneFrom([]rune(" #^~-_+=<>\t")).Draw(rt, "bad")
		if IsStrongPassword(pw + string(bad)) {
			rt.Fatalf("accepted %q with %q", pw+string(bad), bad)
		}
	})
}

func TestValidateLogin(t *testing.T) {
	errs := ValidateLogin("", "")
	assert.Equal(t, Errors{FieldEmail: ReasonRequired, FieldPassword: ReasonRequired}, errs)
	assert.False(t, errs.Valid())

	errs = ValidateLogin("nope", "12345678")
	assert.Equal(t, Errors{FieldEmail: ReasonInvalidEmail}, errs)

	errs = ValidateLogin("ana@example.com", "short")
	assert.Equal(t, Errors{FieldPassword: ReasonTooShort}, errs)

	// Sign-in does not enforce complexity, only length.
	assert.True(t, ValidateLogin("ana@example.com", "password").Valid())
}

func TestPasswordLength_CountsUTF16Units(t *testing.T) {
	assert.Equal(t, 8, PasswordLength("Abcdef1!"))
	assert.Equal(t, 2, PasswordLength("ñ1"))
	assert.Equal(t, 8, PasswordLength("😀😀😀😀"))

	assert.True(t, ValidateLogin("ana@example.com", "😀😀😀😀").Valid(), "four astral characters are eight units")
	assert.Equal(t, ReasonTooShort, ValidateLogin("ana@example.com", "😀😀😀")[FieldPassword])
}

func TestValidateLogin_ShortPasswordIsRejected(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		pw := rapid.StringOfN(rapid.Rune(), 1, MinPasswordLength-1, -1).Draw(rt, "pw")
		errs := ValidateLogin("ana@example.com", pw)
		if errs[FieldPassword] != ReasonTooShort {
			rt.Fatalf("password %q: got %v", pw, errs)
		}
	})
}

func TestValidateRegister(t *testing.T) {
	errs := ValidateRegister("ana@example.com", "Abcdef1!", "Abcdef1!")
	assert.True(t, errs.Valid())

	errs = ValidateRegister("ana@example.com", "password", "password")
	assert.Equal(t, Errors{FieldPassword: ReasonWeakPassword}, errs)

	tooLong := "Abcdef1!" + strings.Repeat("a", 70)
	assert.True(t, IsStrongPassword(tooLong))
	errs = ValidateRegister("ana@example.com", tooLong, tooLong)
	assert.Equal(t, Errors{FieldPassword: ReasonTooLong}, errs)

	atLimit := "Abcdef1!" + strings.Repeat("a", MaxPasswordBytes-8)
	assert.True(t, ValidateRegister("ana@example.com", atLimit, atLimit).Valid())

	errs = ValidateRegister("", "", "x")
	assert.Equal(t, ReasonRequired, errs[FieldEmail])
	assert.Equal(t, ReasonRequired, errs[FieldPassword])
	assert.Equal(t, ReasonMismatch, errs[FieldConfirmPassword])
}

func TestValidateCredentials_PasswordOverBcryptLimitIsRejected(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		base := "Abcdef1!"
		pad := rapid.StringOfN(rapid.RuneFrom([]rune("abcXYZ019@$!")), 1, 200, -1).Draw(rt, "pad")
		pw := base + pad
		errs := ValidateCredentials("ana@example.com", pw)
		if len(pw) > MaxPasswordBytes && errs[FieldPassword] != ReasonTooLong {
			rt.Fatalf("%d-byte password: got %v", len(pw), errs)
		}
		if len(pw) <= MaxPasswordBytes && !errs.Valid() {
			rt.Fatalf("%d-byte password rejected: %v", len(pw), errs)
		}
	})
}

func TestValidateRegister_MismatchIsRejected(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		pw := rapid.String().Draw(rt, "pw")
		suffix := rapid.StringN(1, 8, -1).Draw(rt, "suffix")
		errs := ValidateRegister("ana@example.com", pw, pw+suffix)
		if !errs.Has(FieldConfirmPassword) {
			rt.Fatalf("mismatch not reported for %q / %q", pw, pw+suffix)
		}
	})
}

func TestValidateProfile(t *testing.T) {
	assert.True(t, ValidateProfile("", "", "").Valid())
	assert.True(t, ValidateProfile("Ana", "García", "Tacos").Valid())

	long := strings.Repeat("á", MaxProfileField+1)
	errs := ValidateProfile(long, "García", long)
	assert.Equal(t, Errors{FieldGivenName: ReasonTooLong, FieldFavoriteFood: ReasonTooLong}, errs)

	padded := "  " + strings.Repeat("x", MaxProfileField) + "  "
	assert.True(t, ValidateProfile(padded, "", "").Valid())
}
