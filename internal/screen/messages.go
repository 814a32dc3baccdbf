package screen

import (
	"golang.org/x/text/language"
)

type MessageKey string

const (
	MsgInvalidCredential MessageKey = "login.invalid_credential"
	MsgSignInFailed      MessageKey = "login.failed"
	MsgRegisterFailed    MessageKey = "register.failed"
	MsgLoadProfile       MessageKey = "home.load_failed"
	MsgUpdateProfile     MessageKey = "home.update_failed"
	MsgProfileUpdated    MessageKey = "home.updated"
	MsgSignOutFailed     MessageKey = "home.signout_failed"
)

var supportedLocales = []language.Tag{language.English, language.Spanish}

var localeMatcher = language.NewMatcher(supportedLocales)

// Messages are keyed by "<form>.<field>.<reason>" for field errors and by
// MessageKey for everything else.
var catalogs = map[language.Tag]map[string]string{
	language.English: {
		"login.email.required":              "Enter your email",
		"login.email.invalid_email":         "The email entered is not valid",
		"login.password.required":           "Enter your password",
		"login.password.too_short":          "Password must be at least 8 characters",
		"register.email.required":           "Email is required",
		"register.email.invalid_email":      "Email is not valid",
		"register.password.required":        "Password is required",
		"register.password.weak_password":   "Must be at least 8 characters with an uppercase letter, a lowercase letter, a number and a symbol",
		"register.password.too_long":        "Must be at most 72 bytes long",
		"register.confirmPassword.mismatch": "Passwords do not match",
		"home.too_long":                     "Must be at most 100 characters",

		string(MsgInvalidCredential): "Incorrect email or password",
		string(MsgSignInFailed):      "Sign-in failed. Please try again",
		string(MsgRegisterFailed):    "Registration failed",
		string(MsgLoadProfile):       "Error loading profile",
		string(MsgUpdateProfile):     "Error updating profile",
		string(MsgProfileUpdated):    "Profile updated",
		string(MsgSignOutFailed):     "Error signing out",
	},
	language.Spanish: {
		"login.email.required":              "Ingrese su correo electrónico",
		"login.email.invalid_email":         "El email ingresado no es válido",
		"login.password.required":           "Ingrese su contraseña",
		"login.password.too_short":          "La contraseña debe tener al menos 8 caracteres",
		"register.email.required":           "El email es requerido",
		"register.email.invalid_email":      "El email no es válido",
		"register.password.required":        "La contraseña es requerida",
		"register.password.weak_password":   "Debe tener al menos 8 caracteres, mayúscula, minúscula, número y símbolo",
		"register.password.too_long":        "Debe tener como máximo 72 bytes",
		"register.confirmPassword.mismatch": "Las contraseñas no coinciden",
		"home.too_long":                     "Debe tener como máximo 100 caracteres",

		string(MsgInvalidCredential): "Correo electrónico o contraseña incorrectos",
		string(MsgSignInFailed):      "Error al iniciar sesión. Por favor, intente nuevamente",
		string(MsgRegisterFailed):    "Error al registrarse",
		string(MsgLoadProfile):       "Error al cargar el perfil",
		string(MsgUpdateProfile):     "Error al actualizar el perfil",
		string(MsgProfileUpdated):    "Perfil actualizado correctamente",
		string(MsgSignOutFailed):     "Error al cerrar sesión",
	},
}

// Catalog resolves user-facing strings for one locale.
type Catalog struct {
	tag  language.Tag
	msgs map[string]string
}

// NewCatalog picks the best supported locale for prefs, which may be a single
// tag ("es-MX") or an Accept-Language style list. English is the fallback.
func NewCatalog(prefs ...string) *Catalog {
	_, idx := language.MatchStrings(localeMatcher, prefs...)
	tag := supportedLocales[idx]
	return &Catalog{tag: tag, msgs: catalogs[tag]}
}

func (c *Catalog) Locale() language.Tag {
	return c.tag
}

func (c *Catalog) Text(key MessageKey) string {
	return c.lookup(string(key))
}

// FieldError localizes a validation reason for a field of the given form.
func (c *Catalog) FieldError(form, field, reason string) string {
	if msg := c.lookup(form + "." + field + "." + reason); msg != "" {
		return msg
	}
	if msg := c.lookup(form + "." + reason); msg != "" {
		return msg
	}
	return reason
}

func (c *Catalog) lookup(key string) string {
	if msg, ok := c.msgs[key]; ok {
		return msg
	}
	return catalogs[language.English][key]
}
