// Package account contiene las reglas de registro, fortaleza de contraseña y perfil del emprendedor.
// Los mensajes se devuelven en el idioma de la petición (en, hi, mr).
package account

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jhoicas/gramin-udyami-api/internal/domain"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/entity"
)

// Longitudes mínimas.
const (
	MinUserIDLength   = 3
	MinPasswordLength = 8
	MinAge            = 18
	MaxAge            = 100
)

// reservedUserIDs no pueden registrarse (comparación sin mayúsculas).
var reservedUserIDs = map[string]struct{}{
	"admin":   {},
	"test":    {},
	"user123": {},
}

// Claves de mensajes.
const (
	MsgUserIDInvalid      = "userIdInvalid"
	MsgUserIDTaken        = "userIdTaken"
	MsgWeakPassword       = "weakPassword"
	MsgPasswordMismatch   = "passwordMismatch"
	MsgRequiredField      = "requiredField"
	MsgInvalidOption      = "invalidOption"
	MsgInvalidAge         = "invalidAge"
	MsgInvalidCredentials = "invalidCredentials"
)

var messages = map[string]map[string]string{
	"en": {
		MsgUserIDInvalid:      "User ID must be at least 3 characters long",
		MsgUserIDTaken:        "This User ID is already taken",
		MsgWeakPassword:       "Password must be at least 8 characters with letters and numbers",
		MsgPasswordMismatch:   "Passwords do not match",
		MsgRequiredField:      "This field is required",
		MsgInvalidOption:      "Please select a valid option",
		MsgInvalidAge:         "Age must be between 18 and 100",
		MsgInvalidCredentials: "Invalid user ID or password",
	},
	"hi": {
		MsgUserIDInvalid:      "उपयोगकर्ता आईडी कम से कम 3 अक्षर लंबी होनी चाहिए",
		MsgUserIDTaken:        "यह उपयोगकर्ता आईडी पहले से ली गई है",
		MsgWeakPassword:       "पासवर्ड कम से कम 8 अक्षर का होना चाहिए जिसमें अक्षर और संख्या हों",
		MsgPasswordMismatch:   "पासवर्ड मेल नहीं खाते",
		MsgRequiredField:      "यह फील्ड आवश्यक है",
		MsgInvalidCredentials: "अमान्य यूजर आईडी या पासवर्ड",
	},
	"mr": {
		MsgUserIDInvalid:      "वापरकर्ता आयडी कमीत कमी 3 अक्षर लांब असावा",
		MsgUserIDTaken:        "हा वापरकर्ता आयडी आधीच घेतला आहे",
		MsgWeakPassword:       "पासवर्ड कमीत कमी 8 अक्षरांचा असावा ज्यात अक्षरे आणि संख्या असावी",
		MsgPasswordMismatch:   "पासवर्ड जुळत नाहीत",
		MsgRequiredField:      "हे फील्ड आवश्यक आहे",
		MsgInvalidCredentials: "अवैध यूजर आयडी किंवा पासवर्ड",
	},
}

// Message devuelve el texto de key en lang, con respaldo en inglés.
func Message(lang, key string) string {
	if m, ok := messages[lang]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	return messages["en"][key]
}

// NormalizeUserID recorta espacios del user_id tal como se guarda.
func NormalizeUserID(userID string) string {
	return strings.TrimSpace(userID)
}

// IsReservedUserID indica si el user_id está reservado.
func IsReservedUserID(userID string) bool {
	_, ok := reservedUserIDs[strings.ToLower(NormalizeUserID(userID))]
	return ok
}

// ValidateUserID devuelve la clave de mensaje del primer problema, o "".
func ValidateUserID(userID string) string {
	userID = NormalizeUserID(userID)
	if utf8.RuneCountInString(userID) < MinUserIDLength {
		return MsgUserIDInvalid
	}
	if IsReservedUserID(userID) {
		return MsgUserIDTaken
	}
	return ""
}

// IsStrongPassword: al menos 8 caracteres con una letra ASCII y un dígito.
func IsStrongPassword(password string) bool {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return false
	}
	hasLetter, hasDigit := false, false
	for _, r := range password {
		switch {
		case r < unicode.MaxASCII && unicode.IsLetter(r):
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// Registration datos mínimos del formulario de alta.
type Registration struct {
	UserID          string
	Password        string
	ConfirmPassword string
}

// ValidateRegistration aplica las reglas del formulario y acumula errores por campo.
func ValidateRegistration(lang string, in Registration) error {
	verr := domain.NewValidationError()
	if key := ValidateUserID(in.UserID); key != "" {
		verr.Add("user_id", Message(lang, key))
	}
	if !IsStrongPassword(in.Password) {
		verr.Add("password", Message(lang, MsgWeakPassword))
	}
	if in.Password != in.ConfirmPassword {
		verr.Add("confirm_password", Message(lang, MsgPasswordMismatch))
	}
	return verr.OrNil()
}

// Niveles de fortaleza.
const (
	StrengthWeak   = "weak"
	StrengthFair   = "fair"
	StrengthGood   = "good"
	StrengthStrong = "strong"
)

// PasswordStrength puntaje del medidor de contraseña: 0, 25, 50, 75 o 100.
func PasswordStrength(password string) (score int, level string) {
	n := utf8.RuneCountInString(password)
	switch {
	case n == 0:
		return 0, StrengthWeak
	case n < 4:
		return 25, StrengthWeak
	case n < MinPasswordLength:
		return 50, StrengthFair
	case IsStrongPassword(password):
		return 100, StrengthStrong
	default:
		return 75, StrengthGood
	}
}

// ValidateProfile verifica campos obligatorios, edad y bandas de selección.
func ValidateProfile(lang string, p *entity.Profile) error {
	verr := domain.NewValidationError()
	required := []struct {
		field string
		value string
	}{
		{"name", p.Name},
		{"address", p.Address},
		{"district", p.District},
		{"occupation", p.Occupation},
		{"business_type", p.BusinessType},
		{"monthly_income", p.MonthlyIncome},
		{"business_experience", p.BusinessExperience},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			verr.Add(r.field, Message(lang, MsgRequiredField))
		}
	}
	switch {
	case p.Age == 0:
		verr.Add("age", Message(lang, MsgRequiredField))
	case p.Age < MinAge || p.Age > MaxAge:
		verr.Add("age", Message(lang, MsgInvalidAge))
	}
	if p.MonthlyIncome != "" && !entity.IsKnownIncomeRange(p.MonthlyIncome) {
		verr.Add("monthly_income", Message(lang, MsgInvalidOption))
	}
	if p.BusinessExperience != "" && !entity.IsKnownExperience(p.BusinessExperience) {
		verr.Add("business_experience", Message(lang, MsgInvalidOption))
	}
	return verr.OrNil()
}
