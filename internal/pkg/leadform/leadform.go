// Package leadform holds the form validation rules for lead submissions.
// The landing page applies the same rules in the browser, so any change here
// has to be mirrored there (and vice versa) to keep the two surfaces in sync.
package leadform

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Fixed user-facing reasons, one per field.
const (
	MsgRequired        = "Todos os campos são obrigatórios"
	MsgInvalidName     = "Nome deve ter pelo menos 2 caracteres e conter apenas letras"
	MsgInvalidEmail    = "E-mail inválido"
	MsgInvalidWhatsApp = "WhatsApp deve ter 11 dígitos"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError names a failed field and its fixed reason.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidName reports whether s is a plausible full name: at least 2 runes,
// letters (accented included) and spaces only.
func ValidName(s string) bool {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) < 2 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && r != ' ' {
			return false
		}
	}
	return true
}

// ValidEmail reports whether s has a basic local@domain.tld shape.
func ValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return emailRe.MatchString(s)
}

// ValidWhatsApp reports whether s contains exactly 11 digits once every
// non-digit character (mask punctuation, spaces) is stripped.
func ValidWhatsApp(s string) bool {
	return len(Digits(s)) == 11
}

// Digits strips every non-digit rune from s. The store keeps WhatsApp
// numbers digits-only; display formatting belongs to the frontend.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Check validates the three submission fields and returns one FieldError per
// failure, in field order. A nil result means the submission is acceptable.
func Check(nomeCompleto, email, whatsapp string) []FieldError {
	var errs []FieldError
	if !ValidName(nomeCompleto) {
		errs = append(errs, FieldError{Field: "nomeCompleto", Message: MsgInvalidName})
	}
	if !ValidEmail(email) {
		errs = append(errs, FieldError{Field: "email", Message: MsgInvalidEmail})
	}
	if !ValidWhatsApp(whatsapp) {
		errs = append(errs, FieldError{Field: "whatsapp", Message: MsgInvalidWhatsApp})
	}
	return errs
}
