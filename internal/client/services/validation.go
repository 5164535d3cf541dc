package services

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Form field names, as reported in ValidationError.Fields.
const (
	FieldNrCarteira = "nrCarteira"
	FieldSenha      = "senha"
)

const MinPasswordLength = 6

// Validation messages.
const (
	MsgCarteiraRequired = "O número da carteira é obrigatório"
	MsgCarteiraDigits   = "Digite apenas números"
	MsgSenhaRequired    = "A senha é obrigatória"
	MsgSenhaTooShort    = "A senha deve ter pelo menos 6 caracteres"
)

var digitsRe = regexp.MustCompile(`^\d+$`)

// LoginForm is the transient state of one login attempt.
type LoginForm struct {
	NrCarteira string
	Senha      string

	// Errors maps field name to message; empty means valid.
	Errors map[string]string
	// ServerError holds the message of a failure that happened after
	// validation passed.
	ServerError string
}

// Valid reports whether the last validation produced no field errors.
func (f *LoginForm) Valid() bool {
	return len(f.Errors) == 0
}

// ValidateLoginForm checks the raw inputs. It returns nil or a
// *ValidationError; it never touches the network.
func ValidateLoginForm(nrCarteira, senha string) error {
	fields := map[string]string{}

	switch {
	case strings.TrimSpace(nrCarteira) == "":
		fields[FieldNrCarteira] = MsgCarteiraRequired
	case !digitsRe.MatchString(nrCarteira):
		fields[FieldNrCarteira] = MsgCarteiraDigits
	}

	switch {
	case senha == "":
		fields[FieldSenha] = MsgSenhaRequired
	case utf8.RuneCountInString(senha) < MinPasswordLength:
		fields[FieldSenha] = MsgSenhaTooShort
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
