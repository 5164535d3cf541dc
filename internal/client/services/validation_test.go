package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/odontofast/internal/client/client"
	"github.com/dmitrijs2005/odontofast/internal/client/models"
	"github.com/dmitrijs2005/odontofast/internal/client/repositories/session"
	"github.com/dmitrijs2005/odontofast/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLoginForm(t *testing.T) {
	tests := []struct {
		name   string
		nr     string
		senha  string
		fields map[string]string
	}{
		{name: "valid, 6 chars", nr: "123456", senha: "abcdef"},
		{name: "letters in carteira", nr: "12a3", senha: "abcdef", fields: map[string]string{FieldNrCarteira: MsgCarteiraDigits}},
		{name: "symbols in carteira", nr: "12-34", senha: "abcdef", fields: map[string]string{FieldNrCarteira: MsgCarteiraDigits}},
		{name: "padded carteira", nr: " 123 ", senha: "abcdef", fields: map[string]string{FieldNrCarteira: MsgCarteiraDigits}},
		{name: "blank carteira", nr: "   ", senha: "abcdef", fields: map[string]string{FieldNrCarteira: MsgCarteiraRequired}},
		{name: "short password", nr: "1", senha: "abcde", fields: map[string]string{FieldSenha: MsgSenhaTooShort}},
		{name: "multibyte password counts characters", nr: "1", senha: "ããããã", fields: map[string]string{FieldSenha: MsgSenhaTooShort}},
		{name: "both empty", nr: "", senha: "", fields: map[string]string{
			FieldNrCarteira: MsgCarteiraRequired,
			FieldSenha:      MsgSenhaRequired,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLoginForm(tt.nr, tt.senha)
			if tt.fields == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidationFailure)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.fields, verr.Fields)
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{FieldSenha: "b", FieldNrCarteira: "a"}}
	assert.Equal(t, "validation failure: nrCarteira: a; senha: b", err.Error())
}

func TestSubmitLogin_InvalidNeverCallsRemote(t *testing.T) {
	fc := &fakeClient{LoginRet: &models.LoginResponse{Nome: "Ana", Token: "t"}}
	svc := NewSessionService(fc, session.NewMemoryStore(), logging.Nop())

	form := &LoginForm{NrCarteira: "12a3", Senha: "abcdef"}
	_, err := svc.SubmitLogin(context.Background(), form)

	require.ErrorIs(t, err, ErrValidationFailure)
	assert.Zero(t, fc.Calls)
	assert.False(t, form.Valid())
	assert.Equal(t, MsgCarteiraDigits, form.Errors[FieldNrCarteira])
	assert.Empty(t, form.ServerError)
}

func TestSubmitLogin_ValidProceedsToLogin(t *testing.T) {
	fc := &fakeClient{LoginRet: &models.LoginResponse{Nome: "Ana", Token: "t"}}
	svc := NewSessionService(fc, session.NewMemoryStore(), logging.Nop())

	form := &LoginForm{NrCarteira: "123456", Senha: "abcdef"}
	user, err := svc.SubmitLogin(context.Background(), form)

	require.NoError(t, err)
	assert.Equal(t, 1, fc.Calls)
	assert.Equal(t, "Ana", user.Nome)
	assert.True(t, form.Valid())
}

func TestSubmitLogin_ServerErrorSlot(t *testing.T) {
	fc := &fakeClient{LoginErr: &client.AuthRejectedError{Status: 401, Message: "Senha incorreta"}}
	svc := NewSessionService(fc, session.NewMemoryStore(), logging.Nop())

	form := &LoginForm{NrCarteira: "123456", Senha: "abcdef", ServerError: "stale"}
	_, err := svc.SubmitLogin(context.Background(), form)

	require.ErrorIs(t, err, client.ErrAuthRejected)
	assert.True(t, form.Valid(), "server errors are not field errors")
	assert.Equal(t, "Senha incorreta", form.ServerError)
}

func TestUserMessage(t *testing.T) {
	assert.Empty(t, UserMessage(nil))
	assert.Equal(t, MsgUnexpected, UserMessage(errors.New("???")))
	assert.Equal(t, MsgNetworkFailure, UserMessage(client.ErrNetworkFailure))
	assert.Equal(t, MsgStorageFailure, UserMessage(session.ErrStorageFailure))
}
