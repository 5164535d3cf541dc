// Package models holds the client-side identity record and the login wire types.
package models

import "encoding/json"

// UserData is the locally cached identity of the logged-in user. It is the
// JSON document persisted in the user slot of the session store; optional
// fields are omitted when empty.
type UserData struct {
	// ID is the backend identifier, when known.
	ID int64 `json:"id,omitempty"`

	// Nome is the display name. Required.
	Nome string `json:"nome"`

	Email string `json:"email,omitempty"`

	// NrCarteira is the membership (card) number used to log in.
	NrCarteira string `json:"nrCarteira,omitempty"`

	// Perfil is the role, e.g. "paciente".
	Perfil string `json:"perfil,omitempty"`
}

// Encode serializes u for storage.
func (u *UserData) Encode() (string, error) {
	b, err := json.Marshal(u)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeUserData parses a stored user record.
func DecodeUserData(s string) (*UserData, error) {
	var u UserData
	if err := json.Unmarshal([]byte(s), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	NrCarteira string `json:"nrCarteira"`
	Senha      string `json:"senha"`
}

// LoginResponse is the success body of POST /login. Token may be absent on
// backends that do not issue one.
type LoginResponse struct {
	Nome  string `json:"nome"`
	Token string `json:"token,omitempty"`
}

// ErrorResponse is the failure body of POST /login.
type ErrorResponse struct {
	Mensagem string `json:"mensagem,omitempty"`
}
