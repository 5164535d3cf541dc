package devserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/odontofast/internal/client/models"
	"github.com/rs/zerolog"
)

// Messages returned in the "mensagem" field.
const (
	MsgInvalidRequest     = "Requisição inválida"
	MsgMissingFields      = "Número da carteirinha e senha são obrigatórios"
	MsgInvalidCredentials = "Número da carteirinha ou senha inválidos"
	MsgTooManyAttempts    = "Muitas tentativas. Tente novamente mais tarde"
	MsgInternal           = "Erro interno do servidor"
)

func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	body, err := json.Marshal(payload)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Int("http_status", status).Msg("encode response")
		http.Error(w, MsgInternal, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func respondError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	respondJSON(w, r, status, models.ErrorResponse{Mensagem: msg})
}

// HandleLogin checks the credentials and issues a token.
func HandleLogin(deps *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := zerolog.Ctx(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, deps.Config.MaxBody)
		var in models.LoginRequest
		dec := json.NewDecoder(r.Body)
		if err := dec.Decode(&in); err != nil {
			log.Warn().Err(err).Msg("malformed login body")
			respondError(w, r, http.StatusBadRequest, MsgInvalidRequest)
			return
		}

		if strings.TrimSpace(in.NrCarteira) == "" || in.Senha == "" {
			respondError(w, r, http.StatusBadRequest, MsgMissingFields)
			return
		}

		user, err := deps.Users.Authenticate(in.NrCarteira, in.Senha)
		if errors.Is(err, ErrInvalidCredentials) {
			log.Warn().Str("nrCarteira", in.NrCarteira).Msg("login rejected")
			respondError(w, r, http.StatusUnauthorized, MsgInvalidCredentials)
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("authenticate")
			respondError(w, r, http.StatusInternalServerError, MsgInternal)
			return
		}

		token, err := deps.Tokens.Issue(user)
		if err != nil {
			log.Error().Err(err).Msg("issue token")
			respondError(w, r, http.StatusInternalServerError, MsgInternal)
			return
		}

		log.Info().Str("nrCarteira", user.NrCarteira).Str("user_id", user.ID).Msg("login succeeded")
		respondJSON(w, r, http.StatusOK, models.LoginResponse{Nome: user.Nome, Token: token})
	}
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok", "service": "odontofast-devserver"})
}
