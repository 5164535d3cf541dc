package services

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrijs2005/odontofast/internal/client/client"
	"github.com/dmitrijs2005/odontofast/internal/client/repositories/session"
)

// ErrValidationFailure is matched by every *ValidationError.
var ErrValidationFailure = errors.New("validation failure")

// ValidationError carries per-field messages keyed by form field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, k := range slices.Sorted(maps.Keys(e.Fields)) {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failure: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailure
}

// User-facing messages for failures that carry no server text.
const (
	MsgNetworkFailure = "Não foi possível conectar ao servidor"
	MsgStorageFailure = "Não foi possível salvar a sessão neste dispositivo"
	MsgUnexpected     = "Ocorreu um erro inesperado"
)

// UserMessage picks the text a screen should show for err.
func UserMessage(err error) string {
	var rej *client.AuthRejectedError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &rej):
		return rej.Message
	case errors.Is(err, client.ErrNetworkFailure):
		return MsgNetworkFailure
	case errors.Is(err, session.ErrStorageFailure):
		return MsgStorageFailure
	default:
		return MsgUnexpected
	}
}
