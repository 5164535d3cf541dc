package bootstrap

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/odontofast/internal/client/models"
	"github.com/dmitrijs2005/odontofast/internal/logging"
)

// Authenticator is the part of the session service the gate consults.
type Authenticator interface {
	IsAuthenticated(ctx context.Context) bool
	GetCurrentUser(ctx context.Context) *models.UserData
}

// ResolveAuth computes the routing decision from persisted state. It never
// fails: anything other than a valid token plus a readable user record
// yields the unauthenticated route.
func ResolveAuth(ctx context.Context, a Authenticator, log logging.Logger) (d Decision) {
	defer func() {
		if r := recover(); r != nil {
			log.Error(ctx, "auth resolution panicked", "panic", fmt.Sprint(r))
			d = Unauthenticated()
		}
	}()

	if !a.IsAuthenticated(ctx) {
		log.Debug(ctx, "no session token")
		return Unauthenticated()
	}

	user := a.GetCurrentUser(ctx)
	if user == nil {
		log.Warn(ctx, "token present but user record missing or unreadable")
		return Unauthenticated()
	}

	return Authenticated(user.Nome)
}
