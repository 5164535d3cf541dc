package cli

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/odontofast/internal/client/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for the carteirinha number and password and submits the
// login form. Field errors and the server error are printed; none of them
// is returned, since the form already carries them.
func (a *App) Login(ctx context.Context) error {
	nr, err := getSimpleText(a.reader, a.t("prompt_carteira"), a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.t("prompt_senha"), a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	form := &services.LoginForm{NrCarteira: nr, Senha: string(password)}
	user, err := a.session.SubmitLogin(ctx, form)
	if err != nil {
		a.printFormErrors(form)
		a.log.Debug(ctx, "login failed", "error", err)
		return nil
	}

	a.setUser(user.Nome)
	a.println(a.t("login_ok"))
	if !a.session.IsAuthenticated(ctx) {
		a.println(a.t("session_not_saved"))
	}
	a.println(a.t("greeting", user.Nome))
	return nil
}

func (a *App) printFormErrors(form *services.LoginForm) {
	fields := make([]string, 0, len(form.Errors))
	for f := range form.Errors {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	for _, f := range fields {
		a.println("  " + form.Errors[f])
	}
	if form.ServerError != "" {
		a.println(form.ServerError)
	}
}

// QuickLogin signs in as the fixed test user when enabled by config.
func (a *App) QuickLogin(ctx context.Context) error {
	if !a.config.QuickLoginEnabled {
		a.println(a.t("quick_login_disabled"))
		return nil
	}

	user, err := a.session.QuickLogin(ctx)
	if err != nil {
		a.println(services.UserMessage(err))
		return err
	}

	a.setUser(user.Nome)
	a.println(a.t("greeting", user.Nome))
	return nil
}

// Logout clears the persisted session and returns to the entry screen.
// On a storage failure the user stays on the home screen.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.println(services.UserMessage(err))
		return err
	}
	a.setUser("")
	a.println(a.t("logout_ok"))
	return nil
}

// Whoami shows the persisted user record.
func (a *App) Whoami(ctx context.Context) error {
	user := a.session.GetCurrentUser(ctx)
	if user == nil {
		a.println(a.t("not_logged_in"))
		return nil
	}
	a.println(a.t("greeting", user.Nome))
	if user.NrCarteira != "" {
		a.println("  carteirinha: " + user.NrCarteira)
	}
	if user.Email != "" {
		a.println("  email: " + user.Email)
	}
	return nil
}
