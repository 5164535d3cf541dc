// Package client contains client-side building blocks for talking to the
// OdontoFast backend and for bootstrapping local storage.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) for the
//     remote auth endpoint.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) posting
//     {nrCarteira, senha} to <base>/login and mapping responses to
//     models.LoginResponse or typed errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) opening the
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// A non-2xx answer becomes *AuthRejectedError carrying the server's
// "mensagem" (or DefaultLoginFailureMessage); it matches ErrAuthRejected
// with errors.Is. Unreachable hosts, timeouts and malformed bodies wrap
// ErrNetworkFailure. Nothing is retried here.
//
// See Also
//
//   - Interface:  Client
//   - HTTP impl:  HTTPClient
//   - DB helpers: InitDatabase, RunMigrations
//   - Errors:     ErrAuthRejected, ErrNetworkFailure, AuthRejectedError
package client
