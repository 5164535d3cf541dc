// Package bootstrap joins the startup prerequisites of the client into one
// readiness gate and emits exactly one routing decision per process.
//
// The gate is a two-state machine, Pending -> Resolved(decision). It always
// registers the "auth" prerequisite, which is satisfied together with the
// decision computed by ResolveAuth, plus any number of externally owned
// prerequisites (resource loading and the like) satisfied by name. The
// transition fires when the last prerequisite is satisfied, whatever the
// order, and never again.
//
// Auth resolution always degrades to the unauthenticated route: a missing
// token, an unreadable user record and even a panic in the session service
// all end in RouteUnauthenticated, never in a hung or crashed startup.
package bootstrap
