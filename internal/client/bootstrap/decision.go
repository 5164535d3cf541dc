package bootstrap

type Route string

const (
	RouteUnauthenticated Route = "unauthenticated"
	RouteAuthenticated   Route = "authenticated"
)

// Decision is the routing outcome handed to the UI.
type Decision struct {
	Route       Route  `json:"route"`
	DisplayName string `json:"displayName,omitempty"`
}

func Unauthenticated() Decision {
	return Decision{Route: RouteUnauthenticated}
}

func Authenticated(displayName string) Decision {
	return Decision{Route: RouteAuthenticated, DisplayName: displayName}
}
