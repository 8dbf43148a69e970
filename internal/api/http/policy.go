package http

// Guard names an access policy applied before a route's handler runs.
type Guard int

const (
	// GuardNone leaves the route open.
	GuardNone Guard = iota
	// GuardAuthenticated requires a valid bearer token.
	GuardAuthenticated
	// GuardAdmin requires a valid bearer token and the admin role.
	GuardAdmin
)

// RoutePolicies is the per-route policy table. It exists as data, rather
// than hard-coded middleware chains, so individual routes can be tightened
// without touching handler code.
type RoutePolicies struct {
	ListUsers      Guard
	CreateUser     Guard
	ElevateUser    Guard
	AdminStatus    Guard
	DeleteUser     Guard
	ListMenu       Guard
	CreateMenuItem Guard
	DeleteMenuItem Guard
	ListReviews    Guard
	ListCarts      Guard
	CreateCartItem Guard
	DeleteCartItem Guard
	CreateIntent   Guard
}

// DefaultPolicies reproduces the gateway's original access table verbatim,
// including the routes it leaves unguarded (role elevation, user delete,
// cart create/delete). Tightening those is a deliberate operator decision,
// not a silent default change.
func DefaultPolicies() RoutePolicies {
	return RoutePolicies{
		ListUsers:      GuardAdmin,
		CreateUser:     GuardNone,
		ElevateUser:    GuardNone,
		AdminStatus:    GuardAuthenticated,
		DeleteUser:     GuardNone,
		ListMenu:       GuardNone,
		CreateMenuItem: GuardAdmin,
		DeleteMenuItem: GuardAdmin,
		ListReviews:    GuardNone,
		ListCarts:      GuardAuthenticated,
		CreateCartItem: GuardNone,
		DeleteCartItem: GuardNone,
		CreateIntent:   GuardAuthenticated,
	}
}
