package domain

// Role is the viewer's role within the platform.
type Role string

const (
	RoleViewer Role = "viewer"
	RoleAdmin  Role = "admin"
)

// SubscriptionStatus is the viewer's premium subscription state.
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionInactive SubscriptionStatus = "inactive"
)

// Viewer is the identity the auth middleware resolves for a request.
// The zero value is an anonymous guest.
type Viewer struct {
	ID           string
	Subscription SubscriptionStatus
	Role         Role
}

func (v Viewer) IsAnonymous() bool {
	return v.ID == ""
}

func (v Viewer) IsAdmin() bool {
	return v.Role == RoleAdmin
}
