package dto

// AuthRequest is the single /auth endpoint payload; Action selects the
// operation the way the admin frontend drives it.
type AuthRequest struct {
	Action   string `json:"action" validate:"required"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminInfo is the identity carried by a verified session.
type AdminInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name,omitempty"`
}
