package dto

// TokenRequest is the identity claim posted to the token endpoint. Email is
// the only field the guards care about; the rest rides along in the token.
type TokenRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TokenResponse carries the issued session token.
type TokenResponse struct {
	Token string `json:"token"`
}

// NewUserRequest is the payload for user creation.
type NewUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Photo string `json:"photoURL"`
}

// AdminStatusResponse answers the admin-status probe.
type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}
