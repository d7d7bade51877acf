package models

// LoginInput is the POST /auth/login payload.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on successful login; the session cookie
// rides alongside it.
type LoginResponse struct {
	Message string   `json:"message"`
	User    UserInfo `json:"user"`
}

// AuthCheck is the GET /auth/check payload; User is nil when the
// session is absent or invalid.
type AuthCheck struct {
	Authenticated bool      `json:"authenticated"`
	User          *UserInfo `json:"user,omitempty"`
}

// Message is the generic acknowledgement body.
type Message struct {
	Message string `json:"message"`
}
