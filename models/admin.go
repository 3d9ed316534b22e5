package models

// Admin access is a single operator account configured through the
// environment (ADMIN_EMAIL + ADMIN_PASSWORD_HASH). There is no admin
// table: a successful login just mints a short-lived admin JWT.

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AdminLoginResponse struct {
	Email     string `json:"email"`
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // seconds
}
