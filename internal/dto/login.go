package dto

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the success shape; the "Password Incorrect" and
// "User not found" outcomes reuse MessageResponse with status 200, matching
// the observed behavior of the service.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Name    string `json:"name"`
}
