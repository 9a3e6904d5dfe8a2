package dto

import "time"

// Auth Request DTOs

// LoginRequest contains the credentials forwarded to the banking backend
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest registers a new customer with the backend.
// ConfirmPassword is checked here and never forwarded.
type SignupRequest struct {
	Username        string `json:"username" validate:"required,min=1,max=100"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Email           string `json:"email" validate:"required,email"`
	Mobile          string `json:"mobile" validate:"required,max=20"`
}

// Body returns the payload the backend signup endpoint expects
func (r SignupRequest) Body() SignupBody {
	return SignupBody{
		Username: r.Username,
		Password: r.Password,
		Email:    r.Email,
		Mobile:   r.Mobile,
	}
}

type SignupBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
}

// ForgotPasswordRequest asks the backend to mail a reset OTP
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest sets a new password using the mailed OTP
type ResetPasswordRequest struct {
	Email           string `json:"email" validate:"required,email"`
	OTP             string `json:"otp" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

// Body returns the payload the backend reset endpoint expects
func (r ResetPasswordRequest) Body() ResetPasswordBody {
	return ResetPasswordBody{Email: r.Email, OTP: r.OTP, NewPassword: r.NewPassword}
}

type ResetPasswordBody struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// Auth Response DTOs

// BackendLoginResponse is the backend's login payload. Some deployments name
// the token "accessToken" instead of "token".
type BackendLoginResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"accessToken"`
}

// BearerToken returns token, falling back to accessToken
func (r BackendLoginResponse) BearerToken() string {
	if r.Token != "" {
		return r.Token
	}
	return r.AccessToken
}

// SessionResponse describes a console session after login
type SessionResponse struct {
	SessionID string    `json:"sessionId"`
	Subject   string    `json:"subject"`
	Role      string    `json:"role"`
	Landing   string    `json:"landing"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// LandingResponse tells the client where to navigate
type LandingResponse struct {
	Route string `json:"route"`
}
