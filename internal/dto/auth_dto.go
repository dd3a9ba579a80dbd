package dto

import "github.com/fadilmartias/intervue-backend/internal/apperror"

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Github   string `json:"github"`
	Password string `json:"password"`
}

func (r *RegisterRequest) Validate() error {
	fields := map[string]string{}
	if r.Username == "" {
		fields["username"] = "username is required"
	}
	if r.Email == "" {
		fields["email"] = "email is required"
	}
	if r.Github == "" {
		fields["github"] = "github is required"
	}
	if len(r.Password) < 8 {
		fields["password"] = "password must be at least 8 characters"
	}
	if len(fields) > 0 {
		return apperror.NewValidationError(fields)
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	fields := map[string]string{}
	if r.Email == "" {
		fields["email"] = "email is required"
	}
	if r.Password == "" {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		return apperror.NewValidationError(fields)
	}
	return nil
}

type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}
