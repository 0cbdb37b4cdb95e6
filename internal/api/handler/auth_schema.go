package handler

import "github.com/monsterwith/monstermedia/internal/core/domain"

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type vipRequestRequest struct {
	Email  string `json:"email"  validate:"required,email"`
	Reason string `json:"reason"`
}

type vipRequestResponse struct {
	Message string             `json:"message"`
	Request *domain.VipRequest `json:"request"`
}

type messageResponse struct {
	Message string `json:"message"`
}
