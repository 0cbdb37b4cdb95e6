package handler

// updateUserRequest carries the admin patch. Pointer fields distinguish
// "leave unchanged" from an explicit value.
type updateUserRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=3"`
	Email    *string `json:"email,omitempty"    validate:"omitempty,email"`
	IsVip    *bool   `json:"is_vip,omitempty"`
	IsAdmin  *bool   `json:"is_admin,omitempty"`
}

type decideVipRequestRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

type themeRequest struct {
	PrimaryColor    string `json:"primary_color"    validate:"required,hexcolor"`
	SecondaryColor  string `json:"secondary_color"  validate:"required,hexcolor"`
	AccentColor     string `json:"accent_color"     validate:"required,hexcolor"`
	BackgroundColor string `json:"background_color" validate:"required,hexcolor"`
}
