package dto

type WaitlistForm struct {
	Email string `form:"email" validate:"required,email"`
	Name  string `form:"name" validate:"omitempty,max=120"`
	Role  string `form:"role" validate:"omitempty,oneof=individual organization"`
}
