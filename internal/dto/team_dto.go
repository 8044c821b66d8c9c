package dto

type InviteForm struct {
	Email string `form:"email" validate:"required,email"`
	Name  string `form:"name" validate:"omitempty,max=120"`
	Role  string `form:"role" validate:"required,oneof=admin recruiter interviewer viewer"`
}

func (f InviteForm) Payload() map[string]interface{} {
	return map[string]interface{}{
		"email": f.Email,
		"name":  f.Name,
		"role":  f.Role,
	}
}

type MemberUpdateForm struct {
	Role   string `form:"role" validate:"required,oneof=admin recruiter interviewer viewer"`
	Status string `form:"status" validate:"omitempty,oneof=active suspended"`
}

func (f MemberUpdateForm) Payload() map[string]interface{} {
	p := map[string]interface{}{"role": f.Role}
	if f.Status != "" {
		p["status"] = f.Status
	}
	return p
}
