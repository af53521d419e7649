package request

type UpdateProfileRequest struct {
	FullName string `json:"fullName" validate:"max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Phone    string `json:"phone" validate:"omitempty,phone"`
}
