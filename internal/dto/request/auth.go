package request

type LoginRequest struct {
	Login      string `json:"login" validate:"required,min=3,max=50"`
	Password   string `json:"password" validate:"required,min=8,max=100"`
	RememberMe bool   `json:"rememberMe"`
}

type RegisterRequest struct {
	Login           string `json:"login" validate:"required,min=3,max=50,login"`
	Password        string `json:"password" validate:"required,min=8,max=100,password_strength"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	FirstName       string `json:"firstName" validate:"required,min=2,max=50"`
	LastName        string `json:"lastName" validate:"required,min=2,max=50"`
	Email           string `json:"email" validate:"required,email,max=100"`
	Phone           string `json:"phone" validate:"required,phone"`
	BirthDate       string `json:"birthDate" validate:"required,past_date"`
	AcceptTerms     bool   `json:"acceptTerms" validate:"eq=true"`
}
