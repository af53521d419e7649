package response

type AdminUserResponse struct {
	ID         int64   `json:"id"`
	Login      string  `json:"login"`
	FullName   string  `json:"fullName,omitempty"`
	Email      string  `json:"email,omitempty"`
	Phone      string  `json:"phone,omitempty"`
	Wallet     float64 `json:"wallet"`
	PhotoPath  *string `json:"photoPath"`
	BonusCoins int     `json:"bonusCoins"`
	Banned     bool    `json:"banned"`
}

type AdminSessionResponse struct {
	UserSessionResponse
	UserID    int64  `json:"userId"`
	UserLogin string `json:"userLogin,omitempty"`
}
