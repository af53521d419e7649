package entity

type Profile struct {
	ID         int64   `json:"id"`
	Login      string  `json:"login"`
	FullName   string  `json:"fullName,omitempty"`
	Email      string  `json:"email,omitempty"`
	Phone      string  `json:"phone,omitempty"`
	Wallet     float64 `json:"wallet"`
	PhotoPath  *string `json:"photoPath,omitempty"`
	BonusCoins int     `json:"bonusCoins"`
	Banned     bool    `json:"banned"`
	Role       string  `json:"role,omitempty"`
}

// ProfileUpdate hanya field yang boleh diubah sendiri oleh user.
type ProfileUpdate struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}
