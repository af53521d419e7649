package request

// TariffRequest: price adalah harga paket penuh, bukan per jam.
type TariffRequest struct {
	Name  string  `json:"name" validate:"required,min=2,max=100"`
	Price float64 `json:"price" validate:"gt=0"`
	Hours int     `json:"hours" validate:"gt=0,max=24"`
	VIP   bool    `json:"vip"`
}

type UpdatePCRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	RoomID  int64  `json:"roomId" validate:"required,gt=0"`
	CPU     string `json:"cpu" validate:"required,max=100"`
	GPU     string `json:"gpu" validate:"required,max=100"`
	RAM     string `json:"ram" validate:"required,max=100"`
	Monitor string `json:"monitor" validate:"required,max=100"`
	Enabled bool   `json:"enabled"`
}

// BonusCoinsRequest adds coins to a user's balance.
type BonusCoinsRequest struct {
	Coins int `json:"coins" validate:"gt=0,max=1000000"`
}
