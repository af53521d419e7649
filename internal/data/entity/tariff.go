package entity

type Tariff struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Hours int     `json:"hours"`
	VIP   bool    `json:"vip"`
}

// TariffInput is the createTariff/updateTariff payload. Price is for the whole package.
type TariffInput struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Hours int     `json:"hours"`
	VIP   bool    `json:"isVip"`
}
