package entity

// Room adalah lantai/zona di klub. VIP room hanya bisa dipesan dengan tarif VIP.
type Room struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	VIP  bool   `json:"vip"`
}

type PC struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	CPU     string `json:"cpu,omitempty"`
	GPU     string `json:"gpu,omitempty"`
	RAM     string `json:"ram,omitempty"`
	Monitor string `json:"monitor,omitempty"`
	Enabled bool   `json:"enabled"`
	Room    Room   `json:"room"`
}

type PCUpdate struct {
	Name      string `json:"name"`
	RoomID    int64  `json:"roomId"`
	CPU       string `json:"cpu"`
	GPU       string `json:"gpu"`
	RAM       string `json:"ram"`
	Monitor   string `json:"monitor"`
	IsEnabled bool   `json:"isEnabled"`
}
