package address

type Address struct {
	AddressID int    `json:"addressId"`
	UserID    int    `json:"userId"`
	Label     string `json:"label"`
	Line      string `json:"line"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
	IsDefault bool   `json:"isDefault"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
