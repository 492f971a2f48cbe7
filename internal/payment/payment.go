package payment

// Method is a saved card or wallet the user can pay with at checkout.
type Method struct {
	MethodID  int    `json:"methodId"`
	UserID    int    `json:"userId"`
	Brand     string `json:"brand"`
	Last4     string `json:"last4"`
	Expiry    string `json:"expiry"` // MM/YY
	CreatedAt string `json:"createdAt,omitempty"`
}
