package payment

// SeedMethods returns the demo user's saved payment methods, keyed by user ID.
func SeedMethods() map[int][]Method {
	return map[int][]Method{
		1: {
			{MethodID: 1, UserID: 1, Brand: "Visa", Last4: "1234", Expiry: "12/26"},
			{MethodID: 2, UserID: 1, Brand: "Mastercard", Last4: "5678", Expiry: "08/25"},
		},
	}
}
