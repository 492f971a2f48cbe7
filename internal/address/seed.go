package address

// SeedAddresses returns the demo user's saved addresses, keyed by user ID.
func SeedAddresses() map[int][]Address {
	return map[int][]Address{
		1: {
			{
				AddressID: 1,
				UserID:    1,
				Label:     "Home",
				Line:      "123 Main Street, Apt 4B",
				City:      "Springfield",
				Zip:       "12345",
				IsDefault: true,
			},
			{
				AddressID: 2,
				UserID:    1,
				Label:     "Work",
				Line:      "456 Business Ave, Suite 200",
				City:      "Springfield",
				Zip:       "12346",
			},
		},
	}
}
