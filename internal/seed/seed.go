// Package seed holds the fixed catalog and accounts the auction starts from.
package seed

import model "auction-house/internal/models"

// Items returns the seed catalog. Highest bids start at the starting price.
func Items() []model.Item {
	return []model.Item{
		{ID: 1, Name: "Antique Clock", StartingPrice: 1200, Image: "images/clock.jpg", HighestBid: 1200},
		{ID: 2, Name: "Telephone-1975", StartingPrice: 950, Image: "images/telephone.jpg", HighestBid: 950},
		{ID: 3, Name: "Antique Camera", StartingPrice: 1800, Image: "images/camera.jpg", HighestBid: 1800},
	}
}

// Users returns the seed accounts, including the reserved admin account.
func Users() map[string]string {
	return map[string]string{
		"admin":   "adminpass",
		"alice":   "pass123",
		"bob":     "secret",
		"charlie": "qwerty",
	}
}
