package domain

// ModelProfile is a bookable fashion model's public profile.
type ModelProfile struct {
	ID              string   `json:"id" bson:"id"`
	Name            string   `json:"name" bson:"name"`
	Bio             string   `json:"bio" bson:"bio"`
	HourlyRate      float64  `json:"hourly_rate" bson:"hourly_rate"`
	PortfolioImages []string `json:"portfolio_images" bson:"portfolio_images"`
	Availability    []string `json:"availability" bson:"availability"`
}
