package entity

import "time"

// Crop is a product listed for sale in the AI store.
// Identifiers are already stringified, missing values are zero.
type Crop struct {
	ID        string
	Name      string
	Price     float64
	Quantity  float64
	ImageID   string
	UserID    string
	CreatedAt *time.Time
}
