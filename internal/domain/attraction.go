package domain

// Attraction is a catalog entry shown to visitors.
type Attraction struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	FullDescription string   `json:"fullDescription,omitempty"`
	Image           string   `json:"image"`
	Images          []string `json:"images,omitempty"`
	Location        string   `json:"location"`
	Rating          float64  `json:"rating"`
	Category        string   `json:"category"`
	Price           string   `json:"price"`
	OpeningHours    string   `json:"openingHours"`
	Tags            []string `json:"tags"`
	Features        []string `json:"features,omitempty"`
	Latitude        float64  `json:"latitude,omitempty"`
	Longitude       float64  `json:"longitude,omitempty"`
}
