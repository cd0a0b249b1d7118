package dto

// HotelFormDTO is parsed from the multipart form fields of the
// my-hotels create/update endpoints (images travel separately as files).
type HotelFormDTO struct {
	Name          string
	City          string
	Country       string
	Description   string
	Type          string
	AdultCount    int
	ChildCount    int
	Facilities    []string
	PricePerNight float64
	StarRating    int
	ImageUrls     []string // urls the client wants to keep on update
}
