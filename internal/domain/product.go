package domain

// Rating is the aggregate review score carried on a catalog record.
type Rating struct {
	Rate  float64
	Count int
}

// Product is a cached copy of a catalog record; the backend remains the
// source of truth and assigns IDs.
type Product struct {
	ID          string
	Title       string
	Description string
	Category    string
	Gender      string
	Image       string
	Price       Money
	Rating      Rating
}
