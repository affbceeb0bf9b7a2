package domain

import (
	"time"
)

// Cart is the session-local selection of products. Line order is insertion
// order and is preserved for stable display.
type Cart struct {
	Lines []CartLine
}

// CartLine pairs a product snapshot with a quantity. The product fields are
// captured at the moment of the first add; later catalog changes do not
// reach into existing lines.
type CartLine struct {
	Product

	Quantity int
	AddedAt  time.Time
}
