package models

// CartEntry is a catalog item admitted into the cart. Entries carry a value
// snapshot of the game at the moment it was added; the same catalog id may
// appear more than once.
type CartEntry struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Genre    string  `json:"genre"`
	Rating   float64 `json:"rating"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url,omitempty"`
}

// AddToCartRequest carries the already-fetched catalog item the client is
// placing into its cart.
type AddToCartRequest struct {
	ID       string  `json:"id" binding:"required"`
	Title    string  `json:"title" binding:"required"`
	Genre    string  `json:"genre"`
	Rating   float64 `json:"rating"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
}

func (req *AddToCartRequest) ToCartEntry() CartEntry {
	return CartEntry{
		ID:       req.ID,
		Title:    req.Title,
		Genre:    req.Genre,
		Rating:   req.Rating,
		Price:    req.Price,
		ImageURL: req.ImageURL,
	}
}

// CartTotal sums entry prices. Prices are currency floats rendered to two
// decimal places; summation error stays within display precision at cart
// scale, matching the recorded order totals.
func CartTotal(entries []CartEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Price
	}
	return total
}
