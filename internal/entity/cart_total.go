package entity

// CartTotal is the priced view of a cart. Items are listed once per
// occurrence, unlike the grouped cart view.
type CartTotal struct {
	Items      []Sneaker `json:"items"`
	Total      float64   `json:"total"`
	Delivery   float64   `json:"delivery"`
	FinalTotal float64   `json:"finalTotal"`
}
