package entity

// ShopEvent is published after every successful account, favorites or cart change.
type ShopEvent struct {
	ID         string `json:"id"`
	Type       string `json:"type"` // e.g., "user.registered", "cart.item.added"
	UserID     int    `json:"user_id"`
	SneakerID  int    `json:"sneaker_id,omitempty"`
	Quantity   int    `json:"quantity,omitempty"`
	OccurredAt string `json:"occurred_at"`
}
