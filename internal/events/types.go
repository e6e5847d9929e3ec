package events

// OrderPlaced is published after a dispatch attempt reaches the sent state.
type OrderPlaced struct {
	ProductID string  `json:"product_id"`
	Product   string  `json:"product"`
	Quantity  int     `json:"qty"`
	Total     float64 `json:"total"`
	Channel   string  `json:"channel"`
	ViaRemote bool    `json:"via_remote"`
}
