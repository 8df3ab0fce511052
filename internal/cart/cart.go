package cart

// Item is one configured print in the cart. Configuration fields hold
// display labels, not ids; the variant id is already resolved.
type Item struct {
	ID        string `json:"id"`
	VariantID string `json:"variant_id"`
	ImageID   string `json:"image_id"`
	ImageURL  string `json:"image_url"`
	Title     string `json:"title"`
	Size      string `json:"size"`
	Medium    string `json:"medium"`
	Frame     string `json:"frame"`
	Mat       string `json:"mat"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
}

// PlaceholderCheckoutURL is the local redirect target used until a real
// checkout session exists.
const PlaceholderCheckoutURL = "/checkout-placeholder"

// Cart is a client's collection of configured items. TotalPrice is derived
// and always equals the sum of item price times quantity.
type Cart struct {
	ID          string `json:"id"`
	Items       []Item `json:"items"`
	TotalPrice  int    `json:"total_price"`
	CheckoutURL string `json:"checkout_url"`
}

func (c *Cart) recalcTotal() {
	total := 0
	for _, item := range c.Items {
		total += item.Price * item.Quantity
	}
	c.TotalPrice = total
}

// ItemCount sums item quantities.
func (c Cart) ItemCount() int {
	n := 0
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}
