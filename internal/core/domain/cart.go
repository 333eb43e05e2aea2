package domain

import "time"

// CartItem is a single cart line. A line is identified by the
// (product_id, size, color) triple; product name, price, and image are
// denormalized snapshots captured at add time and are not re-validated
// against the catalog on later reads.
type CartItem struct {
	ProductID    string  `json:"product_id" bson:"product_id"`
	Quantity     int     `json:"quantity" bson:"quantity"`
	Size         string  `json:"size" bson:"size"`
	Color        string  `json:"color" bson:"color"`
	ProductName  string  `json:"product_name" bson:"product_name"`
	ProductPrice float64 `json:"product_price" bson:"product_price"`
	ProductImage string  `json:"product_image" bson:"product_image"`
}

// SameLine reports whether the other item addresses the same cart line.
func (i CartItem) SameLine(productID, size, color string) bool {
	return i.ProductID == productID && i.Size == size && i.Color == color
}

// Cart holds a user's pending line items. There is at most one cart per
// user; lookups go by UserID, not by the cart's own ID.
type Cart struct {
	ID        string     `json:"id" bson:"id"`
	UserID    string     `json:"user_id" bson:"user_id"`
	Items     []CartItem `json:"items" bson:"items"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}

// Merge folds an incoming item into the cart: an existing line with the same
// (product_id, size, color) key has its quantity incremented, otherwise the
// item is appended as a new line. The cart never holds two lines with the
// same key.
func (c *Cart) Merge(item CartItem) {
	for idx := range c.Items {
		if c.Items[idx].SameLine(item.ProductID, item.Size, item.Color) {
			c.Items[idx].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// RemoveLine drops the line matching the exact (product_id, size, color)
// triple. Removing an absent line is a no-op.
func (c *Cart) RemoveLine(productID, size, color string) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if !item.SameLine(productID, size, color) {
			kept = append(kept, item)
		}
	}
	c.Items = kept
}
