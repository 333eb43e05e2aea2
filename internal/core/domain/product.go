package domain

// Product is a catalog entry for a single apparel item.
type Product struct {
	ID          string   `json:"id" bson:"id"`
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description" bson:"description"`
	Price       float64  `json:"price" bson:"price"`
	Category    string   `json:"category" bson:"category"`
	Sizes       []string `json:"sizes" bson:"sizes"`
	Colors      []string `json:"colors" bson:"colors"`
	ImageURL    string   `json:"image_url" bson:"image_url"`
	Stock       int      `json:"stock" bson:"stock"`
}
