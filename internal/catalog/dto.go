package catalog

type ProductForm struct {
	ID        string   `json:"id,omitempty"`
	Category  string   `json:"category" validate:"required"`
	Name      string   `json:"name" validate:"required,max=200"`
	Price     float64  `json:"price" validate:"gte=0"`
	ShortDesc string   `json:"short_desc"`
	Details   string   `json:"details"`
	Variants  []string `json:"variants"`
	ImageURL  string   `json:"image_url"`
	Active    *bool    `json:"active,omitempty"`
}
