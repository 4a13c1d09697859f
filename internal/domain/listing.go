package domain

// Listing is one raw product entry as exposed by a Shopify-style
// /products.json catalog. It is read-only input: the pipeline owns it
// only for the duration of processing one item.
type Listing struct {
	Title       string    `json:"title"`
	Vendor      string    `json:"vendor"`
	ProductType string    `json:"product_type"`
	Tags        []string  `json:"tags"`
	BodyHTML    string    `json:"body_html"`
	PublishedAt string    `json:"published_at"`
	Images      []Image   `json:"images,omitempty"`
	Variants    []Variant `json:"variants,omitempty"`
}

type Image struct {
	Src string `json:"src"`
}

// Variant is one purchasable configuration of a listing
// (a specific color or finish) with its own weight and stock state.
type Variant struct {
	Title         string `json:"title"`
	Grams         int    `json:"grams"`
	Available     bool   `json:"available"`
	FeaturedImage *Image `json:"featured_image,omitempty"`
}
