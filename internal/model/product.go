package model

// ==================== 线上商品模型 ====================
// 字段名严格对齐后台返回的 JSON，不要改

// ProductSize 尺码-数量对
type ProductSize struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// Product 后台返回的商品
type Product struct {
	ID             int64         `json:"id"`
	CreatedAt      string        `json:"created_at"`
	Name           string        `json:"product_name"`
	Description    string        `json:"product_description"`
	Price          float64       `json:"product_price"`
	SalePercentage float64       `json:"product_sale_percentage"`
	IsFeatured     bool          `json:"is_featured_product"`
	IsNew          bool          `json:"is_new_product"`
	Quantity       int           `json:"product_quantity"`
	Colors         []string      `json:"product_colors"`
	CategoryID     int64         `json:"product_category_id"`
	IsSoldOut      bool          `json:"is_sold_out"`
	Images         []string      `json:"product_image"`
	Sizes          []ProductSize `json:"product_size"`
}
