package model

// Category 商品分类（只读参照数据，表单会话开始时拉一次，本系统不修改）
type Category struct {
	ID          int64  `json:"id"`
	CreatedAt   string `json:"created_at"`
	Name        string `json:"category_name"`
	Description string `json:"category_description"`
	Image       string `json:"category_image"`
	Slug        string `json:"slug"`
}
