package dto

import "catalog_admin_v1_202608/internal/model"

// ==================== 响应 ====================

// ProductsPageResponse GET /api/fetchAllProducts?page=N 的响应
type ProductsPageResponse struct {
	CurrentPage   int             `json:"currentPage"`
	TotalPages    int             `json:"totalPages"`
	TotalProducts int             `json:"totalProducts"`
	Products      []model.Product `json:"products"`
	Message       string          `json:"message"`
}

// SubmitResponse 创建/更新商品接口的响应
type SubmitResponse struct {
	Message string `json:"message"`
}

// ==================== 提交载荷 ====================

// ProductPayload 提交给后台的 productData JSON
// 键名是表单侧的 camelCase，和线上商品的 snake_case 字段是两套，不要混
type ProductPayload struct {
	Name                         string              `json:"name"`
	Description                  string              `json:"description"`
	ProductPrice                 float64             `json:"productPrice"`
	SalesPercentage              float64             `json:"salesPercentage"`
	CalculatedPriceAfterDiscount float64             `json:"calculatedPriceAfterDiscount"`
	TotalProducts                int                 `json:"totalProducts"`
	CategoryID                   *int64              `json:"categoryId"`
	Sizes                        []model.ProductSize `json:"sizes"`
	IsFeatured                   bool                `json:"isFeatured"`
	IsNew                        bool                `json:"isNew"`
	IsSoldOut                    bool                `json:"isSoldOut"`
	Colors                       []string            `json:"colors"`
}

// ==================== 提交模式 ====================

const (
	SubmitModeCreate = "create"
	SubmitModeUpdate = "update"
)

// SubmitProductRequest 提交请求（网关入参）
type SubmitProductRequest struct {
	Mode      string
	ProductID int64 // 仅 update 模式使用
	Payload   ProductPayload
	// 新图片按序对应 image_0, image_1 ...
	Images []ImagePart
	// update 模式保留的既有图片 URL，序列化成 existingImages 字段
	ExistingImages []string
}

// ImagePart 单张待上传图片
type ImagePart struct {
	Filename string
	Data     []byte
}
