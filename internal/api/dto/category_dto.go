package dto

import "catalog_admin_v1_202608/internal/model"

// CategoryResponse GET /api/fetchAllCategoryInformation 的响应
type CategoryResponse struct {
	CategoryInformation []model.Category `json:"categoryInformation"`
	Message             string           `json:"message"`
}
