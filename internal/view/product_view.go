package view

import (
	"fmt"
	"strings"

	"catalog_admin_v1_202608/internal/model"
)

// ==================== 商品行 VO ====================

// ProductRowVO 商品列表一行的展示数据 (Assembler 产物，纯渲染不带逻辑)
type ProductRowVO struct {
	ID             int64  `json:"id"`
	Image          string `json:"image"` // 第一张图，没有就留空给前端放占位图
	Name           string `json:"name"`
	Description    string `json:"description"`
	DisplayPrice   string `json:"display_price"` // 折后价，两位小数
	OriginalPrice  string `json:"original_price,omitempty"`
	Quantity       int    `json:"quantity"`
	AvailableSizes string `json:"available_sizes"`
	Colors         string `json:"colors"`
	StatusLabel    string `json:"status_label"`
}

// ToProductRowVO 将线上商品转换为列表行 VO
func ToProductRowVO(p *model.Product) ProductRowVO {
	discounted := model.ComputeDiscountedPrice(p.Price, p.SalePercentage)

	vo := ProductRowVO{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		DisplayPrice:   FormatPrice(discounted),
		Quantity:       p.Quantity,
		AvailableSizes: AvailableSizes(p.Sizes),
		Colors:         strings.Join(p.Colors, ", "),
		StatusLabel:    StatusLabel(p),
	}

	if len(p.Images) > 0 {
		vo.Image = p.Images[0]
	}
	// 有折扣时才展示划线原价
	if p.SalePercentage > 0 {
		vo.OriginalPrice = FormatPrice(p.Price)
	}

	return vo
}

// FormatPrice 价格展示，统一两位小数（计算层不四舍五入，格式化只在这里做）
func FormatPrice(price float64) string {
	return fmt.Sprintf("%.2f", price)
}

// AvailableSizes 有货尺码摘要，形如 "S(2), M(3)"，全部无货时给占位文案
func AvailableSizes(sizes []model.ProductSize) string {
	var parts []string
	for _, s := range sizes {
		if s.Quantity > 0 {
			parts = append(parts, fmt.Sprintf("%s(%d)", s.Size, s.Quantity))
		}
	}
	if len(parts) == 0 {
		return "No sizes available"
	}
	return strings.Join(parts, ", ")
}

// StatusLabel 状态标签，优先级：售罄 > 新品 > 精选 > 在售
func StatusLabel(p *model.Product) string {
	switch {
	case p.IsSoldOut:
		return "Sold Out"
	case p.IsNew:
		return "New"
	case p.IsFeatured:
		return "Featured"
	default:
		return "Active"
	}
}
