package model

// ==================== 草稿默认值 ====================

const (
	// DefaultBasePrice 新建草稿的基础价默认值
	DefaultBasePrice = 100

	// 固定尺码集合，本版本不支持增删尺码行，只能改数量
	SizeS   = "S"
	SizeM   = "M"
	SizeL   = "L"
	SizeXL  = "XL"
	SizeXXL = "XXL"
)

// DefaultSizes 默认尺码行（全部数量为 0）
func DefaultSizes() []ProductSize {
	return []ProductSize{
		{Size: SizeS, Quantity: 0},
		{Size: SizeM, Quantity: 0},
		{Size: SizeL, Quantity: 0},
		{Size: SizeXL, Quantity: 0},
		{Size: SizeXXL, Quantity: 0},
	}
}

// ==================== 草稿模型 ====================

// Draft 商品草稿（表单在编内容）
// 只通过 FormService 的 setter 修改，派生字段在每次修改后同步重算
// 不跨会话持久化：提交成功或主动取消后即丢弃
type Draft struct {
	// 必填校验只看 name/description/category 三项，其余字段不拦提交
	Name           string  `validate:"required"`
	Description    string  `validate:"required"`
	BasePrice      float64 `validate:"-"`
	SalePercentage float64 `validate:"-"`
	// 派生字段
	DiscountedPrice float64
	TotalQuantity   int

	CategoryID *int64 `validate:"required"`
	Sizes      []ProductSize
	IsFeatured bool
	IsNew      bool
	IsSoldOut  bool
	Colors     []string
}

// NewDraft 创建空草稿（新建流程的初始状态）
func NewDraft() *Draft {
	return &Draft{
		Name:            "",
		Description:     "",
		BasePrice:       DefaultBasePrice,
		SalePercentage:  0,
		DiscountedPrice: DefaultBasePrice,
		TotalQuantity:   0,
		CategoryID:      nil,
		Sizes:           DefaultSizes(),
		IsFeatured:      false,
		IsNew:           false,
		IsSoldOut:       false,
		Colors:          []string{},
	}
}

// DraftFromProduct 从已有商品填充草稿（更新流程，商品由调用方传入，不按 id 重新拉取）
// 派生字段在填充时立即重算
func DraftFromProduct(p *Product) *Draft {
	categoryID := p.CategoryID
	sizes := make([]ProductSize, len(p.Sizes))
	copy(sizes, p.Sizes)

	colors := make([]string, len(p.Colors))
	copy(colors, p.Colors)

	return &Draft{
		Name:            p.Name,
		Description:     p.Description,
		BasePrice:       p.Price,
		SalePercentage:  p.SalePercentage,
		DiscountedPrice: ComputeDiscountedPrice(p.Price, p.SalePercentage),
		TotalQuantity:   ComputeTotalQuantity(sizes),
		CategoryID:      &categoryID,
		Sizes:           sizes,
		IsFeatured:      p.IsFeatured,
		IsNew:           p.IsNew,
		IsSoldOut:       p.IsSoldOut,
		Colors:          colors,
	}
}

// ==================== 派生计算（纯函数） ====================

// ComputeDiscountedPrice 折后价 = 基础价 - 基础价*折扣比/100
// 内部不做四舍五入，展示层自己格式化到两位小数
func ComputeDiscountedPrice(price, pct float64) float64 {
	return price - price*pct/100
}

// ComputeTotalQuantity 总库存 = 各尺码数量之和
func ComputeTotalQuantity(sizes []ProductSize) int {
	total := 0
	for _, s := range sizes {
		total += s.Quantity
	}
	return total
}

// Recalculate 重算全部派生字段
func (d *Draft) Recalculate() {
	d.DiscountedPrice = ComputeDiscountedPrice(d.BasePrice, d.SalePercentage)
	d.TotalQuantity = ComputeTotalQuantity(d.Sizes)
}
