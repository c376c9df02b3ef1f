package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"catalog_admin_v1_202608/internal/api/dto"
	"catalog_admin_v1_202608/internal/errs"
	"catalog_admin_v1_202608/internal/model"
)

// ==================== 外部服务依赖 ====================

// ProductSubmitter 提交接口（由 GatewayService 实现）
type ProductSubmitter interface {
	SubmitProduct(ctx context.Context, req *dto.SubmitProductRequest) (*dto.SubmitResponse, error)
}

// ==================== 服务实现 ====================

// FormService 商品表单状态管理
// 持有草稿、同步重算派生字段、校验必填、组织提交载荷
// 草稿只通过本服务的 setter 修改，不允许外部直接改
type FormService struct {
	logger   *zap.Logger
	gateway  ProductSubmitter
	staging  *StagingService
	notifier Notifier
	validate *validator.Validate

	mu        sync.Mutex
	draft     *model.Draft
	mode      string
	productID int64

	// 单发保护：提交期间再次 Submit 是 no-op，不排队也不并行
	submitting bool
}

// NewFormService 创建表单服务（create 流程，空草稿）
func NewFormService(gateway ProductSubmitter, staging *StagingService, notifier Notifier, logger *zap.Logger) *FormService {
	return &FormService{
		logger:   logger,
		gateway:  gateway,
		staging:  staging,
		notifier: notifier,
		validate: validator.New(),
		draft:    model.NewDraft(),
		mode:     dto.SubmitModeCreate,
	}
}

// HydrateForUpdate 用已有商品填充草稿（update 流程）
// 商品由调用方传入（列表页带过来的），不按 id 重新拉取
// 折后价在填充时立即重算，用户还没改任何字段就已经是对的
func (s *FormService) HydrateForUpdate(p *model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = model.DraftFromProduct(p)
	s.mode = dto.SubmitModeUpdate
	s.productID = p.ID
	s.staging.SetExistingImages(p.Images)
}

// Draft 草稿快照（值拷贝，改它不影响内部状态）
func (s *FormService) Draft() model.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := *s.draft
	d.Sizes = make([]model.ProductSize, len(s.draft.Sizes))
	copy(d.Sizes, s.draft.Sizes)
	d.Colors = make([]string, len(s.draft.Colors))
	copy(d.Colors, s.draft.Colors)
	return d
}

// Mode 当前提交模式
func (s *FormService) Mode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// ==================== 字段修改 ====================

// SetField 替换一个草稿字段，字段名用提交载荷的 camelCase 键
// 修改后同步重算派生字段（同一次调用内完成，没有异步管道）
func (s *FormService) SetField(name string, value interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch name {
	case "name":
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("字段 name 需要 string，得到 %T", value)
		}
		s.draft.Name = v
	case "description":
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("字段 description 需要 string，得到 %T", value)
		}
		s.draft.Description = v
	case "productPrice":
		v, err := toFloat(value)
		if err != nil {
			return fmt.Errorf("字段 productPrice: %w", err)
		}
		s.draft.BasePrice = v
	case "salesPercentage":
		v, err := toFloat(value)
		if err != nil {
			return fmt.Errorf("字段 salesPercentage: %w", err)
		}
		s.draft.SalePercentage = v
	case "categoryId":
		switch v := value.(type) {
		case nil:
			s.draft.CategoryID = nil
		case int64:
			s.draft.CategoryID = &v
		case int:
			id := int64(v)
			s.draft.CategoryID = &id
		case *int64:
			s.draft.CategoryID = v
		default:
			return fmt.Errorf("字段 categoryId 需要 int64 或 nil，得到 %T", value)
		}
	case "isFeatured", "isNew", "isSoldOut":
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("字段 %s 需要 bool，得到 %T", name, value)
		}
		switch name {
		case "isFeatured":
			s.draft.IsFeatured = v
		case "isNew":
			s.draft.IsNew = v
		case "isSoldOut":
			s.draft.IsSoldOut = v
		}
	case "colors":
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("字段 colors 需要 []string，得到 %T", value)
		}
		s.draft.Colors = append([]string{}, v...)
	default:
		return fmt.Errorf("未知字段: %s", name)
	}

	s.draft.Recalculate()
	return nil
}

// SetSizeQuantity 按位置修改一个尺码行的数量
// 负数统一钳制为 0（策略：负的或解析不出来的输入一律按 0 处理）
func (s *FormService) SetSizeQuantity(index, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.draft.Sizes) {
		return fmt.Errorf("尺码行下标越界: %d", index)
	}
	if quantity < 0 {
		s.logger.Debug("尺码数量为负，按 0 处理",
			zap.String("size", s.draft.Sizes[index].Size),
			zap.Int("quantity", quantity))
		quantity = 0
	}

	s.draft.Sizes[index].Quantity = quantity
	s.draft.Recalculate()
	return nil
}

// AddColor 追加一个颜色标签（重复的忽略）
func (s *FormService) AddColor(color string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.draft.Colors {
		if c == color {
			return
		}
	}
	s.draft.Colors = append(s.draft.Colors, color)
}

// RemoveColor 移除一个颜色标签
func (s *FormService) RemoveColor(color string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.draft.Colors {
		if c == color {
			s.draft.Colors = append(s.draft.Colors[:i], s.draft.Colors[i+1:]...)
			return
		}
	}
}

// ==================== 校验 / 序列化 / 重置 ====================

// ValidateForSubmission 提交前必填校验：name、description、category
// 不通过时返回 ValidationError，列出全部缺失字段
func (s *FormService) ValidateForSubmission() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validateLocked()
}

func (s *FormService) validateLocked() error {
	err := s.validate.Struct(s.draft)
	if err == nil {
		return nil
	}

	fieldNames := map[string]string{
		"Name":        "name",
		"Description": "description",
		"CategoryID":  "category",
	}

	var missing []string
	for _, fe := range err.(validator.ValidationErrors) {
		if name, ok := fieldNames[fe.StructField()]; ok {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &errs.ValidationError{MissingFields: missing}
}

// Serialize 生成提交载荷（镜像全部草稿字段）
func (s *FormService) Serialize() dto.ProductPayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.serializeLocked()
}

func (s *FormService) serializeLocked() dto.ProductPayload {
	sizes := make([]model.ProductSize, len(s.draft.Sizes))
	copy(sizes, s.draft.Sizes)
	colors := append([]string{}, s.draft.Colors...)

	return dto.ProductPayload{
		Name:                         s.draft.Name,
		Description:                  s.draft.Description,
		ProductPrice:                 s.draft.BasePrice,
		SalesPercentage:              s.draft.SalePercentage,
		CalculatedPriceAfterDiscount: s.draft.DiscountedPrice,
		TotalProducts:                s.draft.TotalQuantity,
		CategoryID:                   s.draft.CategoryID,
		Sizes:                        sizes,
		IsFeatured:                   s.draft.IsFeatured,
		IsNew:                        s.draft.IsNew,
		IsSoldOut:                    s.draft.IsSoldOut,
		Colors:                       colors,
	}
}

// Reset 恢复到初始空草稿并清空图片暂存
func (s *FormService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = model.NewDraft()
	s.staging.Reset()
}

// ==================== 提交 ====================

// Submit 校验、序列化、连同暂存图片一起提交
// 提交期间的二次调用是 no-op；成功后重置草稿，失败保留草稿供重试
func (s *FormService) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		s.logger.Debug("已有提交在进行，忽略本次")
		return nil
	}

	if err := s.validateLocked(); err != nil {
		s.mu.Unlock()
		s.notifier.Notify(dto.NotifyLevelError, err.Error())
		return err
	}

	s.submitting = true
	req := &dto.SubmitProductRequest{
		Mode:      s.mode,
		ProductID: s.productID,
		Payload:   s.serializeLocked(),
		Images:    s.staging.NewImages(),
	}
	if s.mode == dto.SubmitModeUpdate {
		req.ExistingImages = s.staging.ExistingImages()
	}
	s.mu.Unlock()

	result, err := s.gateway.SubmitProduct(ctx, req)

	s.mu.Lock()
	s.submitting = false
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("商品提交失败", zap.String("mode", req.Mode), zap.Error(err))
		s.notifier.Notify(dto.NotifyLevelError, err.Error())
		return err
	}

	message := result.Message
	if message == "" {
		if req.Mode == dto.SubmitModeUpdate {
			message = "商品更新成功"
		} else {
			message = "商品创建成功"
		}
	}
	s.notifier.Notify(dto.NotifyLevelSuccess, message)
	s.Reset()
	return nil
}

// ==================== 辅助函数 ====================

func toFloat(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("需要数值，得到 %T", value)
	}
}
