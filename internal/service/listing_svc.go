package service

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"catalog_admin_v1_202608/internal/api/dto"
	"catalog_admin_v1_202608/internal/model"
)

// ==================== 状态常量 ====================

const (
	// 列表页状态机：idle → loading → {loaded, errored}
	ListingStateIdle    = "idle"
	ListingStateLoading = "loading"
	ListingStateLoaded  = "loaded"
	ListingStateErrored = "errored"
)

// ==================== 外部服务依赖 ====================

// ProductsPageProvider 分页查询接口（由 GatewayService 实现）
type ProductsPageProvider interface {
	FetchProductsPage(ctx context.Context, page int) (*dto.ProductsPageResponse, error)
}

// ==================== 服务实现 ====================

// ListingService 商品列表与分页控制
// 加载失败保留上一页数据（必须有一次成功的拉取才会替换）
// 每次加载带 token，迟到的过期响应直接丢弃，谁最后被请求谁生效
type ListingService struct {
	logger   *zap.Logger
	gateway  ProductsPageProvider
	notifier Notifier

	mu            sync.Mutex
	state         string
	products      []model.Product
	currentPage   int
	totalPages    int
	totalProducts int
	searchTerm    string
	loadToken     string
	closed        bool
}

// NewListingService 创建列表控制器
func NewListingService(gateway ProductsPageProvider, notifier Notifier, logger *zap.Logger) *ListingService {
	return &ListingService{
		logger:   logger,
		gateway:  gateway,
		notifier: notifier,
		state:    ListingStateIdle,
	}
}

// ==================== 加载 ====================

// LoadPage 拉取一页商品
// 成功时整体替换 products/currentPage/totalPages/totalProducts
// 失败时发错误通知，停留在上一页数据上
func (s *ListingService) LoadPage(ctx context.Context, page int) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	token := uuid.NewString()
	s.loadToken = token
	s.state = ListingStateLoading
	s.mu.Unlock()

	resp, err := s.gateway.FetchProductsPage(ctx, page)

	s.mu.Lock()
	defer s.mu.Unlock()

	// 组件已卸载或已有更新的加载请求：迟到的响应不落地
	if s.closed || s.loadToken != token {
		s.logger.Debug("丢弃过期的页响应", zap.Int("page", page))
		return nil
	}

	if err != nil {
		s.state = ListingStateErrored
		s.logger.Error("商品列表加载失败", zap.Int("page", page), zap.Error(err))
		s.notifier.Notify(dto.NotifyLevelError, "商品列表加载失败")
		return err
	}

	s.products = resp.Products
	s.currentPage = resp.CurrentPage
	s.totalPages = resp.TotalPages
	s.totalProducts = resp.TotalProducts
	s.state = ListingStateLoaded
	s.notifier.Notify(dto.NotifyLevelSuccess, "商品列表加载完成")
	return nil
}

// ChangePage 切换页码，不做边界校验（越界由后端裁决）
func (s *ListingService) ChangePage(ctx context.Context, page int) error {
	return s.LoadPage(ctx, page)
}

// Close 组件卸载：之后到达的响应一律忽略
func (s *ListingService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// ==================== 搜索过滤 ====================

// SetSearchTerm 设置客户端搜索词，只过滤当前已加载页，不重新拉取
func (s *ListingService) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchTerm = term
}

// VisibleProducts 按搜索词过滤后的可见商品（名称/描述不区分大小写的子串匹配）
// 注意 TotalProducts 不随过滤变化，始终是服务端的未过滤总数
func (s *ListingService) VisibleProducts() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.searchTerm == "" {
		out := make([]model.Product, len(s.products))
		copy(out, s.products)
		return out
	}

	term := strings.ToLower(s.searchTerm)
	var out []model.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			out = append(out, p)
		}
	}
	return out
}

// ==================== 状态访问 ====================

func (s *ListingService) State() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *ListingService) CurrentPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPage
}

func (s *ListingService) TotalPages() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalPages
}

func (s *ListingService) TotalProducts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalProducts
}

// Products 当前页的未过滤商品
func (s *ListingService) Products() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

// SearchTerm 当前搜索词
func (s *ListingService) SearchTerm() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchTerm
}
