package service

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/zap"

	"catalog_admin_v1_202608/internal/api/dto"
	"catalog_admin_v1_202608/internal/errs"
	"catalog_admin_v1_202608/internal/model"
)

// ==================== 测试替身 ====================

// stubPageProvider 按页码返回预设响应
type stubPageProvider struct {
	mu       sync.Mutex
	pages    map[int]*dto.ProductsPageResponse
	failures map[int]error
	gates    map[int]chan struct{} // 指定页挂起到 gate 关闭
}

func (s *stubPageProvider) FetchProductsPage(_ context.Context, page int) (*dto.ProductsPageResponse, error) {
	s.mu.Lock()
	gate := s.gates[page]
	s.mu.Unlock()

	if gate != nil {
		<-gate
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.failures[page]; ok {
		return nil, err
	}
	if resp, ok := s.pages[page]; ok {
		return resp, nil
	}
	return nil, &errs.NetworkError{StatusCode: 404, Message: "no such page"}
}

func pageResponse(page, totalPages, totalProducts int, names ...string) *dto.ProductsPageResponse {
	products := make([]model.Product, len(names))
	for i, n := range names {
		products[i] = model.Product{ID: int64(i + 1), Name: n, Description: n + " description"}
	}
	return &dto.ProductsPageResponse{
		CurrentPage:   page,
		TotalPages:    totalPages,
		TotalProducts: totalProducts,
		Products:      products,
		Message:       "ok",
	}
}

func setupListing(provider *stubPageProvider) (*ListingService, *recordingNotifier) {
	notifier := &recordingNotifier{}
	return NewListingService(provider, notifier, zap.NewNop()), notifier
}

// ==================== 加载 ====================

func TestListingService_初始状态(t *testing.T) {
	svc, _ := setupListing(&stubPageProvider{})
	if svc.State() != ListingStateIdle {
		t.Errorf("初始状态 = %s, want idle", svc.State())
	}
}

func TestListingService_加载成功后失败保留旧数据(t *testing.T) {
	provider := &stubPageProvider{
		pages: map[int]*dto.ProductsPageResponse{
			2: pageResponse(2, 5, 42, "Red Shirt", "Blue Pants"),
		},
		failures: map[int]error{
			3: &errs.NetworkError{StatusCode: 500, Message: "boom"},
		},
	}
	svc, notifier := setupListing(provider)
	ctx := context.Background()

	// 第 2 页加载成功：四个值齐备
	if err := svc.LoadPage(ctx, 2); err != nil {
		t.Fatalf("加载第 2 页失败: %v", err)
	}
	if svc.State() != ListingStateLoaded {
		t.Errorf("状态 = %s, want loaded", svc.State())
	}
	if svc.CurrentPage() != 2 || svc.TotalPages() != 5 || svc.TotalProducts() != 42 {
		t.Errorf("页状态 = {%d %d %d}, want {2 5 42}",
			svc.CurrentPage(), svc.TotalPages(), svc.TotalProducts())
	}
	if len(svc.Products()) != 2 {
		t.Errorf("商品数 = %d, want 2", len(svc.Products()))
	}

	// 第 3 页加载失败：发错误通知，第 2 页数据原样可见
	if err := svc.LoadPage(ctx, 3); err == nil {
		t.Fatal("加载第 3 页应失败")
	}
	if svc.State() != ListingStateErrored {
		t.Errorf("状态 = %s, want errored", svc.State())
	}
	if svc.CurrentPage() != 2 || svc.TotalPages() != 5 || svc.TotalProducts() != 42 {
		t.Error("失败后应停留在第 2 页的数据上")
	}
	if len(svc.Products()) != 2 {
		t.Error("失败后商品列表不应被清掉")
	}
	if last, ok := notifier.last(); !ok || last.Level != dto.NotifyLevelError {
		t.Error("应发出错误通知")
	}
}

func TestListingService_ChangePage(t *testing.T) {
	provider := &stubPageProvider{
		pages: map[int]*dto.ProductsPageResponse{
			7: pageResponse(7, 9, 100, "p1"),
		},
	}
	svc, _ := setupListing(provider)

	// 不做边界校验，页码直接透传给后端
	if err := svc.ChangePage(context.Background(), 7); err != nil {
		t.Fatal(err)
	}
	if svc.CurrentPage() != 7 {
		t.Errorf("当前页 = %d, want 7", svc.CurrentPage())
	}
}

// ==================== 过期响应丢弃 ====================

func TestListingService_迟到响应被丢弃(t *testing.T) {
	gate := make(chan struct{})
	provider := &stubPageProvider{
		pages: map[int]*dto.ProductsPageResponse{
			1: pageResponse(1, 5, 42, "slow"),
			2: pageResponse(2, 5, 42, "fast"),
		},
		gates: map[int]chan struct{}{1: gate},
	}
	svc, _ := setupListing(provider)
	ctx := context.Background()

	// 第 1 页挂起，期间用户又点了第 2 页
	done := make(chan struct{})
	go func() {
		svc.LoadPage(ctx, 1)
		close(done)
	}()

	if err := svc.LoadPage(ctx, 2); err != nil {
		t.Fatal(err)
	}

	// 放行第 1 页的迟到响应
	close(gate)
	<-done

	// 最后被请求的是第 2 页，迟到的第 1 页不能覆盖它
	if svc.CurrentPage() != 2 {
		t.Errorf("当前页 = %d, want 2（迟到响应应被丢弃）", svc.CurrentPage())
	}
	if got := svc.Products(); len(got) != 1 || got[0].Name != "fast" {
		t.Errorf("商品 = %v, want [fast]", got)
	}
}

func TestListingService_Close后响应被忽略(t *testing.T) {
	gate := make(chan struct{})
	provider := &stubPageProvider{
		pages: map[int]*dto.ProductsPageResponse{
			1: pageResponse(1, 1, 1, "late"),
		},
		gates: map[int]chan struct{}{1: gate},
	}
	svc, _ := setupListing(provider)

	done := make(chan struct{})
	go func() {
		svc.LoadPage(context.Background(), 1)
		close(done)
	}()

	svc.Close()
	close(gate)
	<-done

	if len(svc.Products()) != 0 {
		t.Error("卸载后的迟到响应不应落地")
	}
}

// ==================== 搜索过滤 ====================

func TestListingService_搜索过滤(t *testing.T) {
	provider := &stubPageProvider{
		pages: map[int]*dto.ProductsPageResponse{
			1: {
				CurrentPage:   1,
				TotalPages:    1,
				TotalProducts: 3,
				Products: []model.Product{
					{ID: 1, Name: "Red Shirt", Description: "Cotton tee"},
					{ID: 2, Name: "Blue Pants", Description: "Denim"},
					{ID: 3, Name: "Hat", Description: "red wool cap"},
				},
			},
		},
	}
	svc, _ := setupListing(provider)
	if err := svc.LoadPage(context.Background(), 1); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		term string
		want int
	}{
		{name: "空词不过滤", term: "", want: 3},
		{name: "名称命中不区分大小写", term: "RED", want: 2}, // Red Shirt + 描述里的 red
		{name: "描述命中", term: "denim", want: 1},
		{name: "无命中", term: "zzz", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc.SetSearchTerm(tt.term)
			if got := len(svc.VisibleProducts()); got != tt.want {
				t.Errorf("可见商品数 = %d, want %d", got, tt.want)
			}
			// 已知不一致并保留：总数始终是服务端未过滤的值
			if svc.TotalProducts() != 3 {
				t.Errorf("TotalProducts = %d, 过滤不应影响它", svc.TotalProducts())
			}
		})
	}
}
