package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"catalog_admin_v1_202608/internal/api/dto"
	"catalog_admin_v1_202608/internal/errs"
	"catalog_admin_v1_202608/internal/model"
	"catalog_admin_v1_202608/pkg/net"
)

// ==================== 配置 ====================

type GatewayConfig struct {
	BaseURL string // 默认 https://raw-node-js.onrender.com
	Timeout time.Duration
}

// ==================== 服务实现 ====================

// GatewayService 商品后台网关
// 每次调用都是一次独立的请求-响应：不缓存、不重试、无幂等键
// （提交超时后用户重试可能产生重复商品，这是当前设计接受的限制）
type GatewayService struct {
	cfg        *GatewayConfig
	client     *resty.Client
	httpClient *http.Client
	logger     *zap.Logger
}

// NewGatewayService 创建网关
func NewGatewayService(cfg *GatewayConfig, logger *zap.Logger) *GatewayService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://raw-node-js.onrender.com"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	// 重试次数保持 0：失败直接交给调用方决定
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout)

	return &GatewayService{
		cfg:        cfg,
		client:     client,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// ==================== 查询 ====================

// FetchCategories 拉取全部分类（表单会话开始时调一次）
func (s *GatewayService) FetchCategories(ctx context.Context) ([]model.Category, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Get("/api/fetchAllCategoryInformation")

	if err != nil {
		return nil, &errs.NetworkError{Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &errs.NetworkError{
			StatusCode: resp.StatusCode(),
			Message:    extractMessage(resp.Body()),
		}
	}

	var out dto.CategoryResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, &errs.ResourceError{Reason: "categoryInformation", Err: err}
	}

	s.logger.Debug("分类加载完成", zap.Int("count", len(out.CategoryInformation)))
	return out.CategoryInformation, nil
}

// FetchProductsPage 拉取一页商品，page 小于 1 时按第 1 页处理
func (s *GatewayService) FetchProductsPage(ctx context.Context, page int) (*dto.ProductsPageResponse, error) {
	if page < 1 {
		page = 1
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		Get("/api/fetchAllProducts")

	if err != nil {
		return nil, &errs.NetworkError{Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &errs.NetworkError{
			StatusCode: resp.StatusCode(),
			Message:    extractMessage(resp.Body()),
		}
	}

	var out dto.ProductsPageResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, &errs.ResourceError{Reason: "products", Err: err}
	}

	s.logger.Debug("商品页加载完成",
		zap.Int("page", out.CurrentPage),
		zap.Int("total_pages", out.TotalPages),
		zap.Int("total_products", out.TotalProducts))
	return &out, nil
}

// ==================== 提交 ====================

// SubmitProduct 提交商品（multipart）
// productData 是表单 JSON，图片按序作为独立 part：image_0, image_1 ...
// update 模式额外带 existingImages（保留的既有图片 URL 列表）
func (s *GatewayService) SubmitProduct(ctx context.Context, req *dto.SubmitProductRequest) (*dto.SubmitResponse, error) {
	payloadBytes, err := json.Marshal(req.Payload)
	if err != nil {
		return nil, fmt.Errorf("序列化 productData 失败: %w", err)
	}

	mr := &net.MultipartRequest{
		URL:    s.submitURL(req),
		Fields: map[string]string{"productData": string(payloadBytes)},
		Files:  map[string]net.FileData{},
	}

	for i, img := range req.Images {
		filename := img.Filename
		if filename == "" {
			filename = fmt.Sprintf("image_%d.jpg", i)
		}
		mr.Files[fmt.Sprintf("image_%d", i)] = net.FileData{
			Data:     img.Data,
			Filename: filename,
		}
	}

	if req.Mode == dto.SubmitModeUpdate {
		existing := req.ExistingImages
		if existing == nil {
			existing = []string{}
		}
		existingBytes, err := json.Marshal(existing)
		if err != nil {
			return nil, fmt.Errorf("序列化 existingImages 失败: %w", err)
		}
		mr.Fields["existingImages"] = string(existingBytes)
	}

	httpReq, err := net.BuildMultipartRequest(ctx, mr)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, &errs.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &errs.NetworkError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(respBody),
		}
	}

	var result dto.SubmitResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, &errs.ResourceError{Reason: "submit response", Err: err}
	}

	s.logger.Info("商品提交成功",
		zap.String("mode", req.Mode),
		zap.Int("images", len(req.Images)))
	return &result, nil
}

func (s *GatewayService) submitURL(req *dto.SubmitProductRequest) string {
	if req.Mode == dto.SubmitModeUpdate {
		return fmt.Sprintf("%s/api/updateProduct/%d", s.cfg.BaseURL, req.ProductID)
	}
	return s.cfg.BaseURL + "/api/createProduct"
}

// extractMessage 尽力从错误响应体里取出 message 字段
func extractMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	return envelope.Message
}
