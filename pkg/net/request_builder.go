package net

import (
	"context"
	"io"
	"net/http"
)

// BuildBackendRequest 通用后台请求构建器
// 适用方：GatewayService 等所有需要直连商品后台的服务
// 职责：统一封装标准头 (Accept, Content-Type)
// 注意：后台接口无鉴权（权限由后端自己管），multipart 请求请走 BuildMultipartRequest
func BuildBackendRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// BuildBackendGetRequest 构建后台 GET 请求
func BuildBackendGetRequest(ctx context.Context, url string) (*http.Request, error) {
	return BuildBackendRequest(ctx, http.MethodGet, url, nil)
}

// BuildBackendPostRequest 构建后台 POST 请求
func BuildBackendPostRequest(ctx context.Context, url string, body io.Reader) (*http.Request, error) {
	return BuildBackendRequest(ctx, http.MethodPost, url, body)
}
