package net

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"sort"
)

// ==================== Multipart 请求 ====================

// FileData 单个文件 part 的内容
type FileData struct {
	Data     []byte
	Filename string
}

// MultipartRequest 混合表单请求（JSON 字段 + 文件）
// Files 的 key 即 part 名（如 image_0, image_1 ...）
type MultipartRequest struct {
	URL     string
	Headers map[string]string
	Fields  map[string]string
	Files   map[string]FileData
}

// Encode 编码 multipart 请求体，返回 body 和对应的 Content-Type
// 字段与文件均按 part 名排序写入，保证请求体可复现（测试依赖这一点）
func (r *MultipartRequest) Encode() (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, name := range sortedKeys(r.Fields) {
		if err := writer.WriteField(name, r.Fields[name]); err != nil {
			return nil, "", fmt.Errorf("写入字段 %s 失败: %w", name, err)
		}
	}

	for _, name := range sortedFileKeys(r.Files) {
		file := r.Files[name]
		part, err := writer.CreateFormFile(name, file.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("创建文件 part %s 失败: %w", name, err)
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, "", fmt.Errorf("写入文件 part %s 失败: %w", name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return body, writer.FormDataContentType(), nil
}

// BuildMultipartRequest 构建 multipart POST 请求
// Content-Type 由编码器生成（带 boundary），不要手动覆盖
func BuildMultipartRequest(ctx context.Context, mr *MultipartRequest) (*http.Request, error) {
	body, contentType, err := mr.Encode()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, mr.URL, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", contentType)
	for k, v := range mr.Headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedFileKeys(m map[string]FileData) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
