package net

import (
	"bytes"
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"testing"
)

func TestMultipartRequest_Encode(t *testing.T) {
	mr := &MultipartRequest{
		URL: "http://example.com/api/createProduct",
		Fields: map[string]string{
			"productData": `{"name":"Red Shirt"}`,
		},
		Files: map[string]FileData{
			"image_0": {Data: []byte{0xFF, 0xD8}, Filename: "a.jpg"},
			"image_1": {Data: []byte{0x89, 0x50}, Filename: "b.jpg"},
		},
	}

	body, contentType, err := mr.Encode()
	if err != nil {
		t.Fatalf("编码失败: %v", err)
	}

	// 用标准库反向解析，验证各 part 都在
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "multipart/form-data" {
		t.Fatalf("Content-Type = %s", contentType)
	}

	reader := multipart.NewReader(bytes.NewReader(body.Bytes()), params["boundary"])
	form, err := reader.ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}

	if got := form.Value["productData"]; len(got) != 1 || got[0] != `{"name":"Red Shirt"}` {
		t.Errorf("productData = %v", got)
	}

	for name, wantData := range map[string][]byte{
		"image_0": {0xFF, 0xD8},
		"image_1": {0x89, 0x50},
	} {
		files := form.File[name]
		if len(files) != 1 {
			t.Fatalf("缺少文件 part %s", name)
		}
		f, err := files[0].Open()
		if err != nil {
			t.Fatal(err)
		}
		data, _ := io.ReadAll(f)
		f.Close()
		if !bytes.Equal(data, wantData) {
			t.Errorf("part %s 内容 = %v, want %v", name, data, wantData)
		}
	}
}

func TestBuildMultipartRequest(t *testing.T) {
	mr := &MultipartRequest{
		URL:     "http://example.com/api/createProduct",
		Headers: map[string]string{"X-Trace": "abc"},
		Fields:  map[string]string{"productData": "{}"},
	}

	req, err := BuildMultipartRequest(context.Background(), mr)
	if err != nil {
		t.Fatalf("构建失败: %v", err)
	}

	if req.Method != http.MethodPost {
		t.Errorf("方法 = %s, want POST", req.Method)
	}
	if got := req.Header.Get("Content-Type"); got == "" || got == "application/json" {
		t.Errorf("Content-Type 应带 boundary，得到 %q", got)
	}
	if req.Header.Get("X-Trace") != "abc" {
		t.Error("自定义头丢失")
	}
}

func TestBuildBackendRequest(t *testing.T) {
	req, err := BuildBackendGetRequest(context.Background(), "http://example.com/api/fetchAllProducts")
	if err != nil {
		t.Fatal(err)
	}
	if req.Header.Get("Accept") != "application/json" {
		t.Error("GET 请求应带 Accept 头")
	}
	if req.Header.Get("Content-Type") != "" {
		t.Error("无 body 的请求不应带 Content-Type")
	}
}
