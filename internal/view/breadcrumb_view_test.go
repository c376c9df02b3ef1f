package view

import "testing"

func TestBreadcrumbs(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []Crumb
	}{
		{
			name: "商品列表页",
			path: "/products/all",
			want: []Crumb{
				{Title: "OnBazar Admin", Href: "/"},
				{Title: "Products", Href: "/products"},
				{Title: "All Products"}, // 末级不带链接
			},
		},
		{
			name: "创建页",
			path: "/products/create",
			want: []Crumb{
				{Title: "OnBazar Admin", Href: "/"},
				{Title: "Products", Href: "/products"},
				{Title: "Create Product"},
			},
		},
		{
			name: "根路径只有首页",
			path: "/",
			want: []Crumb{{Title: "OnBazar Admin", Href: "/"}},
		},
		{
			name: "未登记的段被跳过",
			path: "/products/unknown",
			want: []Crumb{
				{Title: "OnBazar Admin", Href: "/"},
				{Title: "Products", Href: "/products"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Breadcrumbs(tt.path)
			if len(got) != len(tt.want) {
				t.Fatalf("层级数 = %d, want %d (%v)", len(got), len(tt.want), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("层级[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
