package view

import "strings"

// ==================== 面包屑 ====================

// Crumb 单级面包屑
type Crumb struct {
	Title string `json:"title"`
	Href  string `json:"href"` // 末级不给链接
}

// 路径段到标题的映射，按累计路径查
var breadcrumbTitles = map[string]Crumb{
	"dashboard":           {Title: "Dashboard", Href: "/dashboard"},
	"products":            {Title: "Products", Href: "/products"},
	"products/all":        {Title: "All Products", Href: "/products/all"},
	"products/create":     {Title: "Create Product"},
	"products/update":     {Title: "Update Product"},
	"products/categories": {Title: "Categories", Href: "/products/categories"},
}

// Breadcrumbs 从路由路径推导面包屑，首级固定是后台首页
// 未登记的路径段跳过，末级不带链接
func Breadcrumbs(pathname string) []Crumb {
	crumbs := []Crumb{{Title: "OnBazar Admin", Href: "/"}}

	segments := splitPath(pathname)
	currentPath := ""
	for i, segment := range segments {
		if currentPath == "" {
			currentPath = segment
		} else {
			currentPath += "/" + segment
		}

		data, ok := breadcrumbTitles[currentPath]
		if !ok {
			continue
		}

		crumb := Crumb{Title: data.Title}
		if i < len(segments)-1 {
			crumb.Href = data.Href
		}
		crumbs = append(crumbs, crumb)
	}

	return crumbs
}

func splitPath(pathname string) []string {
	var out []string
	for _, seg := range strings.Split(pathname, "/") {
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}
