package errs

import (
	"fmt"
	"strings"
)

// ==================== 错误分类 ====================
// 三类错误对应三种前台提示路径：
// - NetworkError:  请求中断或 HTTP 非 2xx
// - ValidationError: 提交前必填校验不通过
// - ResourceError: 响应体格式不对（反序列化失败）
// 全部只做提示，不致命，用户可重试

// NetworkError 网络错误
type NetworkError struct {
	StatusCode int    // 0 表示请求根本没到对端
	Message    string // 后端返回的 message，拿得到就带上
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode > 0 {
		if e.Message != "" {
			return fmt.Sprintf("后台接口错误 [%d]: %s", e.StatusCode, e.Message)
		}
		return fmt.Sprintf("后台接口错误 [%d]", e.StatusCode)
	}
	return fmt.Sprintf("请求中断: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ValidationError 必填字段校验错误
type ValidationError struct {
	MissingFields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("缺少必填字段: %s", strings.Join(e.MissingFields, ", "))
}

// ResourceError 响应数据格式错误
type ResourceError struct {
	Reason string
	Err    error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("响应数据异常 (%s): %v", e.Reason, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }
