package dto

// ==================== 通知事件 ====================
// 前台 toast 的数据源：操作结果只提示，不中断应用

const (
	NotifyLevelSuccess = "success"
	NotifyLevelError   = "error"
)

// Notification 一条瞬时通知
type Notification struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}
