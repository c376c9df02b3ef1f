package service

import (
	"sync"

	"catalog_admin_v1_202608/internal/api/dto"
)

// ==================== 通知接口 ====================

// Notifier 通知接口（各服务只依赖这个窄接口）
type Notifier interface {
	Notify(level, message string)
}

// ==================== 通知中心 ====================

// NotificationHub 瞬时通知中心（前台 toast 的数据源）
type NotificationHub struct {
	subscribers     []chan dto.Notification
	subscriberMutex sync.RWMutex
}

var _ Notifier = (*NotificationHub)(nil)

// NewNotificationHub 创建通知中心
func NewNotificationHub() *NotificationHub {
	return &NotificationHub{}
}

// Subscribe 订阅通知
func (h *NotificationHub) Subscribe() chan dto.Notification {
	h.subscriberMutex.Lock()
	defer h.subscriberMutex.Unlock()

	ch := make(chan dto.Notification, 10)
	h.subscribers = append(h.subscribers, ch)
	return ch
}

// Unsubscribe 取消订阅
func (h *NotificationHub) Unsubscribe(ch chan dto.Notification) {
	h.subscriberMutex.Lock()
	defer h.subscriberMutex.Unlock()

	for i, sub := range h.subscribers {
		if sub == ch {
			h.subscribers = append(h.subscribers[:i], h.subscribers[i+1:]...)
			close(ch)
			break
		}
	}
}

// Notify 发布一条通知
func (h *NotificationHub) Notify(level, message string) {
	h.subscriberMutex.RLock()
	defer h.subscriberMutex.RUnlock()

	event := dto.Notification{Level: level, Message: message}
	for _, ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			// channel 已满，跳过
		}
	}
}
