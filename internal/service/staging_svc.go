package service

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"catalog_admin_v1_202608/internal/api/dto"
)

// ==================== 暂存模型 ====================

// StagedImage 一张待上传的新图片
// PreviewID 是本地预览句柄：入列时分配，移除或会话结束时必须释放
type StagedImage struct {
	Filename  string
	Data      []byte
	PreviewID string
}

// ==================== 服务实现 ====================

// StagingService 图片暂存
// 新图片与既有图片引用两条列表独立维护，提交前不会动后端
// 预览句柄按作用域管理：入列分配、移除释放、Close 全量释放（漏释放算资源泄漏缺陷）
type StagingService struct {
	logger *zap.Logger

	mu       sync.Mutex
	images   []StagedImage
	existing []string
	previews map[string][]byte

	// 仅 update 流程接入既有图片编辑；未接入时 RemoveExistingImage 只记日志
	existingWired bool
}

// NewStagingService 创建图片暂存（create 流程：无既有图片）
func NewStagingService(logger *zap.Logger) *StagingService {
	return &StagingService{
		logger:   logger,
		existing: []string{},
		previews: make(map[string][]byte),
	}
}

// ==================== 新图片 ====================

// AddImages 追加新图片，每张分配一个预览句柄
// 不校验大小和类型：文件选择器的 accept 过滤之外来什么收什么
func (s *StagingService) AddImages(files []dto.ImagePart) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range files {
		previewID := uuid.NewString()
		s.previews[previewID] = f.Data
		s.images = append(s.images, StagedImage{
			Filename:  f.Filename,
			Data:      f.Data,
			PreviewID: previewID,
		})
	}
}

// RemoveNewImage 按位置移除一张新图片并释放其预览句柄
func (s *StagingService) RemoveNewImage(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.images) {
		s.logger.Warn("移除新图片：下标越界", zap.Int("index", index))
		return
	}

	delete(s.previews, s.images[index].PreviewID)
	s.images = append(s.images[:index], s.images[index+1:]...)
}

// NewImages 新图片快照（提交时用，顺序即 image_0, image_1 ...）
func (s *StagingService) NewImages() []dto.ImagePart {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]dto.ImagePart, len(s.images))
	for i, img := range s.images {
		out[i] = dto.ImagePart{Filename: img.Filename, Data: img.Data}
	}
	return out
}

// StagedImages 带预览句柄的新图片快照（渲染缩略图时用）
func (s *StagingService) StagedImages() []StagedImage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]StagedImage, len(s.images))
	copy(out, s.images)
	return out
}

// NewImageCount 当前暂存的新图片数
func (s *StagingService) NewImageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.images)
}

// Preview 按句柄取预览内容
func (s *StagingService) Preview(previewID string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.previews[previewID]
	return data, ok
}

// OpenPreviews 未释放的预览句柄数（泄漏检查用）
func (s *StagingService) OpenPreviews() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.previews)
}

// ==================== 既有图片 ====================

// SetExistingImages 填充既有图片引用并接入编辑能力（update 流程）
func (s *StagingService) SetExistingImages(urls []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.existing = make([]string, len(urls))
	copy(s.existing, urls)
	s.existingWired = true
}

// RemoveExistingImage 按位置移除一条既有图片引用
// create 流程没有接入既有图片编辑，此时只记日志，不算错误
func (s *StagingService) RemoveExistingImage(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.existingWired {
		s.logger.Info("未接入既有图片编辑，忽略移除操作", zap.Int("index", index))
		return
	}
	if index < 0 || index >= len(s.existing) {
		s.logger.Warn("移除既有图片：下标越界", zap.Int("index", index))
		return
	}

	s.existing = append(s.existing[:index], s.existing[index+1:]...)
}

// ExistingImages 保留的既有图片引用快照
func (s *StagingService) ExistingImages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.existing))
	copy(out, s.existing)
	return out
}

// ==================== 生命周期 ====================

// Reset 清空两条列表并释放全部预览句柄（提交成功或取消后调用）
func (s *StagingService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// Close 表单会话结束时的清理，等价于 Reset
func (s *StagingService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *StagingService) resetLocked() {
	for id := range s.previews {
		delete(s.previews, id)
	}
	s.images = nil
	s.existing = []string{}
}
