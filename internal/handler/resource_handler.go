package handler

import (
	"errors"
	"net/http"
	"strconv"

	"campus-admin/internal/repository"
	"campus-admin/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ResourceDescriptor 资源描述
// Bind 解析请求体并完成字段校验；Fields 给出整体替换更新的列映射。
// ConflictMsg 非空时，唯一索引冲突以 400 返回该提示。
type ResourceDescriptor[T any] struct {
	Label       string // 中文资源名，用于日志
	NotFoundMsg string
	ConflictMsg string
	Bind        func(c *gin.Context) (*T, []string, error)
	Fields      func(item *T) map[string]interface{}
}

// ResourceHandler 通用资源处理器
// 学生、课程、教师共用同一套处理流程，差异全部收敛在描述中。
type ResourceHandler[T any] struct {
	repo   *repository.ResourceRepository[T]
	desc   ResourceDescriptor[T]
	logger *logrus.Logger
}

// NewResourceHandler 创建资源处理器
func NewResourceHandler[T any](repo *repository.ResourceRepository[T], desc ResourceDescriptor[T], logger *logrus.Logger) *ResourceHandler[T] {
	return &ResourceHandler[T]{
		repo:   repo,
		desc:   desc,
		logger: logger,
	}
}

// parseID 解析路径中的资源ID，必须为正整数
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// List 获取资源列表，支持 q 参数做子串检索
func (h *ResourceHandler[T]) List(c *gin.Context) {
	items, err := h.repo.List(c.Query("q"))
	if err != nil {
		h.logger.WithError(err).Errorf("%s接口错误", h.desc.Label)
		utils.InternalError(c)
		return
	}
	utils.Items(c, items)
}

// Create 创建资源
func (h *ResourceHandler[T]) Create(c *gin.Context) {
	item, violations, err := h.desc.Bind(c)
	if err != nil {
		utils.BadRequest(c, "请求体不是合法的 JSON")
		return
	}
	if len(violations) > 0 {
		utils.BadRequest(c, "输入校验未通过", violations...)
		return
	}

	if err := h.repo.Create(item); err != nil {
		if h.desc.ConflictMsg != "" && errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.BadRequest(c, h.desc.ConflictMsg)
			return
		}
		h.logger.WithError(err).Errorf("创建%s失败", h.desc.Label)
		utils.InternalError(c)
		return
	}

	utils.Item(c, http.StatusCreated, item)
}

// Get 查询单条资源
func (h *ResourceHandler[T]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "ID 参数不合法")
		return
	}

	item, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, h.desc.NotFoundMsg)
			return
		}
		h.logger.WithError(err).Errorf("查询%s失败", h.desc.Label)
		utils.InternalError(c)
		return
	}

	utils.Item(c, http.StatusOK, item)
}

// Update 整体替换全部可变字段
func (h *ResourceHandler[T]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "ID 参数不合法")
		return
	}

	item, violations, err := h.desc.Bind(c)
	if err != nil {
		utils.BadRequest(c, "请求体不是合法的 JSON")
		return
	}
	if len(violations) > 0 {
		utils.BadRequest(c, "输入校验未通过", violations...)
		return
	}

	updated, err := h.repo.Update(id, h.desc.Fields(item))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.NotFound(c, h.desc.NotFoundMsg)
		case h.desc.ConflictMsg != "" && errors.Is(err, gorm.ErrDuplicatedKey):
			utils.BadRequest(c, h.desc.ConflictMsg)
		default:
			h.logger.WithError(err).Errorf("更新%s失败", h.desc.Label)
			utils.InternalError(c)
		}
		return
	}

	utils.Item(c, http.StatusOK, updated)
}

// Delete 硬删除资源
func (h *ResourceHandler[T]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.BadRequest(c, "ID 参数不合法")
		return
	}

	if err := h.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, h.desc.NotFoundMsg)
			return
		}
		h.logger.WithError(err).Errorf("删除%s失败", h.desc.Label)
		utils.InternalError(c)
		return
	}

	utils.NoContent(c)
}
