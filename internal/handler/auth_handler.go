package handler

import (
	"errors"

	"campus-admin/internal/dto"
	"campus-admin/internal/service"
	"campus-admin/internal/utils"
	"campus-admin/pkg/redis_limiter"

	"github.com/gin-gonic/gin"
	validator "github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	authService *service.AuthService
	limiter     *redis_limiter.RedisLimiter // 为nil时不限流
	logger      *logrus.Logger
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(authService *service.AuthService, limiter *redis_limiter.RedisLimiter, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		limiter:     limiter,
		logger:      logger,
	}
}

// Register 管理员注册
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求体不是合法的 JSON")
		return
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTooShort),
			errors.Is(err, service.ErrUsernameTooLong),
			errors.Is(err, service.ErrPasswordTooShort),
			errors.Is(err, service.ErrUsernameTaken):
			utils.BadRequest(c, err.Error())
		default:
			h.logger.WithError(err).Error("注册管理员失败")
			utils.InternalError(c)
		}
		return
	}

	utils.Created(c, resp)
}

// Login 管理员登录
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			utils.BadRequest(c, "请填写用户名和密码")
		} else {
			utils.BadRequest(c, "请求体不是合法的 JSON")
		}
		return
	}

	// 同一用户名+来源IP在窗口期内限制尝试次数；Redis不可用时放行
	limiterKey := req.Username + ":" + c.ClientIP()
	if h.limiter != nil {
		allowed, err := h.limiter.Allow(c.Request.Context(), limiterKey)
		if err != nil {
			h.logger.WithError(err).Warn("登录限流不可用，本次放行")
		} else if !allowed {
			utils.TooManyRequests(c, "登录尝试过于频繁，请稍后再试")
			return
		}
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, service.ErrBadCredentials) {
			utils.Unauthorized(c, err.Error())
		} else {
			h.logger.WithError(err).Error("管理员登录失败")
			utils.InternalError(c)
		}
		return
	}

	if h.limiter != nil {
		if err := h.limiter.Reset(c.Request.Context(), limiterKey); err != nil {
			h.logger.WithError(err).Warn("重置登录限流计数失败")
		}
	}

	utils.Success(c, resp)
}
