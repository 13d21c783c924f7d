package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"campus-admin/internal/config"
	"campus-admin/internal/dto"
	"campus-admin/internal/models"
	"campus-admin/internal/repository"
	"campus-admin/internal/utils"

	"gorm.io/gorm"
)

// 业务错误，由路由层映射为响应状态码
var (
	ErrUsernameTooShort = errors.New("用户名至少需要 3 个字符")
	ErrUsernameTooLong  = errors.New("用户名长度不能超过 64 字")
	ErrPasswordTooShort = errors.New("密码长度至少 6 位")
	ErrUsernameTaken    = errors.New("用户名已存在，请更换后重试")

	// 用户不存在与密码错误使用同一提示，避免用户名枚举
	ErrBadCredentials = errors.New("用户名或密码错误")
)

// AuthService 认证服务
type AuthService struct {
	adminRepo  *repository.AdminRepository
	jwtManager *utils.JWTManager
	cfg        *config.Config
}

// NewAuthService 创建认证服务
func NewAuthService(adminRepo *repository.AdminRepository, jwtManager *utils.JWTManager, cfg *config.Config) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		jwtManager: jwtManager,
		cfg:        cfg,
	}
}

// Register 管理员注册
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	if utf8.RuneCountInString(username) < 3 {
		return nil, ErrUsernameTooShort
	}
	if utf8.RuneCountInString(username) > 64 {
		return nil, ErrUsernameTooLong
	}
	if len(req.Password) < 6 {
		return nil, ErrPasswordTooShort
	}

	// 预检用户名是否已存在
	exists, err := s.adminRepo.ExistsByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("检查用户名失败: %w", err)
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	// 哈希密码
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("密码哈希失败: %w", err)
	}

	// 创建管理员；预检与插入之间被并发抢注时，唯一索引兜底
	admin := &models.Admin{
		Username:     username,
		PasswordHash: hashedPassword,
	}
	if err := s.adminRepo.Create(admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("创建管理员失败: %w", err)
	}

	return s.buildAuthResponse(admin)
}

// Login 管理员登录
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	admin, err := s.adminRepo.GetByUsername(strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, fmt.Errorf("查询管理员失败: %w", err)
	}

	if err := utils.CheckPassword(req.Password, admin.PasswordHash); err != nil {
		return nil, ErrBadCredentials
	}

	return s.buildAuthResponse(admin)
}

// InitAdmin 初始化默认管理员账户（幂等）
func (s *AuthService) InitAdmin() error {
	exists, err := s.adminRepo.ExistsByUsername(s.cfg.Admin.Username)
	if err != nil {
		return fmt.Errorf("检查默认管理员失败: %w", err)
	}
	if exists {
		return nil
	}

	// 配置中的密码允许直接给出 bcrypt 哈希（以 $2a$ 或 $2b$ 开头）
	passwordHash := s.cfg.Admin.Password
	if len(passwordHash) < 4 || (passwordHash[:4] != "$2a$" && passwordHash[:4] != "$2b$") {
		hashedPassword, err := utils.HashPassword(s.cfg.Admin.Password)
		if err != nil {
			return fmt.Errorf("密码哈希失败: %w", err)
		}
		passwordHash = hashedPassword
	}

	admin := &models.Admin{
		Username:     s.cfg.Admin.Username,
		PasswordHash: passwordHash,
	}
	if err := s.adminRepo.Create(admin); err != nil {
		return fmt.Errorf("创建默认管理员失败: %w", err)
	}

	return nil
}

func (s *AuthService) buildAuthResponse(admin *models.Admin) (*dto.AuthResponse, error) {
	token, err := s.jwtManager.GenerateToken(admin.ID, admin.Username)
	if err != nil {
		return nil, fmt.Errorf("生成Token失败: %w", err)
	}

	return &dto.AuthResponse{
		Token: token,
		Admin: dto.AdminInfo{
			ID:        admin.ID,
			Username:  admin.Username,
			CreatedAt: admin.CreatedAt,
		},
	}, nil
}
