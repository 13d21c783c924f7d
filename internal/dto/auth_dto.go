package dto

import "time"

// RegisterRequest 管理员注册请求
// 字段策略（长度、查重）在 AuthService 中校验，保证逐条中文提示。
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest 管理员登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminInfo 管理员信息（脱敏）
type AdminInfo struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse 登录/注册响应
type AuthResponse struct {
	Token string    `json:"token"`
	Admin AdminInfo `json:"admin"`
}
