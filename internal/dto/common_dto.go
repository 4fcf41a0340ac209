package dto

// PageQuery 分页查询参数
type PageQuery struct {
	Page     int    `form:"page"`      // 可选：页码，不传默认为1
	PageSize int    `form:"page_size"` // 可选：每页数量，不传默认为10
	Keyword  string `form:"keyword"`   // 可选：关键字搜索
}

// GetPage 获取页码
func (p *PageQuery) GetPage() int {
	if p.Page < 1 {
		return 1
	}
	return p.Page
}

// GetPageSize 获取每页数量
func (p *PageQuery) GetPageSize() int {
	if p.PageSize < 1 {
		return 10
	}
	if p.PageSize > 100 {
		return 100
	}
	return p.PageSize
}

// GetOffset 获取偏移量
func (p *PageQuery) GetOffset() int {
	return (p.GetPage() - 1) * p.GetPageSize()
}

// IDParam ID参数
type IDParam struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// UserInfo 认证中间件写入context的用户信息
type UserInfo struct {
	UserID      int64    `json:"user_id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Authorities []string `json:"authorities"`
}
