// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

// SignupReq 报名请求
// 活动名来自路径参数，邮箱来自查询参数（与老系统的前端保持兼容）
type SignupReq struct {
	Name  string `path:"name"`
	Email string `form:"email"`
}

// UnregisterReq 退出请求
type UnregisterReq struct {
	Name  string `path:"name"`
	Email string `form:"email"`
}

// MessageResp 写操作成功响应
type MessageResp struct {
	Message string `json:"message"`
}

// StaticReq 静态文件请求
type StaticReq struct {
	File string `path:"file"`
}
