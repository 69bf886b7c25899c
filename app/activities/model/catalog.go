package model

import (
	"errors"
	"sync"
)

// ==================== Catalog 活动目录（核心） ====================
//
// 数据来源：进程启动时的固定种子数据，运行期间活动集合不增不减，
// 只有每个活动的报名名单（participants）会变化。
//
// 并发模型：整个目录一把读写锁。报名/退出都是"先检查后修改"，
// 必须在同一个临界区内完成，否则两个并发请求可能同时报名成功。
// 校园规模的流量下锁竞争可以忽略，不做分段锁。

// 哨兵错误，由 logic 层映射为 errorx 业务错误码
var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("student already signed up")
	ErrNotRegistered    = errors.New("student not registered")
	ErrActivityFull     = errors.New("activity is full")
)

// Activity 单个课外活动
type Activity struct {
	Description     string   `json:"description"`      // 活动介绍
	Schedule        string   `json:"schedule"`         // 活动时间（自由文本）
	MaxParticipants int      `json:"max_participants"` // 容量上限（默认仅展示，不强制）
	Participants    []string `json:"participants"`     // 已报名邮箱，保持报名顺序，不重复
}

// Snapshot 目录快照（深拷贝）
// Names 保持目录的初始插入顺序，供序列化时按序输出
type Snapshot struct {
	Names      []string
	Activities map[string]Activity
}

// Catalog 活动目录
// 显式持有的单实例，由 main 构造后注入 ServiceContext，不用包级全局变量
type Catalog struct {
	mu              sync.RWMutex
	names           []string             // 插入顺序
	items           map[string]*Activity // 活动名 -> 活动
	enforceCapacity bool                 // 可选扩展：满员时拒绝报名
}

// NewCatalog 创建并填充活动目录
// enforceCapacity 默认应为 false，保持与原系统一致的"容量仅展示"行为
func NewCatalog(enforceCapacity bool) *Catalog {
	c := &Catalog{
		items:           make(map[string]*Activity, len(seedActivities)),
		enforceCapacity: enforceCapacity,
	}
	for _, s := range seedActivities {
		a := s.activity
		a.Participants = append([]string(nil), s.activity.Participants...)
		c.names = append(c.names, s.name)
		c.items[s.name] = &a
	}
	return c
}

// List 返回完整目录快照
// 快照与内部状态完全隔离，调用方修改快照不影响目录
func (c *Catalog) List() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := Snapshot{
		Names:      append([]string(nil), c.names...),
		Activities: make(map[string]Activity, len(c.items)),
	}
	for name, a := range c.items {
		cp := *a
		cp.Participants = append([]string(nil), a.Participants...)
		snap.Activities[name] = cp
	}
	return snap
}

// SignUp 报名活动
// 校验顺序：活动存在 -> 未重复报名 -> (可选)未满员，然后追加到名单末尾
func (c *Catalog) SignUp(name, email string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	a, ok := c.items[name]
	if !ok {
		return ErrActivityNotFound
	}
	if a.contains(email) {
		return ErrAlreadySignedUp
	}
	if c.enforceCapacity && len(a.Participants) >= a.MaxParticipants {
		return ErrActivityFull
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// Unregister 退出活动
// 校验顺序：活动存在 -> 当前已报名，然后移除名单中的该邮箱
// 重复退出不幂等：第二次调用返回 ErrNotRegistered
func (c *Catalog) Unregister(name, email string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	a, ok := c.items[name]
	if !ok {
		return ErrActivityNotFound
	}
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return nil
		}
	}
	return ErrNotRegistered
}

// contains 判断邮箱是否已在名单中
// 名单很短（几十人），线性扫描即可，不值得额外维护 set
func (a *Activity) contains(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}
