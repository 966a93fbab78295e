package client

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"go-user-directory/internal/domain"
)

// Cache 服务端记录集的客户端镜像。只在 Load 成功后整体替换，
// 从不按请求结果做本地增量修改，所以和服务端最多相差一个来回
type Cache struct {
	cl *Client

	mu    sync.RWMutex
	users []domain.User
	sf    singleflight.Group
}

func NewCache(cl *Client) *Cache { return &Cache{cl: cl} }

// Load 全量拉取并整体替换本地副本；并发的 Load 合并为一次请求。
// 拉取失败时退回内置演示数据，保证界面有内容，错误仍返回给调用方
func (c *Cache) Load(ctx context.Context) error {
	_, err, _ := c.sf.Do("reload", func() (any, error) {
		users, err := c.cl.List(ctx)
		if err != nil {
			c.replace(demoUsers())
			return nil, err
		}
		c.replace(users)
		return nil, nil
	})
	return err
}

// Users 当前副本（拷贝）
func (c *Cache) Users() []domain.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.User, len(c.users))
	copy(out, c.users)
	return out
}

// Filter 本地过滤，不经过服务端：忽略大小写的子串匹配
// name/email/phone（phone 缺省的记录不按 phone 匹配）。
// 空白搜索词视为无过滤
func (c *Cache) Filter(query string) []domain.User {
	q := strings.ToLower(strings.TrimSpace(query))
	all := c.Users()
	if q == "" {
		return all
	}
	var out []domain.User
	for _, u := range all {
		switch {
		case strings.Contains(strings.ToLower(u.Name), q),
			strings.Contains(strings.ToLower(u.Email), q),
			u.Phone != nil && strings.Contains(*u.Phone, q):
			out = append(out, u)
		}
	}
	return out
}

func (c *Cache) replace(users []domain.User) {
	c.mu.Lock()
	c.users = users
	c.mu.Unlock()
}

// demoUsers 拉取失败时的兜底数据，内容与服务端种子一致
func demoUsers() []domain.User {
	str := func(s string) *string { return &s }
	num := func(n int) *int { return &n }
	return []domain.User{
		{ID: 1, Name: "Juan Pérez", Email: "juan@email.com", Phone: str("123456789"), Age: num(30)},
		{ID: 2, Name: "María García", Email: "maria@email.com", Phone: str("987654321"), Age: num(25)},
		{ID: 3, Name: "Carlos López", Email: "carlos@email.com", Phone: str("555555555"), Age: num(35)},
	}
}
