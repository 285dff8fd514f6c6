package domain

import "strings"

type Order string

const (
	// OrderDefault 各自的默认排序，项目按照完成时间，服务按照展示顺序，其余按照创建时间
	OrderDefault Order = ""
	OrderNewest  Order = "newest"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type Query struct {
	Featured bool
	// Search 模糊匹配标题、描述和客户
	Search   string
	Category string
	// Tag 按照技术栈过滤，完全匹配其中一项
	Tag      string
	Order    Order
	Offset   int
	Limit    int
}

func (q Query) Normalize() Query {
	q.Search = strings.TrimSpace(q.Search)
	q.Category = strings.TrimSpace(q.Category)
	q.Tag = strings.TrimSpace(q.Tag)
	if strings.EqualFold(q.Category, "all") {
		q.Category = ""
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	if q.Limit <= 0 {
		q.Limit = defaultLimit
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}
	return q
}
