package domain

import (
	"strings"
	"time"
)

const (
	BizJob  = "job"
	BizBlog = "blog"
	// BizAll 同时搜索职位和文章
	BizAll = ""
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

type Query struct {
	Keyword string
	Biz     string
	Offset  int
	Limit   int
}

func (q Query) Normalize() Query {
	q.Keyword = strings.TrimSpace(q.Keyword)
	q.Biz = strings.ToLower(strings.TrimSpace(q.Biz))
	if q.Biz == "all" {
		q.Biz = BizAll
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

func (q Query) Valid() bool {
	return q.Keyword != "" && (q.Biz == BizAll || q.Biz == BizJob || q.Biz == BizBlog)
}

type Job struct {
	Id             int64
	Title          string
	Department     string
	Location       string
	EmploymentType string
	Skills         []string
	PostedDate     time.Time
}

type Blog struct {
	Id          int64
	Title       string
	Excerpt     string
	Category    string
	Tags        []string
	Author      string
	PublishDate time.Time
}

type Result struct {
	Jobs      []Job
	JobTotal  int64
	Blogs     []Blog
	BlogTotal int64
}
