package web

import (
	"time"

	"github.com/ecodeclub/mastersolis/internal/blog/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/pkg/listx"
)

type IdReq struct {
	Id int64 `json:"id"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

func (p Page) page() (int, int) {
	return page(p.Offset, p.Limit)
}

const (
	defaultLimit = 20
	maxLimit     = 100
)

// page 没传 limit 的时候用默认值，超过上限的截断
func page(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return offset, limit
}

type ListReq struct {
	Search   string `json:"search"`
	Category string `json:"category"`
	Offset   int    `json:"offset"`
	Limit    int    `json:"limit"`
}

func (r ListReq) page() (int, int) {
	return page(r.Offset, r.Limit)
}

type GenerateReq struct {
	Title string `json:"title"`
}

type Post struct {
	Id             int64    `json:"id,omitempty"`
	Title          string   `json:"title"`
	Excerpt        string   `json:"excerpt"`
	Content        string   `json:"content,omitempty"`
	Category       string   `json:"category"`
	Tags           []string `json:"tags"`
	Author         string   `json:"author"`
	FeaturedImage  string   `json:"featuredImage"`
	ReadTime       int      `json:"readTime"`
	Published      bool     `json:"published"`
	PublishDate    int64    `json:"publishDate,omitempty"`
	Views          int64    `json:"views"`
	AISummary      string   `json:"aiSummary,omitempty"`
	SEODescription string   `json:"seoDescription,omitempty"`
	Utime          int64    `json:"utime,omitempty"`
}

func newPost(post domain.Post) Post {
	return Post{
		Id:             post.Id,
		Title:          post.Title,
		Excerpt:        post.Excerpt,
		Content:        post.Content,
		Category:       post.Category,
		Tags:           post.Tags,
		Author:         post.Author,
		FeaturedImage:  post.FeaturedImage,
		ReadTime:       post.ReadTime,
		Published:      post.Published,
		PublishDate:    post.PublishDate.UnixMilli(),
		Views:          post.Views,
		AISummary:      post.AISummary,
		SEODescription: post.SEODescription,
		Utime:          post.Utime.UnixMilli(),
	}
}

// SavePostReq 标签用逗号分隔
type SavePostReq struct {
	Post
	TagsText string `json:"tagsText"`
}

func (r SavePostReq) toDomain() domain.Post {
	tags := r.Tags
	if r.TagsText != "" {
		tags = listx.Split(r.TagsText, ",")
	}
	post := domain.Post{
		Id:             r.Id,
		Title:          r.Title,
		Excerpt:        r.Excerpt,
		Content:        r.Content,
		Category:       r.Category,
		Tags:           tags,
		Author:         r.Author,
		FeaturedImage:  r.FeaturedImage,
		ReadTime:       r.ReadTime,
		Published:      r.Published,
		AISummary:      r.AISummary,
		SEODescription: r.SEODescription,
	}
	if r.PublishDate > 0 {
		post.PublishDate = time.UnixMilli(r.PublishDate)
	}
	return post
}

type PostList struct {
	List  []Post `json:"list"`
	Total int64  `json:"total"`
}
