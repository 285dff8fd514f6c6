package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mastersolis/internal/search/internal/domain"
)

type SearchReq struct {
	Keyword string `json:"keyword"`
	// Biz job、blog，为空表示全部
	Biz    string `json:"biz"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type Job struct {
	Id             int64    `json:"id"`
	Title          string   `json:"title"`
	Department     string   `json:"department"`
	Location       string   `json:"location"`
	EmploymentType string   `json:"employmentType"`
	Skills         []string `json:"skills"`
	PostedDate     int64    `json:"postedDate"`
}

type Blog struct {
	Id          int64    `json:"id"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Author      string   `json:"author"`
	PublishDate int64    `json:"publishDate"`
}

type SearchResult struct {
	Jobs      []Job  `json:"jobs"`
	JobTotal  int64  `json:"jobTotal"`
	Blogs     []Blog `json:"blogs"`
	BlogTotal int64  `json:"blogTotal"`
}

func newSearchResult(res domain.Result) SearchResult {
	return SearchResult{
		Jobs: slice.Map(res.Jobs, func(idx int, src domain.Job) Job {
			return Job{
				Id:             src.Id,
				Title:          src.Title,
				Department:     src.Department,
				Location:       src.Location,
				EmploymentType: src.EmploymentType,
				Skills:         src.Skills,
				PostedDate:     src.PostedDate.UnixMilli(),
			}
		}),
		JobTotal: res.JobTotal,
		Blogs: slice.Map(res.Blogs, func(idx int, src domain.Blog) Blog {
			return Blog{
				Id:          src.Id,
				Title:       src.Title,
				Excerpt:     src.Excerpt,
				Category:    src.Category,
				Tags:        src.Tags,
				Author:      src.Author,
				PublishDate: src.PublishDate.UnixMilli(),
			}
		}),
		BlogTotal: res.BlogTotal,
	}
}
