package web

import (
	"time"

	"github.com/ecodeclub/mastersolis/internal/showcase/internal/domain"
)

type IdReq struct {
	Id int64 `json:"id"`
}

type ListReq struct {
	Featured bool   `json:"featured"`
	Search   string `json:"search"`
	// Category 项目按照分类过滤，案例按照行业过滤
	Category string `json:"category"`
	// Tag 按照技术栈过滤
	Tag      string `json:"tag"`
	Offset   int    `json:"offset"`
	Limit    int    `json:"limit"`
}

func (r ListReq) toDomain() domain.Query {
	return domain.Query{
		Featured: r.Featured,
		Search:   r.Search,
		Category: r.Category,
		Tag:      r.Tag,
		Offset:   r.Offset,
		Limit:    r.Limit,
	}
}

type List[T any] struct {
	List  []T   `json:"list"`
	Total int64 `json:"total"`
}

type Project struct {
	Id             int64    `json:"id,omitempty"`
	Title          string   `json:"title"`
	Client         string   `json:"client"`
	Category       string   `json:"category"`
	Description    string   `json:"description"`
	Technologies   []string `json:"technologies"`
	ImageURL       string   `json:"imageUrl"`
	ProjectURL     string   `json:"projectUrl"`
	CompletionDate int64    `json:"completionDate,omitempty"`
	Featured       bool     `json:"featured"`
	Ctime          int64    `json:"ctime,omitempty"`
	Utime          int64    `json:"utime,omitempty"`
}

func newProject(p domain.Project) Project {
	return Project{
		Id:             p.Id,
		Title:          p.Title,
		Client:         p.Client,
		Category:       p.Category,
		Description:    p.Description,
		Technologies:   p.Technologies,
		ImageURL:       p.ImageURL,
		ProjectURL:     p.ProjectURL,
		CompletionDate: millis(p.CompletionDate),
		Featured:       p.Featured,
		Ctime:          p.Ctime.UnixMilli(),
		Utime:          p.Utime.UnixMilli(),
	}
}

func (p Project) toDomain() domain.Project {
	return domain.Project{
		Id:             p.Id,
		Title:          p.Title,
		Client:         p.Client,
		Category:       p.Category,
		Description:    p.Description,
		Technologies:   p.Technologies,
		ImageURL:       p.ImageURL,
		ProjectURL:     p.ProjectURL,
		CompletionDate: fromMillis(p.CompletionDate),
		Featured:       p.Featured,
	}
}

type ServiceItem struct {
	Id           int64    `json:"id,omitempty"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Icon         string   `json:"icon"`
	Features     []string `json:"features"`
	DisplayOrder int      `json:"displayOrder"`
	Featured     bool     `json:"featured"`
	Ctime        int64    `json:"ctime,omitempty"`
	Utime        int64    `json:"utime,omitempty"`
}

func newServiceItem(s domain.ServiceItem) ServiceItem {
	return ServiceItem{
		Id:           s.Id,
		Title:        s.Title,
		Description:  s.Description,
		Icon:         s.Icon,
		Features:     s.Features,
		DisplayOrder: s.DisplayOrder,
		Featured:     s.Featured,
		Ctime:        s.Ctime.UnixMilli(),
		Utime:        s.Utime.UnixMilli(),
	}
}

func (s ServiceItem) toDomain() domain.ServiceItem {
	return domain.ServiceItem{
		Id:           s.Id,
		Title:        s.Title,
		Description:  s.Description,
		Icon:         s.Icon,
		Features:     s.Features,
		DisplayOrder: s.DisplayOrder,
		Featured:     s.Featured,
	}
}

type Testimonial struct {
	Id            int64  `json:"id,omitempty"`
	ClientName    string `json:"clientName"`
	ClientCompany string `json:"clientCompany"`
	ClientRole    string `json:"clientRole"`
	Content       string `json:"content"`
	Rating        int    `json:"rating"`
	AvatarURL     string `json:"avatarUrl"`
	Featured      bool   `json:"featured"`
	Ctime         int64  `json:"ctime,omitempty"`
	Utime         int64  `json:"utime,omitempty"`
}

func newTestimonial(t domain.Testimonial) Testimonial {
	return Testimonial{
		Id:            t.Id,
		ClientName:    t.ClientName,
		ClientCompany: t.ClientCompany,
		ClientRole:    t.ClientRole,
		Content:       t.Content,
		Rating:        t.Rating,
		AvatarURL:     t.AvatarURL,
		Featured:      t.Featured,
		Ctime:         t.Ctime.UnixMilli(),
		Utime:         t.Utime.UnixMilli(),
	}
}

func (t Testimonial) toDomain() domain.Testimonial {
	return domain.Testimonial{
		Id:            t.Id,
		ClientName:    t.ClientName,
		ClientCompany: t.ClientCompany,
		ClientRole:    t.ClientRole,
		Content:       t.Content,
		Rating:        t.Rating,
		AvatarURL:     t.AvatarURL,
		Featured:      t.Featured,
	}
}

type CaseStudy struct {
	Id           int64    `json:"id,omitempty"`
	Title        string   `json:"title"`
	Client       string   `json:"client"`
	Industry     string   `json:"industry"`
	Challenge    string   `json:"challenge"`
	Solution     string   `json:"solution"`
	Results      string   `json:"results"`
	Technologies []string `json:"technologies"`
	ImageURL     string   `json:"imageUrl"`
	Featured     bool     `json:"featured"`
	Ctime        int64    `json:"ctime,omitempty"`
	Utime        int64    `json:"utime,omitempty"`
}

func newCaseStudy(c domain.CaseStudy) CaseStudy {
	return CaseStudy{
		Id:           c.Id,
		Title:        c.Title,
		Client:       c.Client,
		Industry:     c.Industry,
		Challenge:    c.Challenge,
		Solution:     c.Solution,
		Results:      c.Results,
		Technologies: c.Technologies,
		ImageURL:     c.ImageURL,
		Featured:     c.Featured,
		Ctime:        c.Ctime.UnixMilli(),
		Utime:        c.Utime.UnixMilli(),
	}
}

func (c CaseStudy) toDomain() domain.CaseStudy {
	return domain.CaseStudy{
		Id:           c.Id,
		Title:        c.Title,
		Client:       c.Client,
		Industry:     c.Industry,
		Challenge:    c.Challenge,
		Solution:     c.Solution,
		Results:      c.Results,
		Technologies: c.Technologies,
		ImageURL:     c.ImageURL,
		Featured:     c.Featured,
	}
}

type Home struct {
	Services     []ServiceItem `json:"services"`
	Testimonials []Testimonial `json:"testimonials"`
	Projects     []Project     `json:"projects"`
}

func millis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
