package web

import (
	"github.com/ecodeclub/mastersolis/internal/application/internal/domain"
)

type IdReq struct {
	Id int64 `json:"id"`
}

// ApplyResult 前端收到之后展示提示，然后跳回招聘页面
type ApplyResult struct {
	Id            int64  `json:"id"`
	Redirect      string `json:"redirect"`
	RedirectDelay int    `json:"redirectDelay"`
}

type FilterReq struct {
	Search string `json:"search"`
	Status string `json:"status"`
	Score  string `json:"score"`
}

func (f FilterReq) toDomain() domain.Filter {
	return domain.Filter{
		Search: f.Search,
		Status: f.Status,
		Score:  domain.ScoreBucket(f.Score),
	}
}

type ListReq struct {
	FilterReq
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

func (r ListReq) page() (int, int) {
	return page(r.Offset, r.Limit)
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

type StatusReq struct {
	Id     int64  `json:"id"`
	Status string `json:"status"`
}

type Application struct {
	Id              int64                 `json:"id"`
	JobId           int64                 `json:"jobId"`
	JobTitle        string                `json:"jobTitle"`
	FullName        string                `json:"fullName"`
	Email           string                `json:"email"`
	Phone           string                `json:"phone"`
	LinkedinURL     string                `json:"linkedinUrl,omitempty"`
	PortfolioURL    string                `json:"portfolioUrl,omitempty"`
	ExperienceYears int                   `json:"experienceYears"`
	Education       string                `json:"education"`
	CoverLetter     string                `json:"coverLetter"`
	Skills          []string              `json:"skills"`
	ResumeURL       string                `json:"resumeUrl"`
	ExtractedData   *domain.ExtractedData `json:"extractedData"`
	AIScore         *int                  `json:"aiScore"`
	AISummary       *string               `json:"aiSummary"`
	Status          string                `json:"status"`
	Ctime           int64                 `json:"ctime"`
	Utime           int64                 `json:"utime"`
}

func newApplication(app domain.Application) Application {
	res := Application{
		Id:              app.Id,
		JobId:           app.JobId,
		JobTitle:        app.JobTitle,
		FullName:        app.FullName,
		Email:           app.Email,
		Phone:           app.Phone,
		LinkedinURL:     app.LinkedinURL,
		PortfolioURL:    app.PortfolioURL,
		ExperienceYears: app.ExperienceYears,
		Education:       app.Education,
		CoverLetter:     app.CoverLetter,
		Skills:          app.Skills,
		ResumeURL:       app.ResumeURL,
		ExtractedData:   app.ExtractedData,
		Status:          app.Status.String(),
		Ctime:           app.Ctime.UnixMilli(),
		Utime:           app.Utime.UnixMilli(),
	}
	if app.Assessment != nil {
		score, summary := app.Assessment.Score, app.Assessment.Summary
		res.AIScore = &score
		res.AISummary = &summary
	}
	return res
}

type ApplicationList struct {
	List  []Application `json:"list"`
	Total int64         `json:"total"`
}

type Stats struct {
	Total int64 `json:"total"`
	New   int64 `json:"new"`
}
