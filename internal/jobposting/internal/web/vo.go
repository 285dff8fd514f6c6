package web

import (
	"time"

	"github.com/ecodeclub/mastersolis/internal/jobposting/internal/domain"
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

type Job struct {
	Id                 int64    `json:"id,omitempty"`
	Title              string   `json:"title"`
	Department         string   `json:"department"`
	Location           string   `json:"location"`
	EmploymentType     string   `json:"employmentType"`
	ExperienceRequired string   `json:"experienceRequired"`
	Description        string   `json:"description"`
	Responsibilities   []string `json:"responsibilities"`
	Requirements       []string `json:"requirements"`
	Skills             []string `json:"skills"`
	SalaryRange        string   `json:"salaryRange"`
	Status             string   `json:"status"`
	PostedDate         int64    `json:"postedDate,omitempty"`
	Utime              int64    `json:"utime,omitempty"`
}

func newJob(job domain.JobPosting) Job {
	return Job{
		Id:                 job.Id,
		Title:              job.Title,
		Department:         job.Department,
		Location:           job.Location,
		EmploymentType:     job.EmploymentType.String(),
		ExperienceRequired: job.ExperienceRequired,
		Description:        job.Description,
		Responsibilities:   job.Responsibilities,
		Requirements:       job.Requirements,
		Skills:             job.Skills,
		SalaryRange:        job.SalaryRange,
		Status:             job.Status.String(),
		PostedDate:         job.PostedDate.UnixMilli(),
		Utime:              job.Utime.UnixMilli(),
	}
}

// SaveJobReq 管理后台的表单里面，职责和要求是一行一条，技能用逗号分隔。
// 文本字段不为空的时候优先使用文本字段
type SaveJobReq struct {
	Job
	ResponsibilitiesText string `json:"responsibilitiesText"`
	RequirementsText     string `json:"requirementsText"`
	SkillsText           string `json:"skillsText"`
}

func (r SaveJobReq) toDomain() domain.JobPosting {
	job := domain.JobPosting{
		Id:                 r.Id,
		Title:              r.Title,
		Department:         r.Department,
		Location:           r.Location,
		EmploymentType:     domain.EmploymentType(r.EmploymentType),
		ExperienceRequired: r.ExperienceRequired,
		Description:        r.Description,
		Responsibilities:   r.Responsibilities,
		Requirements:       r.Requirements,
		Skills:             r.Skills,
		SalaryRange:        r.SalaryRange,
		Status:             domain.Status(r.Status),
	}
	if r.PostedDate > 0 {
		job.PostedDate = time.UnixMilli(r.PostedDate)
	}
	if r.ResponsibilitiesText != "" {
		job.Responsibilities = listx.Lines(r.ResponsibilitiesText)
	}
	if r.RequirementsText != "" {
		job.Requirements = listx.Lines(r.RequirementsText)
	}
	if r.SkillsText != "" {
		job.Skills = listx.Split(r.SkillsText, ",")
	}
	return job
}

type JobList struct {
	List  []Job `json:"list"`
	Total int64 `json:"total"`
}
