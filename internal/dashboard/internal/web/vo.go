package web

import (
	"github.com/ecodeclub/mastersolis/internal/application"
	"github.com/ecodeclub/mastersolis/internal/dashboard/internal/domain"
)

type Stats struct {
	Jobs            int64 `json:"jobs"`
	ActiveJobs      int64 `json:"activeJobs"`
	Applications    int64 `json:"applications"`
	NewApplications int64 `json:"newApplications"`
	BlogPosts       int64 `json:"blogPosts"`
	PublishedPosts  int64 `json:"publishedPosts"`
	Contacts        int64 `json:"contacts"`
	NewContacts     int64 `json:"newContacts"`
	Projects        int64 `json:"projects"`
	Services        int64 `json:"services"`
	Testimonials    int64 `json:"testimonials"`
	CaseStudies     int64 `json:"caseStudies"`
}

type RecentApplication struct {
	Id       int64  `json:"id"`
	FullName string `json:"fullName"`
	JobTitle string `json:"jobTitle"`
	Status   string `json:"status"`
	AIScore  *int   `json:"aiScore"`
	Ctime    int64  `json:"ctime"`
}

type RecentContact struct {
	Id      int64  `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Status  string `json:"status"`
	Ctime   int64  `json:"ctime"`
}

type Overview struct {
	Stats              Stats               `json:"stats"`
	RecentApplications []RecentApplication `json:"recentApplications"`
	RecentContacts     []RecentContact     `json:"recentContacts"`
}

func newOverview(o domain.Overview) Overview {
	res := Overview{
		Stats:              Stats(o.Stats),
		RecentApplications: make([]RecentApplication, 0, len(o.RecentApplications)),
		RecentContacts:     make([]RecentContact, 0, len(o.RecentContacts)),
	}
	for _, app := range o.RecentApplications {
		res.RecentApplications = append(res.RecentApplications, newRecentApplication(app))
	}
	for _, c := range o.RecentContacts {
		res.RecentContacts = append(res.RecentContacts, RecentContact{
			Id:      c.Id,
			Name:    c.Name,
			Subject: c.Subject,
			Status:  c.Status.String(),
			Ctime:   c.Ctime.UnixMilli(),
		})
	}
	return res
}

func newRecentApplication(app application.Application) RecentApplication {
	res := RecentApplication{
		Id:       app.Id,
		FullName: app.FullName,
		JobTitle: app.JobTitle,
		Status:   string(app.Status),
		Ctime:    app.Ctime.UnixMilli(),
	}
	if score, ok := app.Score(); ok {
		res.AIScore = &score
	}
	return res
}
