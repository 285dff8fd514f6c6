package domain

import (
	"github.com/ecodeclub/mastersolis/internal/application"
	"github.com/ecodeclub/mastersolis/internal/contact"
)

// RecentSize 最近的申请和留言各展示几条
const RecentSize = 5

type Stats struct {
	Jobs            int64
	ActiveJobs      int64
	Applications    int64
	NewApplications int64
	BlogPosts       int64
	PublishedPosts  int64
	Contacts        int64
	NewContacts     int64
	Projects        int64
	Services        int64
	Testimonials    int64
	CaseStudies     int64
}

type Overview struct {
	Stats              Stats
	RecentApplications []application.Application
	RecentContacts     []contact.Contact
}
