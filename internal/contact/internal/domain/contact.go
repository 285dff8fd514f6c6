package domain

import (
	"strings"
	"time"
)

type Status string

const (
	StatusNew        Status = "New"
	StatusInProgress Status = "In Progress"
	StatusResponded  Status = "Responded"
	StatusClosed     Status = "Closed"
)

var Statuses = []Status{StatusNew, StatusInProgress, StatusResponded, StatusClosed}

func (s Status) Valid() bool {
	for _, st := range Statuses {
		if st == s {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// Contact 联系我们页面提交的表单
type Contact struct {
	Id              int64
	Name            string
	Email           string
	Phone           string
	Company         string
	Subject         string
	Message         string
	ServiceInterest string
	BudgetRange     string
	Status          Status
	Ctime           time.Time
	Utime           time.Time
}

// MissingField 返回第一个缺失的必填字段
func (c Contact) MissingField() string {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return "name"
	case strings.TrimSpace(c.Email) == "":
		return "email"
	case strings.TrimSpace(c.Subject) == "":
		return "subject"
	case strings.TrimSpace(c.Message) == "":
		return "message"
	}
	return ""
}
