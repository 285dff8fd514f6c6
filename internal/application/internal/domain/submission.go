package domain

import (
	"path/filepath"
	"strings"
)

// Submission 招聘页面提交的申请表单
type Submission struct {
	JobId           int64
	FullName        string
	Email           string
	Phone           string
	ExperienceYears int
	Education       string
	// 逗号分隔
	Skills       string
	CoverLetter  string
	LinkedinURL  string
	PortfolioURL string
	Resume       Resume
	// 每个表单实例一个，用来防止重复提交，为空不做限制
	FormToken string
}

// MissingField 返回第一个缺失的必填字段，都有的时候返回空字符串
func (s Submission) MissingField() string {
	switch {
	case s.JobId <= 0:
		return "job_id"
	case strings.TrimSpace(s.FullName) == "":
		return "full_name"
	case strings.TrimSpace(s.Email) == "":
		return "email"
	case strings.TrimSpace(s.Phone) == "":
		return "phone"
	case s.ExperienceYears < 0:
		return "experience_years"
	}
	return ""
}

type Resume struct {
	Name        string
	ContentType string
	Data        []byte
}

func (r Resume) Empty() bool {
	return len(r.Data) == 0
}

func (r Resume) Ext() string {
	return strings.ToLower(filepath.Ext(r.Name))
}

var ResumeExts = []string{".pdf", ".doc", ".docx"}

// Supported 只校验扩展名和大小，内容能不能解析由简历解析决定
func (r Resume) Supported(maxSize int64) bool {
	if int64(len(r.Data)) > maxSize {
		return false
	}
	ext := r.Ext()
	for _, e := range ResumeExts {
		if e == ext {
			return true
		}
	}
	return false
}
