package domain

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidResume = errors.New("简历缺少姓名")

var (
	blankRegex = regexp.MustCompile(`\s+`)
	// 文件名里面不能出现的字符
	unsafeRegex = regexp.MustCompile(`["\\/:*?<>|]`)
)

type Resume struct {
	FullName       string
	Email          string
	Phone          string
	Location       string
	LinkedinURL    string
	PortfolioURL   string
	Summary        string
	Experience     []Experience
	Education      []Education
	Skills         []string
	Certifications []string
}

type Experience struct {
	Title     string
	Company   string
	Location  string
	StartDate string
	EndDate   string
	// Current 为 true 的时候 EndDate 展示为 Present
	Current     bool
	Description string
}

func (e Experience) Period() string {
	end := e.EndDate
	if e.Current {
		end = "Present"
	}
	return e.StartDate + " - " + end
}

type Education struct {
	Degree         string
	Institution    string
	Location       string
	GraduationYear string
	GPA            string
}

func (r Resume) Validate() error {
	if strings.TrimSpace(r.FullName) == "" {
		return ErrInvalidResume
	}
	return nil
}

// CurrentRole 第一段工作经历的职位，没有的时候是 N/A
func (r Resume) CurrentRole() string {
	if len(r.Experience) == 0 || strings.TrimSpace(r.Experience[0].Title) == "" {
		return "N/A"
	}
	return r.Experience[0].Title
}

// FileName 形如 Jane_Doe_Resume.html
func (r Resume) FileName() string {
	name := unsafeRegex.ReplaceAllString(strings.TrimSpace(r.FullName), "")
	name = blankRegex.ReplaceAllString(name, "_")
	if name == "" {
		return "Resume.html"
	}
	return name + "_Resume.html"
}

// Suggestion 大模型给出的简历优化建议
type Suggestion struct {
	Summary    string
	Skills     []string
	PowerWords []string
}

// Document 渲染好的简历文件
type Document struct {
	FileName string
	Content  []byte
}
