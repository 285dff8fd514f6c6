package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mastersolis/internal/resume/internal/domain"
)

type Resume struct {
	FullName       string       `json:"full_name"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	Location       string       `json:"location"`
	Linkedin       string       `json:"linkedin"`
	Portfolio      string       `json:"portfolio"`
	Summary        string       `json:"summary"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Skills         []string     `json:"skills"`
	Certifications []string     `json:"certifications"`
}

func (r Resume) toDomain() domain.Resume {
	return domain.Resume{
		FullName:     r.FullName,
		Email:        r.Email,
		Phone:        r.Phone,
		Location:     r.Location,
		LinkedinURL:  r.Linkedin,
		PortfolioURL: r.Portfolio,
		Summary:      r.Summary,
		Experience: slice.Map(r.Experience, func(idx int, src Experience) domain.Experience {
			return domain.Experience(src)
		}),
		Education: slice.Map(r.Education, func(idx int, src Education) domain.Education {
			return domain.Education(src)
		}),
		Skills:         r.Skills,
		Certifications: r.Certifications,
	}
}

type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type Education struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	Location       string `json:"location"`
	GraduationYear string `json:"graduation_year"`
	GPA            string `json:"gpa"`
}

type Suggestion struct {
	Summary    string   `json:"summary"`
	Skills     []string `json:"skills"`
	PowerWords []string `json:"power_words"`
}
