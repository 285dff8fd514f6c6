package domain

// ResumeData 从简历里面抽取出来的结构化数据
type ResumeData struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Skills         []string `json:"skills"`
	Experience     string   `json:"experience"`
	Education      string   `json:"education"`
	Certifications []string `json:"certifications"`
}

type ResumeFile struct {
	Name string
	Data []byte
}
