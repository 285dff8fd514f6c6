// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

import "time"

type Application struct {
	Id int64
	// 弱引用，职位删除之后申请记录依旧保留
	JobId int64
	// 申请时职位的标题
	JobTitle        string
	FullName        string
	Email           string
	Phone           string
	LinkedinURL     string
	PortfolioURL    string
	ExperienceYears int
	Education       string
	CoverLetter     string
	Skills          []string
	ResumeURL       string
	// 简历解析失败的时候为 nil
	ExtractedData *ExtractedData
	// 评分和总结要么同时存在，要么同时不存在
	Assessment *AIAssessment
	Status     Status
	Ctime      time.Time
	Utime      time.Time
}

// Score 没有评分的时候 ok 为 false
func (a Application) Score() (int, bool) {
	if a.Assessment == nil {
		return 0, false
	}
	return a.Assessment.Score, true
}

type ExtractedData struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Skills         []string `json:"skills"`
	Experience     string   `json:"experience"`
	Education      string   `json:"education"`
	Certifications []string `json:"certifications"`
}

// AIAssessment 大模型给出的匹配度评分和总结
type AIAssessment struct {
	// [0, 100]
	Score   int
	Summary string
}
