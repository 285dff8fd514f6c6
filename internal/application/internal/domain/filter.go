package domain

import "strings"

const All = "all"

type ScoreBucket string

const (
	ScoreAll    ScoreBucket = All
	ScoreHigh   ScoreBucket = "high"
	ScoreMedium ScoreBucket = "medium"
	ScoreLow    ScoreBucket = "low"
)

const (
	HighScoreThreshold   = 70
	MediumScoreThreshold = 40
)

func (b ScoreBucket) Valid() bool {
	switch b {
	case "", ScoreAll, ScoreHigh, ScoreMedium, ScoreLow:
		return true
	}
	return false
}

// Range 分数区间 [min, max)，max 为 0 表示没有上限
func (b ScoreBucket) Range() (min int, max int, ok bool) {
	switch b {
	case ScoreHigh:
		return HighScoreThreshold, 0, true
	case ScoreMedium:
		return MediumScoreThreshold, HighScoreThreshold, true
	case ScoreLow:
		return 0, MediumScoreThreshold, true
	}
	return 0, 0, false
}

func (b ScoreBucket) Contains(score int) bool {
	min, max, ok := b.Range()
	if !ok {
		return true
	}
	if b == ScoreLow {
		return score < max
	}
	return score >= min && (max == 0 || score < max)
}

// Filter 管理后台的筛选条件，三个条件之间是 AND 的关系。
// Status 和 Score 为空或者 all 表示不过滤
type Filter struct {
	// 姓名、邮箱、职位标题，不区分大小写的子串匹配
	Search string
	Status string
	Score  ScoreBucket
}

func (f Filter) Normalize() Filter {
	f.Search = strings.TrimSpace(f.Search)
	if f.Status == "" {
		f.Status = All
	}
	if f.Score == "" {
		f.Score = ScoreAll
	}
	return f
}

func (f Filter) Valid() bool {
	f = f.Normalize()
	return (f.Status == All || Status(f.Status).Valid()) && f.Score.Valid()
}

func (f Filter) Match(app Application) bool {
	return f.MatchSearch(app) && f.MatchStatus(app) && f.MatchScore(app)
}

func (f Filter) MatchSearch(app Application) bool {
	kw := strings.ToLower(strings.TrimSpace(f.Search))
	if kw == "" {
		return true
	}
	return strings.Contains(strings.ToLower(app.FullName), kw) ||
		strings.Contains(strings.ToLower(app.Email), kw) ||
		strings.Contains(strings.ToLower(app.JobTitle), kw)
}

func (f Filter) MatchStatus(app Application) bool {
	return f.Status == "" || f.Status == All || Status(f.Status) == app.Status
}

// MatchScore 没有评分的申请只会出现在 all 里面
func (f Filter) MatchScore(app Application) bool {
	if f.Score == "" || f.Score == ScoreAll {
		return true
	}
	score, ok := app.Score()
	if !ok {
		return false
	}
	return f.Score.Contains(score)
}

// FilterApplications 保持原本的顺序
func FilterApplications(apps []Application, f Filter) []Application {
	res := make([]Application, 0, len(apps))
	for _, app := range apps {
		if f.Match(app) {
			res = append(res, app)
		}
	}
	return res
}
