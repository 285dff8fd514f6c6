package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// WebhookURL 企业微信群机器人地址，为空表示不发送
	WebhookURL string `yaml:"webhookURL"`
	// ScoreThreshold AI 评分达到这个值就短信通知
	ScoreThreshold int      `yaml:"scoreThreshold"`
	Phones         []string `yaml:"phones"`
	SMSTemplateID  string   `yaml:"smsTemplateID"`
}

func DefaultConfig() Config {
	return Config{ScoreThreshold: 80}
}

// SMSEnabled 没有手机号或者模板就不发短信
func (c Config) SMSEnabled() bool {
	return len(c.Phones) > 0 && c.SMSTemplateID != ""
}

// NewApplication 新提交的申请
type NewApplication struct {
	ApplicationId int64
	JobTitle      string
	FullName      string
	Email         string
	Phone         string
	Score         *int
	Summary       string
	Ctime         time.Time
}

// HighScore 没有评分的申请不算
func (a NewApplication) HighScore(threshold int) bool {
	return a.Score != nil && *a.Score >= threshold
}

func (a NewApplication) scoreText() string {
	if a.Score == nil {
		return "N/A"
	}
	return strconv.Itoa(*a.Score)
}

// Markdown 群机器人的 markdown 消息内容
func (a NewApplication) Markdown() string {
	var sb strings.Builder
	sb.WriteString("### New application received\n")
	fmt.Fprintf(&sb, "> Position: <font color=\"info\">%s</font>\n", a.JobTitle)
	fmt.Fprintf(&sb, "> Candidate: %s\n", a.FullName)
	fmt.Fprintf(&sb, "> Email: %s\n", a.Email)
	if a.Phone != "" {
		fmt.Fprintf(&sb, "> Phone: %s\n", a.Phone)
	}
	fmt.Fprintf(&sb, "> AI Score: <font color=\"warning\">%s</font>\n", a.scoreText())
	if a.Summary != "" {
		fmt.Fprintf(&sb, "> Summary: %s\n", a.Summary)
	}
	fmt.Fprintf(&sb, "> Applied: %s\n", a.Ctime.Format("2006-01-02 15:04"))
	fmt.Fprintf(&sb, "> Application ID: %d", a.ApplicationId)
	return sb.String()
}

func (a NewApplication) SMSParams() map[string]string {
	return map[string]string{
		"name":  a.FullName,
		"job":   a.JobTitle,
		"score": a.scoreText(),
	}
}
