package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewApplication_Markdown(t *testing.T) {
	score := 85
	app := NewApplication{
		ApplicationId: 12,
		JobTitle:      "Go Engineer",
		FullName:      "Jane Doe",
		Email:         "jane@example.com",
		Score:         &score,
		Summary:       "Strong backend experience",
		Ctime:         time.Date(2024, 3, 1, 9, 30, 0, 0, time.Local),
	}
	content := app.Markdown()
	assert.Contains(t, content, "Go Engineer")
	assert.Contains(t, content, "> AI Score: <font color=\"warning\">85</font>")
	assert.Contains(t, content, "> Summary: Strong backend experience")
	assert.Contains(t, content, "> Applied: 2024-03-01 09:30")
	assert.NotContains(t, content, "Phone")

	app.Score = nil
	app.Summary = ""
	content = app.Markdown()
	assert.Contains(t, content, "N/A")
	assert.NotContains(t, content, "Summary")
}

func TestNewApplication_HighScore(t *testing.T) {
	low, high := 79, 80
	assert.False(t, NewApplication{}.HighScore(80))
	assert.False(t, NewApplication{Score: &low}.HighScore(80))
	assert.True(t, NewApplication{Score: &high}.HighScore(80))
}

func TestConfig_SMSEnabled(t *testing.T) {
	assert.False(t, Config{}.SMSEnabled())
	assert.False(t, Config{Phones: []string{"13800000000"}}.SMSEnabled())
	assert.True(t, Config{Phones: []string{"13800000000"}, SMSTemplateID: "SMS_1"}.SMSEnabled())
}
