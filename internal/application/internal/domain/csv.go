package domain

import (
	"strconv"
	"strings"
	"time"
)

var csvEscaper = strings.NewReplacer(`"`, `""`, "\r\n", " ", "\n", " ", "\r", " ")

var csvHeader = []string{
	"Name", "Email", "Phone", "Job Title", "Experience",
	"AI Score", "Status", "Applied Date",
}

// ExportCSV 每个值都用双引号包起来，值里面的双引号写两遍。
// 行之间用 \n 分隔，没有结尾的换行，值里面的换行替换成空格，保证一条记录一行
func ExportCSV(apps []Application, loc *time.Location) string {
	var sb strings.Builder
	writeCSVRow(&sb, csvHeader)
	for _, app := range apps {
		sb.WriteByte('\n')
		score := "N/A"
		if s, ok := app.Score(); ok {
			score = strconv.Itoa(s)
		}
		writeCSVRow(&sb, []string{
			app.FullName,
			app.Email,
			app.Phone,
			app.JobTitle,
			strconv.Itoa(app.ExperienceYears) + " years",
			score,
			app.Status.String(),
			app.Ctime.In(loc).Format("1/2/2006"),
		})
	}
	return sb.String()
}

func writeCSVRow(sb *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(csvEscaper.Replace(f))
		sb.WriteByte('"')
	}
}

// ExportFilename applications_2006-01-02.csv
func ExportFilename(now time.Time) string {
	return "applications_" + now.Format("2006-01-02") + ".csv"
}
