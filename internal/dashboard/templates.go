package dashboard

import (
	"embed"
	"html/template"
	"time"

	"github.com/dustin/go-humanize"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the page templates for gin's SetHTMLTemplate.
func Templates() (*template.Template, error) {
	return template.New("dashboard").
		Funcs(template.FuncMap{
			"commas":     commas,
			"closedDate": closedDate,
		}).
		ParseFS(templateFS, "templates/*.html")
}

// commas renders 1234567 as "1,234,567".
func commas(n int) string {
	return humanize.Comma(int64(n))
}

func closedDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
