// ABOUTME: Report renderer turns a RunResult into a self-contained HTML page
// ABOUTME: Pure and deterministic apart from the embedded generation timestamp

package report

import (
	_ "embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"ai-news-digest/core/domain"
)

//go:embed report.gohtml
var reportTemplate string

// Renderer renders run results into HTML. Construction parses the embedded
// template once; a parse failure is a programming error.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer creates a report renderer
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"datetime": func(t time.Time) string { return t.Format("2006-01-02 15:04") },
		"inc":      func(i int) int { return i + 1 },
	}).Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse report template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// reportData is the template input derived from one RunResult.
type reportData struct {
	Date             string
	Time             string
	Articles         []domain.ArticleSummary
	ExecutiveSummary string
	ArticleCount     int
	SourceCount      int
	SourceList       string
}

// Render produces the full HTML document for one run. It handles an empty
// article list by rendering an explicit no-articles notice. Any template
// execution failure is a contract violation and is returned as fatal.
func (r *Renderer) Render(result domain.RunResult) (string, error) {
	data := reportData{
		Date:             result.GeneratedAt.Format("2006-01-02"),
		Time:             result.GeneratedAt.Format("15:04:05"),
		Articles:         result.Articles,
		ExecutiveSummary: result.ExecutiveSummary,
		ArticleCount:     len(result.Articles),
		SourceCount:      result.SourceCount(),
		SourceList:       strings.Join(result.SourcesProcessed, ", "),
	}

	var out strings.Builder
	if err := r.tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}

	return out.String(), nil
}
