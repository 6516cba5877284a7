package reports

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/url"
	"os"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// analysisTemplate renders a single-resume report as printable HTML.
var analysisTemplate = template.Must(template.New("analysis").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 40px; color: #222; }
h1 { border-bottom: 2px solid #444; padding-bottom: 8px; }
h2 { color: #444; margin-top: 28px; }
table { border-collapse: collapse; width: 100%; }
td, th { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
.score { font-size: 28px; font-weight: bold; }
ul { margin: 6px 0; }
</style>
</head>
<body>
<h1>Resume Analysis: {{.Source}}</h1>
<p>Generated {{.GeneratedAt.Format "2006-01-02 15:04 UTC"}}</p>

{{with .ATSScore}}
<h2>ATS Score</h2>
<p class="score">{{printf "%.1f" .FinalScore}} / 100 ({{.Grade}})</p>
<p>{{.Status}}</p>
<table>
<tr><th>Keywords</th><th>Skills</th><th>Experience</th><th>Semantic</th><th>Format</th></tr>
<tr>
<td>{{printf "%.1f" .Breakdown.KeywordScore}}</td>
<td>{{printf "%.1f" .Breakdown.SkillsScore}}</td>
<td>{{printf "%.1f" .Breakdown.ExperienceScore}}</td>
<td>{{printf "%.1f" .Breakdown.SemanticScore}}</td>
<td>{{printf "%.1f" .Breakdown.FormatScore}}</td>
</tr>
</table>
{{end}}

{{with .ResumeAnalysis}}
<h2>Contact</h2>
<table>
<tr><td>Name</td><td>{{.Contact.Name}}</td></tr>
<tr><td>Email</td><td>{{.Contact.Email}}</td></tr>
<tr><td>Phone</td><td>{{.Contact.Phone}}</td></tr>
<tr><td>Location</td><td>{{.Contact.Location}}</td></tr>
</table>

<h2>Skills ({{.Skills.TotalCount}})</h2>
<p>Technical: {{range $i, $s := .Skills.TechnicalSkills}}{{if $i}}, {{end}}{{$s}}{{end}}</p>
<p>Soft: {{range $i, $s := .Skills.SoftSkills}}{{if $i}}, {{end}}{{$s}}{{end}}</p>

<h2>Experience ({{printf "%.1f" .Summary.TotalExperienceYears}} years)</h2>
{{range .Experience}}
<p><strong>{{.Role}}</strong> at {{.Company}} ({{.StartDate}} to {{.EndDate}})</p>
{{end}}

<h2>Education ({{.Summary.EducationLevel}})</h2>
{{range .Education}}
<p>{{.Degree}}{{with .Field}} in {{.}}{{end}} - {{.Institution}}{{with .Year}}, {{.}}{{end}}</p>
{{end}}
{{end}}

{{with .Feedback}}
<h2>Feedback ({{.OverallRating}})</h2>
{{with .CriticalIssues}}<h3>Critical Issues</h3><ul>{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{with .Improvements}}<h3>Improvements</h3><ul>{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{with .Suggestions}}<h3>Suggestions</h3><ul>{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{with .MissingKeywords}}<h3>Missing Keywords</h3><ul>{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{with .StrongPoints}}<h3>Strengths</h3><ul>{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{end}}
</body>
</html>`))

// RenderAnalysisHTML produces the printable HTML used by the PDF writer.
func RenderAnalysisHTML(report *types.AnalysisReport) ([]byte, error) {
	var buf bytes.Buffer
	if err := analysisTemplate.Execute(&buf, report); err != nil {
		return nil, fmt.Errorf("rendering report html: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteAnalysisPDF renders the report to HTML and prints it to PDF with a
// headless browser. It needs Chrome or Chromium on the host.
func WriteAnalysisPDF(ctx context.Context, report *types.AnalysisReport, path string) error {
	html, err := RenderAnalysisHTML(report)
	if err != nil {
		return err
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	dataURL := "data:text/html;charset=utf-8," + url.PathEscape(string(html))

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdf, _, printErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return fmt.Errorf("printing report to pdf: %w", err)
	}

	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return fmt.Errorf("writing pdf report: %w", err)
	}
	return nil
}
