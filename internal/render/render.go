// Package render turns a CV document into standalone HTML ready for PDF
// encoding. Two interchangeable templates exist; both omit a section
// entirely when its backing data is empty.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"cv-builder/internal/model"
)

// Template names the layout used for export.
type Template string

const (
	// TemplateClassic is the full layout with achievement and highlight
	// bullet lists.
	TemplateClassic Template = "classic"
	// TemplateSimple is the compact layout without bullet lists.
	TemplateSimple Template = "simple"
)

//go:embed templates/*.html
var templatesFS embed.FS

var tpls = template.Must(template.New("").Funcs(template.FuncMap{
	"period":  period,
	"eduDate": educationDate,
}).ParseFS(templatesFS, "templates/*.html"))

// period formats an experience date range, rendering "Presente" while the
// role is ongoing.
func period(e model.Experience) string {
	if e.IsCurrent || e.EndDate == "" {
		return e.StartDate + " - Presente"
	}
	return e.StartDate + " - " + e.EndDate
}

func educationDate(e model.Education) string {
	if e.IsExpected {
		if e.CompletionDate != "" {
			return e.CompletionDate + " (esperado)"
		}
		return "En curso"
	}
	return e.CompletionDate
}

// HTML renders the document through the named template.
func HTML(doc model.CVDocument, tpl Template) (string, error) {
	name := string(tpl) + ".html"
	if tpls.Lookup(name) == nil {
		return "", fmt.Errorf("unknown template %q", tpl)
	}
	var buf bytes.Buffer
	if err := tpls.ExecuteTemplate(&buf, name, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Filename is the download name offered for the generated PDF.
func Filename(doc model.CVDocument) string {
	name := strings.TrimSpace(doc.PersonalInfo.FullName)
	if name == "" {
		name = "CV"
	}
	return name + ".pdf"
}
