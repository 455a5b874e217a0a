package httpapi

import (
	"database/sql"
	"embed"
	"html/template"
	"net/http"

	"facility-monitor/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"zoneTypeLabel": func(t int) string { return domain.ZoneTypeLabels[t] },
	"docTypeLabel":  func(t int) string { return domain.DocumentTypeLabels[t] },
	"relLabel":      func(rel int) string { return domain.RelationshipLabels[rel] },
	"isoDate": func(t sql.NullTime) string {
		if !t.Valid {
			return ""
		}
		return t.Time.Format("2006-01-02")
	},
}).ParseFS(templateFS, "templates/*.html"))

// Option is a code/label pair for select inputs.
type Option struct {
	Code  int
	Label string
}

// zoneTypeOptions in form order (codes 1..7).
func zoneTypeOptions() []Option {
	out := make([]Option, 0, len(domain.ZoneTypeLabels))
	for code := domain.ZoneTypeBuilding; code <= domain.ZoneTypeGeneric; code++ {
		out = append(out, Option{Code: code, Label: domain.ZoneTypeLabels[code]})
	}
	return out
}

// relationshipOptions in form order (codes 1..8).
func relationshipOptions() []Option {
	out := make([]Option, 0, len(domain.RelationshipLabels))
	for code := domain.RelationshipOther; code <= domain.RelationshipFamily; code++ {
		out = append(out, Option{Code: code, Label: domain.RelationshipLabels[code]})
	}
	return out
}

func render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = templates.ExecuteTemplate(w, name, data)
}
