package httpapi

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

func urlQueryEscape(s string) string {
	return url.QueryEscape(s)
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

// formBool reads an HTML checkbox: present (any value) means true.
func formBool(r *http.Request, field string) bool {
	_, ok := r.Form[field]
	return ok
}

// pathID extracts the trailing {id} segment of a prefix route like
// /panel/zonas/editar/{id}/. Returns "" when the segment is missing or
// the path has extra segments.
func pathID(path, prefix string) string {
	rest := strings.TrimPrefix(path, prefix)
	rest = strings.Trim(rest, "/")
	if rest == "" || strings.Contains(rest, "/") {
		return ""
	}
	return rest
}

// parseDocumentType accepts both the symbolic form values ("dni",
// "pasaporte") and raw numeric codes.
func parseDocumentType(v string) int {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "dni", "1":
		return 1
	case "pasaporte", "passport", "2":
		return 2
	}
	return 2
}
