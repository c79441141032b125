package reporter

import (
	"html/template"
	"strings"

	"github.com/2m24/Compare/internal/models"
)

// templateFunctions returns the function map used by the report template
func templateFunctions() template.FuncMap {
	return template.FuncMap{
		"statusClass": statusClass,
		"joinNotes":   joinNotes,
	}
}

// statusClass maps a line status to its CSS class
func statusClass(status models.LineStatus) string {
	switch status {
	case models.LineAdded:
		return "status-added"
	case models.LineRemoved:
		return "status-removed"
	case models.LineModified:
		return "status-modified"
	default:
		return "status-unchanged"
	}
}

// joinNotes renders format-change notes as one display string
func joinNotes(notes []string) string {
	return strings.Join(notes, ", ")
}
