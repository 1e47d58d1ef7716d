package metadata

import (
	"fmt"
	"strings"
)

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue — проблема в метаданных. Ошибки блокируют генерацию, предупреждения нет.
type Issue struct {
	Model    string `json:"model"`
	Field    string `json:"field,omitempty"`
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Blocking отбирает только ошибки.
func Blocking(issues []Issue) []Issue {
	var out []Issue
	for _, i := range issues {
		if i.Severity != SeverityWarning {
			out = append(out, i)
		}
	}
	return out
}

func (i Issue) String() string {
	if i.Field == "" {
		return fmt.Sprintf("%s: %s", i.Model, i.Message)
	}
	return fmt.Sprintf("%s.%s: %s", i.Model, i.Field, i.Message)
}

// Checker отвечает на вопросы о типах и модулях, известных генератору.
type Checker interface {
	KnownType(semanticType string) bool
	KnownBehavior(name string) bool
}

// Lint проверяет реестр до генерации.
func Lint(r *Registry, c Checker) []Issue {
	var issues []Issue
	for _, m := range r.models {
		if ExplodeModelName(m.Class).Extension == "" {
			issues = append(issues, Issue{
				Model:    m.Class,
				Code:     "extension_unknown",
				Severity: SeverityError,
				Message:  "cannot derive extension from class name (expected Ext\\Model or Vendor\\Ext\\Domain\\Model\\Model)",
			})
		}
		if len(m.Fields) == 0 && !m.Extends() {
			issues = append(issues, Issue{
				Model:    m.Class,
				Code:     "no_fields",
				Severity: SeverityError,
				Message:  "model declares no fields",
			})
		}

		seen := map[string]struct{}{}
		for _, f := range m.Fields {
			name := strings.TrimSpace(f.Name)
			if name == "" {
				issues = append(issues, Issue{Model: m.Class, Code: "field_name_empty", Severity: SeverityError, Message: "field without name"})
				continue
			}
			if _, dup := seen[name]; dup {
				issues = append(issues, Issue{
					Model: m.Class, Field: name, Code: "field_duplicate", Severity: SeverityError,
					Message: "field declared more than once",
				})
			}
			seen[name] = struct{}{}

			if !c.KnownType(f.Var) {
				issues = append(issues, Issue{
					Model: m.Class, Field: name, Code: "type_unknown", Severity: SeverityError,
					Message: fmt.Sprintf("no type mapping for %q", f.Var),
				})
			}
			if f.DB != "" && !c.KnownType(f.DB) && !looksLikeSQL(f.DB) {
				issues = append(issues, Issue{
					Model: m.Class, Field: name, Code: "db_suspicious", Severity: SeverityWarning,
					Message: fmt.Sprintf("db override %q is neither a known type nor a column definition", f.DB),
				})
			}
		}

		for _, ex := range m.Excludes {
			if !c.KnownBehavior(ex) {
				issues = append(issues, Issue{
					Model: m.Class, Code: "exclude_unknown", Severity: SeverityError,
					Message: fmt.Sprintf("excluded behavior %q is not registered", ex),
				})
			}
		}
	}
	return issues
}

// looksLikeSQL — грубая эвристика: в определении колонки есть скобки или пробел.
func looksLikeSQL(s string) bool {
	return strings.ContainsAny(strings.TrimSpace(s), " (")
}
