// Package dataset содержит независимо отключаемые модули поведения таблицы
// (язык, права доступа, воркспейсы и т.д.): каждый добавляет свои колонки, ключи и фрагмент TCA.
package dataset

import (
	"strings"

	"autoloader/internal/tca"
)

// Имена модулей. По ним модели перечисляют исключения.
const (
	NameEnableFields = "enableFields"
	NameLanguage     = "language"
	NameWorkspaces   = "workspaces"
	NameTimestamps   = "timestamps"
	NameSoftDelete   = "softDelete"
	NameSorting      = "sorting"
)

// Module — один модуль поведения. Реализации не хранят состояния между таблицами.
type Module interface {
	Name() string
	TCA(table string) tca.Config
	SQLColumns(table string) []string
	SQLKeys() []string
}

// Options — настройки встроенных модулей со стороны хоста.
type Options struct {
	// LegacyLanguageWidget включает selectSingle со special=languages вместо type=language.
	LegacyLanguageWidget bool
}

// Registry хранит модули в порядке регистрации; этот порядок задаёт приоритет слияния
// и порядок полей в DDL.
type Registry struct {
	modules []Module
}

func NewRegistry(modules ...Module) *Registry {
	return &Registry{modules: append([]Module(nil), modules...)}
}

// Default — встроенный набор модулей.
func Default(opts Options) *Registry {
	return NewRegistry(
		EnableFields{},
		Language{Legacy: opts.LegacyLanguageWidget},
		Workspaces{},
		Timestamps{},
		SoftDelete{},
		Sorting{},
	)
}

func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.modules))
	for _, m := range r.modules {
		out = append(out, m.Name())
	}
	return out
}

// Known сообщает, зарегистрирован ли модуль с таким именем.
func (r *Registry) Known(name string) bool {
	for _, m := range r.modules {
		if m.Name() == name {
			return true
		}
	}
	return false
}

// Resolve возвращает все модули, кроме исключённых, в порядке регистрации.
func (r *Registry) Resolve(excludes []string) []Module {
	skip := make(map[string]struct{}, len(excludes))
	for _, e := range excludes {
		skip[e] = struct{}{}
	}
	out := make([]Module, 0, len(r.modules))
	for _, m := range r.modules {
		if _, ok := skip[m.Name()]; ok {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Has сообщает, есть ли модуль среди выбранных.
func Has(modules []Module, name string) bool {
	for _, m := range modules {
		if m.Name() == name {
			return true
		}
	}
	return false
}

// TCA сливает фрагменты выбранных модулей по порядку.
func TCA(modules []Module, table string) tca.Config {
	out := tca.Config{}
	for _, m := range modules {
		out = tca.Merge(out, m.TCA(table))
	}
	pruneShadowColumns(out)
	return out
}

// pruneShadowColumns оставляет в shadowColumnsForNewPlaceholders только колонки,
// которые дали выбранные модули: без language нет sys_language_uid и т.д.
func pruneShadowColumns(c tca.Config) {
	ctrl := c.Section(tca.SectionCtrl)
	shadow, ok := ctrl["shadowColumnsForNewPlaceholders"].(string)
	if !ok {
		return
	}
	columns := c.Section(tca.SectionColumns)
	var kept []string
	for _, col := range strings.Split(shadow, ",") {
		if _, ok := columns[col]; ok {
			kept = append(kept, col)
		}
	}
	ctrl["shadowColumnsForNewPlaceholders"] = strings.Join(kept, ",")
}

func SQLColumns(modules []Module, table string) []string {
	var out []string
	for _, m := range modules {
		out = append(out, m.SQLColumns(table)...)
	}
	return out
}

func SQLKeys(modules []Module) []string {
	var out []string
	for _, m := range modules {
		out = append(out, m.SQLKeys()...)
	}
	return out
}
