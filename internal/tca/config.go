// Package tca описывает дерево конфигурации таблицы (ctrl/columns/types/palettes),
// его слияние и сериализацию.
package tca

import (
	"fmt"
	"sort"
)

// Имена секций верхнего уровня, которые ожидает хост.
const (
	SectionCtrl     = "ctrl"
	SectionColumns  = "columns"
	SectionTypes    = "types"
	SectionPalettes = "palettes"
)

// Config — узел дерева. Листья: string, bool, числа, nil; списки: []any; узлы: Config.
type Config map[string]any

// AsMap принимает и Config, и map[string]any (так приходят данные из YAML/JSON).
func AsMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case Config:
		return m, true
	case map[string]any:
		return m, true
	case map[any]any:
		// yaml.v3 отдаёт такие мапы, если среди ключей есть не строки (types: {1: ...})
		out := make(map[string]any, len(m))
		for k, vv := range m {
			out[fmt.Sprint(k)] = vv
		}
		return out, true
	}
	return nil, false
}

// Clone делает глубокую копию значения, приводя все мапы к Config.
func Clone(v any) any {
	if m, ok := AsMap(v); ok {
		out := make(Config, len(m))
		for k, vv := range m {
			out[k] = Clone(vv)
		}
		return out
	}
	switch s := v.(type) {
	case []any:
		out := make([]any, len(s))
		for i, vv := range s {
			out[i] = Clone(vv)
		}
		return out
	case []string:
		return append([]string(nil), s...)
	}
	return v
}

// Merge рекурсивно накладывает overlay на base и возвращает новое дерево.
// Мапы сливаются по ключам, скаляры и списки заменяются значением overlay.
// Аргументы не мутируются.
func Merge(base, overlay Config) Config {
	out := make(Config, len(base)+len(overlay))
	for k, v := range base {
		out[k] = Clone(v)
	}
	for k, ov := range overlay {
		if om, ok := AsMap(ov); ok {
			if bm, ok := AsMap(out[k]); ok {
				out[k] = Merge(bm, om)
				continue
			}
		}
		out[k] = Clone(ov)
	}
	return out
}

// MergeAll сливает деревья слева направо: каждое следующее перекрывает предыдущие.
func MergeAll(trees ...Config) Config {
	out := Config{}
	for _, t := range trees {
		out = Merge(out, t)
	}
	return out
}

// Lookup идёт по пути ключей; ok=false, если какой-то узел отсутствует или не мапа.
func (c Config) Lookup(path ...string) (any, bool) {
	var cur any = c
	for _, p := range path {
		m, ok := AsMap(cur)
		if !ok {
			return nil, false
		}
		cur, ok = m[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// String возвращает строковый лист по пути или "".
func (c Config) String(path ...string) string {
	v, ok := c.Lookup(path...)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Section возвращает дочерний узел; nil, если его нет.
func (c Config) Section(name string) Config {
	if m, ok := AsMap(c[name]); ok {
		return Config(m)
	}
	return nil
}

// Keys — ключи в каноническом порядке: сначала секции хоста, затем остальные по алфавиту.
func Keys(m map[string]any) []string {
	rank := map[string]int{SectionCtrl: 0, SectionColumns: 1, SectionTypes: 2, SectionPalettes: 3}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, iok := rank[keys[i]]
		rj, jok := rank[keys[j]]
		switch {
		case iok && jok:
			return ri < rj
		case iok:
			return true
		case jok:
			return false
		}
		return keys[i] < keys[j]
	})
	return keys
}
