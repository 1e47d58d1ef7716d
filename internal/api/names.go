// api/names.go
package api

import (
	"strings"

	"autoloader/internal/generate"
	"autoloader/internal/smartobject"
)

// lookupTable ищет таблицу в текущей сборке без учёта регистра; extension сужает
// поиск, когда одну таблицу хоста дополняют несколько расширений.
// Если таблица не собралась, возвращается её ошибка.
func lookupTable(res *generate.Result, extension, name string) (*smartobject.Table, *generate.Failure) {
	if name == "" {
		return nil, nil
	}
	if extension != "" {
		if t, ok := res.TableIn(extension, name); ok {
			return t, nil
		}
		for _, f := range res.Failures {
			if strings.EqualFold(f.Table, name) && strings.EqualFold(f.Extension, extension) {
				return nil, &f
			}
		}
		return nil, nil
	}
	if t, ok := res.Table(name); ok {
		return t, nil
	}
	if f, ok := res.Failure(name); ok {
		return nil, &f
	}
	return nil, nil
}
