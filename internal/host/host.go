// Package host отдаёт базовую конфигурацию существующих таблиц хоста,
// которые модели могут расширять своими полями.
package host

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"autoloader/internal/tca"
)

// MalformedOverrideError — конфигурация таблицы есть, но это не мапа.
type MalformedOverrideError struct {
	Table string
	Got   string
}

func (e *MalformedOverrideError) Error() string {
	return fmt.Sprintf("host configuration for table %q is %s, not a mapping", e.Table, e.Got)
}

// Store — базовые деревья таблиц хоста. (nil, nil), если таблицы нет.
type Store interface {
	Table(name string) (tca.Config, error)
}

// Tables — хранилище в памяти: имя таблицы -> произвольное значение из YAML.
type Tables map[string]any

func (t Tables) Table(name string) (tca.Config, error) {
	v, ok := t[name]
	if !ok || v == nil {
		return nil, nil
	}
	m, ok := tca.AsMap(v)
	if !ok {
		return nil, &MalformedOverrideError{Table: name, Got: fmt.Sprintf("%T", v)}
	}
	return tca.Clone(m).(tca.Config), nil
}

// LoadDir читает *.yaml/*.yml; каждый файл — мапа "таблица -> дерево конфигурации".
// Поздние файлы перекрывают таблицы из ранних.
func LoadDir(root string) (Tables, error) {
	out := Tables{}
	if strings.TrimSpace(root) == "" {
		return out, nil
	}
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return out, nil
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		ext := strings.ToLower(filepath.Ext(d.Name()))
		if d.IsDir() || (ext != ".yaml" && ext != ".yml") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var tables map[string]any
		if err := yaml.Unmarshal(data, &tables); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		for name, v := range tables {
			out[name] = v
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
