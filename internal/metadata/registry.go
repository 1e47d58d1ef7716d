// Package metadata — статически зарегистрированные метаданные моделей (вместо рефлексии):
// загрузка из YAML, имена таблиц и проверка.
package metadata

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrModelNotFound = errors.New("model not found")

// Provider — узкий интерфейс, через который генератор читает метаданные.
type Provider interface {
	Model(class string) (*Model, error)
	ListFields(class string) ([]Field, error)
	TableOverride(class string) (string, error)
	ExcludedBehaviors(class string) ([]string, error)
	DeclaredKey(class string) (string, error)
}

// Registry хранит модели в порядке регистрации.
type Registry struct {
	models  []*Model
	byClass map[string]*Model
	byTable map[string]*Model
}

func NewRegistry() *Registry {
	return &Registry{byClass: map[string]*Model{}, byTable: map[string]*Model{}}
}

// Register добавляет модель. Класс и таблица (для полноценных таблиц) должны быть уникальны.
func (r *Registry) Register(m Model) error {
	m.Class = strings.Trim(strings.TrimSpace(m.Class), `\`)
	if m.Class == "" {
		return errors.New("model without class")
	}
	if _, exists := r.byClass[m.Class]; exists {
		return fmt.Errorf("duplicate model %q", m.Class)
	}
	mm := &m
	table := mm.TableName()
	if prev, exists := r.byTable[table]; exists && !mm.Extends() && !prev.Extends() {
		return fmt.Errorf("model %q: table %q already generated by %q", m.Class, table, prev.Class)
	}
	r.models = append(r.models, mm)
	r.byClass[m.Class] = mm
	if _, exists := r.byTable[table]; !exists {
		r.byTable[table] = mm
	}
	return nil
}

// Models — все модели в порядке регистрации.
func (r *Registry) Models() []*Model { return append([]*Model(nil), r.models...) }

func (r *Registry) Len() int { return len(r.models) }

func (r *Registry) Model(class string) (*Model, error) {
	m, ok := r.byClass[strings.Trim(strings.TrimSpace(class), `\`)]
	if !ok {
		return nil, fmt.Errorf("%s: %w", class, ErrModelNotFound)
	}
	return m, nil
}

// ByTable ищет модель по имени таблицы: сначала точное совпадение, затем
// без учёта регистра — первая по порядку регистрации.
func (r *Registry) ByTable(table string) (*Model, bool) {
	if m, ok := r.byTable[table]; ok {
		return m, true
	}
	for _, m := range r.models {
		if strings.EqualFold(m.TableName(), table) {
			return m, true
		}
	}
	return nil, false
}

func (r *Registry) ListFields(class string) ([]Field, error) {
	m, err := r.Model(class)
	if err != nil {
		return nil, err
	}
	return append([]Field(nil), m.Fields...), nil
}

func (r *Registry) TableOverride(class string) (string, error) {
	m, err := r.Model(class)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(m.Table), nil
}

func (r *Registry) ExcludedBehaviors(class string) ([]string, error) {
	m, err := r.Model(class)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), m.Excludes...), nil
}

func (r *Registry) DeclaredKey(class string) (string, error) {
	m, err := r.Model(class)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(m.Key), nil
}

// LoadFile читает один YAML-файл с моделями в реестр.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	for _, m := range f.Models {
		if err := r.Register(m); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

// LoadDir обходит каталог и загружает все *.yaml / *.yml в лексикографическом порядке путей.
func LoadDir(root string) (*Registry, error) {
	r := NewRegistry()
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(d.Name()))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		return r.LoadFile(path)
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}
