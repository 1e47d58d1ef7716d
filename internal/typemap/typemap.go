// Package typemap сопоставляет семантический тип поля модели с SQL-определением колонки
// и конфигурацией виджета формы.
package typemap

import (
	"fmt"
	"sort"
	"strings"

	"autoloader/internal/tca"
)

// UnknownTypeError — для типа нет зарегистрированного обработчика.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("no type mapping registered for %q", e.Type)
}

// Type — нормализованный тип: имя обработчика и необязательный параметр
// (класс модели для ссылок, элемент для ObjectStorage<...>).
type Type struct {
	Name  string
	Param string
	Raw   string
}

// Field — контекст поля, для которого строится виджет.
type Field struct {
	Table string
	Name  string
}

// Handler описывает один зарегистрированный тип.
type Handler interface {
	SQL(t Type, m *Mapper) string
	Widget(t Type, f Field, m *Mapper) tca.Config
}

// Validator — необязательная проверка параметров: зарегистрированное имя
// ещё не значит, что запись типа осмысленна (ObjectStorage<int>, голый Model).
type Validator interface {
	Accepts(t Type) bool
}

// TableNamer возвращает имя таблицы по имени класса модели.
type TableNamer func(modelClass string) string

// Mapping — результат сопоставления.
type Mapping struct {
	SQL    string
	Widget tca.Config
}

type Mapper struct {
	handlers map[string]Handler
	tables   TableNamer
}

// New создаёт маппер со встроенными типами.
func New(tables TableNamer) *Mapper {
	m := &Mapper{handlers: map[string]Handler{}, tables: tables}
	for _, b := range builtins {
		m.Register(b.handler, b.names...)
	}
	return m
}

// Register добавляет обработчик под одним или несколькими именами (регистр не важен).
func (m *Mapper) Register(h Handler, names ...string) {
	for _, n := range names {
		m.handlers[strings.ToLower(n)] = h
	}
}

// Names — отсортированный список зарегистрированных имён.
func (m *Mapper) Names() []string {
	out := make([]string, 0, len(m.handlers))
	for n := range m.handlers {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Known сообщает, есть ли обработчик для типа.
func (m *Mapper) Known(semanticType string) bool {
	_, _, err := m.lookup(semanticType)
	return err == nil
}

// Map возвращает SQL-определение и виджет для типа.
func (m *Mapper) Map(semanticType string, f Field) (Mapping, error) {
	t, h, err := m.lookup(semanticType)
	if err != nil {
		return Mapping{}, err
	}
	return Mapping{SQL: h.SQL(t, m), Widget: h.Widget(t, f, m)}, nil
}

// DatabaseDefinition — только SQL-часть.
func (m *Mapper) DatabaseDefinition(semanticType string) (string, error) {
	t, h, err := m.lookup(semanticType)
	if err != nil {
		return "", err
	}
	return h.SQL(t, m), nil
}

// TCAConfiguration оборачивает виджет в конфигурацию колонки.
func (m *Mapper) TCAConfiguration(semanticType string, f Field, label string) (tca.Config, error) {
	t, h, err := m.lookup(semanticType)
	if err != nil {
		return nil, err
	}
	return tca.Config{
		"exclude": 1,
		"label":   label,
		"config":  h.Widget(t, f, m),
	}, nil
}

// TableOf — имя таблицы для класса модели (пусто, если namer не задан).
func (m *Mapper) TableOf(modelClass string) string {
	if m.tables == nil {
		return ""
	}
	return m.tables(modelClass)
}

func (m *Mapper) lookup(semanticType string) (Type, Handler, error) {
	t := Parse(semanticType)
	if t.Name == "" {
		return t, nil, &UnknownTypeError{Type: semanticType}
	}
	h, ok := m.handlers[strings.ToLower(t.Name)]
	if !ok {
		return t, nil, &UnknownTypeError{Type: semanticType}
	}
	if v, ok := h.(Validator); ok && !v.Accepts(t) {
		return t, nil, &UnknownTypeError{Type: semanticType}
	}
	return t, h, nil
}

// Parse нормализует запись типа из аннотации:
//
//	\DateTime                                  -> DateTime
//	\Vendor\Blog\Domain\Model\Tag              -> Model(Vendor\Blog\Domain\Model\Tag)
//	ObjectStorage<\Vendor\Blog\Domain\Model\Tag> -> ObjectStorage(Vendor\Blog\Domain\Model\Tag)
func Parse(raw string) Type {
	s := strings.TrimSpace(raw)
	t := Type{Raw: raw}

	if i := strings.IndexByte(s, '<'); i > 0 && strings.HasSuffix(s, ">") {
		t.Name = shortName(s[:i])
		t.Param = strings.TrimLeft(strings.TrimSpace(s[i+1:len(s)-1]), `\`)
		return t
	}

	s = strings.TrimLeft(s, `\`)
	short := shortName(s)
	switch {
	case short == "FileReference":
		t.Name = short
	case strings.Contains(s, `\Domain\Model\`):
		t.Name = "Model"
		t.Param = s
	default:
		t.Name = short
	}
	return t
}

func shortName(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\\'); i >= 0 {
		return s[i+1:]
	}
	return s
}
