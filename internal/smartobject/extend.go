package smartobject

import (
	"fmt"

	"autoloader/internal/sqlgen"
	"autoloader/internal/tca"
)

// ExtendedTable собирает одну таблицу хоста, которую дополняют несколько моделей
// одного расширения. Колонки и ручные переопределения накладываются на базу хоста
// в порядке моделей: merge(base, {columns: c1}, tca1, {columns: c2}, tca2, ...).
// Одно имя поля в двух моделях — ошибка.
func (s *Service) ExtendedTable(classes ...string) (*Table, error) {
	if len(classes) == 0 {
		return nil, fmt.Errorf("extended table: no models given")
	}

	var (
		out     *Table
		trees   []tca.Config
		columns []string
		owner   = map[string]string{}
	)
	for _, class := range classes {
		m, err := s.models.Model(class)
		if err != nil {
			return nil, err
		}
		if !m.Extends() {
			return nil, fmt.Errorf("model %s does not extend a table", class)
		}
		if out == nil {
			base, err := s.hostBase(m.TableName())
			if err != nil {
				return nil, err
			}
			trees = append(trees, base)
			out = &Table{
				Class:     m.Class,
				Extension: m.ExtensionKey(),
				Name:      m.TableName(),
				Extends:   true,
			}
		} else if m.ExtensionKey() != out.Extension || m.TableName() != out.Name {
			return nil, fmt.Errorf("model %s extends %s/%s, not %s/%s", class, m.ExtensionKey(), m.TableName(), out.Extension, out.Name)
		}

		custom, err := s.CustomModelFieldTCA(class)
		if err != nil {
			return nil, err
		}
		for _, name := range custom.Order {
			if prev, dup := owner[name]; dup {
				return nil, &FieldError{Model: class, Field: name, Err: fmt.Errorf("%w (already in %s)", errDuplicateField, prev)}
			}
			owner[name] = class
		}
		sql, err := s.customDatabaseInformation(m)
		if err != nil {
			return nil, err
		}

		columns = append(columns, sql...)
		trees = append(trees, tca.Config{tca.SectionColumns: custom.Columns}, m.TCA)
		out.Classes = append(out.Classes, m.Class)
	}

	out.TCA = tca.MergeAll(trees...)
	out.SQL = sqlgen.EmitSQL(out.Name, columns)
	return out, nil
}
