package typemap

import (
	"autoloader/internal/tca"
)

// static — тип с фиксированным SQL и фабрикой виджета.
type static struct {
	sql    string
	widget func(t Type, f Field, m *Mapper) tca.Config
}

func (s static) SQL(Type, *Mapper) string { return s.sql }

func (s static) Widget(t Type, f Field, m *Mapper) tca.Config { return s.widget(t, f, m) }

func fixed(c tca.Config) func(Type, Field, *Mapper) tca.Config {
	return func(Type, Field, *Mapper) tca.Config { return tca.Clone(c).(tca.Config) }
}

const (
	sqlVarchar  = "varchar(255) DEFAULT '' NOT NULL"
	sqlText     = "text"
	sqlInt      = "int(11) DEFAULT '0' NOT NULL"
	sqlUnsigned = "int(11) unsigned DEFAULT '0' NOT NULL"
	sqlDouble   = "double(11,2) DEFAULT '0.00' NOT NULL"
	sqlTinyint  = "tinyint(4) unsigned DEFAULT '0' NOT NULL"
)

var builtins = []struct {
	names   []string
	handler Handler
}{
	{[]string{"string"}, static{sqlVarchar, fixed(tca.Config{"type": "input", "size": 30, "eval": "trim"})}},
	{[]string{"text"}, static{sqlText, fixed(tca.Config{"type": "text", "cols": 40, "rows": 15})}},
	{[]string{"int", "integer"}, static{sqlInt, fixed(tca.Config{"type": "input", "size": 10, "eval": "int"})}},
	{[]string{"float", "double"}, static{sqlDouble, fixed(tca.Config{"type": "input", "size": 10, "eval": "double2"})}},
	{[]string{"bool", "boolean"}, static{sqlTinyint, fixed(tca.Config{"type": "check", "default": 0})}},
	{[]string{"DateTime", "DateTimeImmutable", "DateTimeInterface"}, static{sqlInt, fixed(tca.Config{
		"type":       "input",
		"renderType": "inputDateTime",
		"eval":       "datetime",
		"default":    0,
	})}},
	{[]string{"FileReference"}, static{sqlUnsigned, func(_ Type, f Field, _ *Mapper) tca.Config {
		return fileWidget(f, 1)
	}}},
	{[]string{"Model"}, model{}},
	{[]string{"ObjectStorage"}, objectStorage{}},
}

// model — ссылка на одну запись другой модели. Имя "Model" без класса не принимается.
type model struct{}

func (model) Accepts(t Type) bool { return shortName(t.Param) != "" }

func (model) SQL(Type, *Mapper) string { return sqlUnsigned }

func (model) Widget(t Type, _ Field, m *Mapper) tca.Config {
	return tca.Config{
		"type":          "select",
		"renderType":    "selectSingle",
		"foreign_table": m.TableOf(t.Param),
		"items":         []any{[]any{"", 0}},
		"minitems":      0,
		"maxitems":      1,
		"default":       0,
	}
}

// objectStorage: ObjectStorage<FileReference> — файлы, ObjectStorage<Model> — множественный выбор.
type objectStorage struct{}

// Accepts: элементом может быть только FileReference или класс модели.
func (objectStorage) Accepts(t Type) bool {
	inner := Parse(t.Param)
	switch inner.Name {
	case "FileReference":
		return true
	case "Model":
		return model{}.Accepts(inner)
	}
	return false
}

func (objectStorage) SQL(t Type, _ *Mapper) string {
	if Parse(t.Param).Name == "FileReference" {
		return sqlUnsigned
	}
	return sqlVarchar
}

func (objectStorage) Widget(t Type, f Field, m *Mapper) tca.Config {
	inner := Parse(t.Param)
	if inner.Name == "FileReference" {
		return fileWidget(f, 99)
	}
	return tca.Config{
		"type":          "select",
		"renderType":    "selectMultipleSideBySide",
		"foreign_table": m.TableOf(t.Param),
		"size":          5,
		"minitems":      0,
		"maxitems":      99,
	}
}

func fileWidget(f Field, maxItems int) tca.Config {
	return tca.Config{
		"type":                "inline",
		"foreign_table":       "sys_file_reference",
		"foreign_field":       "uid_foreign",
		"foreign_sortby":      "sorting_foreign",
		"foreign_table_field": "tablenames",
		"foreign_label":       "uid_local",
		"foreign_selector":    "uid_local",
		"foreign_match_fields": tca.Config{
			"fieldname": f.Name,
		},
		"minitems": 0,
		"maxitems": maxItems,
	}
}
