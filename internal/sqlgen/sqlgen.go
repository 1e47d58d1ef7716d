// Package sqlgen собирает фрагменты CREATE TABLE для мигратора хоста.
package sqlgen

import (
	"strings"
)

// Column — определение пользовательской колонки с экранированным именем.
func Column(name, definition string) string {
	return "`" + strings.ReplaceAll(name, "`", "") + "` " + strings.TrimSpace(definition)
}

// Key — определение дополнительного ключа из объявления модели: "slug (slug)" -> "KEY slug (slug)".
func Key(declared string) string {
	declared = strings.TrimSpace(declared)
	if declared == "" {
		return ""
	}
	return "KEY " + declared
}

// EmitSQL возвращает CREATE TABLE со всеми определениями через запятую.
// Пустой список — пустая строка: создавать нечего, а "CREATE TABLE x ();" недопустим.
func EmitSQL(table string, fields []string) string {
	if len(fields) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\nCREATE TABLE ")
	b.WriteString(table)
	b.WriteString(" (\n")
	b.WriteString(strings.Join(fields, ",\n"))
	b.WriteString("\n);\n")
	return b.String()
}

// EmitFullSQL — полная таблица: колонки (пользовательские, затем модулей),
// ключ из объявления модели, затем ключи модулей.
func EmitFullSQL(table string, columns []string, declaredKey string, moduleKeys []string) string {
	fields := make([]string, 0, len(columns)+1+len(moduleKeys))
	fields = append(fields, columns...)
	if k := Key(declaredKey); k != "" {
		fields = append(fields, k)
	}
	fields = append(fields, moduleKeys...)
	return EmitSQL(table, fields)
}

// Join склеивает DDL нескольких таблиц в один ext_tables.sql, пропуская пустые.
func Join(statements ...string) string {
	var b strings.Builder
	for _, s := range statements {
		if strings.TrimSpace(s) == "" {
			continue
		}
		b.WriteString(s)
	}
	return b.String()
}
