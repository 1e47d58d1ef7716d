// Package label регистрирует и разрешает метки полей и таблиц в языковых файлах расширений.
package label

import (
	"strings"

	"github.com/jinzhu/inflection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Status — исход регистрации метки.
type Status int

const (
	// StatusRegistered — метки не было, она добавлена.
	StatusRegistered Status = iota
	// StatusExisting — метка уже определена, ничего не менялось.
	StatusExisting
	// StatusFailed — регистрация не удалась; вызывающий использует запасное значение.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusRegistered:
		return "registered"
	case StatusExisting:
		return "existing"
	default:
		return "failed"
	}
}

// Result — явный результат Ensure вместо проглоченного исключения.
type Result struct {
	Status Status
	Err    error
}

func (r Result) Failed() bool { return r.Status == StatusFailed }

// Catalog — поиск и авторегистрация меток.
type Catalog interface {
	// Ensure добавляет ключ в языковой файл, если его там нет.
	Ensure(key, extension, field, table string) Result
	// Resolve возвращает LLL-ссылку на метку или подсказку, что метку нужно перевести.
	Resolve(key, extension, table string) string
}

// Layout определяет, в каком файле живут метки.
type Layout struct {
	// PerTable: метки таблицы лежат в отдельном <table>.xlf вместо общего locallang.xlf.
	PerTable bool
}

// File — путь языкового файла относительно корня расширения.
func (l Layout) File(table string) string {
	if l.PerTable && table != "" {
		return "Resources/Private/Language/" + table + ".xlf"
	}
	return "Resources/Private/Language/locallang.xlf"
}

// Reference — LLL-ссылка вида LLL:EXT:<ext>/<file>:<key>.
func (l Layout) Reference(key, extension, table string) string {
	return "LLL:EXT:" + extension + "/" + l.File(table) + ":" + key
}

// HelpMessage — текст, который видит редактор вместо непереведённой метки.
func (l Layout) HelpMessage(key, extension, table string) string {
	return "Please translate the key \"" + key + "\" in EXT:" + extension + "/" + l.File(table)
}

// DefaultText — исходный текст для новой метки: имя поля по-человечески,
// для таблицы — имя модели в единственном числе.
func DefaultText(field, table string) string {
	name := field
	if name == "" {
		name = table
		if i := strings.LastIndex(table, "_domain_model_"); i >= 0 {
			name = table[i+len("_domain_model_"):]
		}
		name = inflection.Singular(name)
	}
	// Caser хранит состояние, поэтому новый на каждый вызов
	return cases.Title(language.English).String(strings.Join(splitWords(name), " "))
}

// splitWords: publish_date / publishDate -> [publish date].
func splitWords(s string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '-' || r == '.' || r == ' ':
			flush()
		case i > 0 && r >= 'A' && r <= 'Z':
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return words
}
