package metadata

import (
	"strings"
	"unicode"
)

// ModelName — разобранное имя класса модели.
type ModelName struct {
	Vendor    string
	Extension string
	Model     string
}

// ExplodeModelName разбирает Vendor\Ext\Domain\Model\Post, Ext\Domain\Model\Post и Ext\Post.
// Вложенные модели (Domain\Model\Blog\Post) склеиваются через "_".
func ExplodeModelName(class string) ModelName {
	parts := strings.Split(strings.Trim(strings.TrimSpace(class), `\`), `\`)

	for i := 0; i+1 < len(parts); i++ {
		if parts[i] == "Domain" && parts[i+1] == "Model" {
			n := ModelName{Model: strings.Join(parts[i+2:], "_")}
			if i >= 1 {
				n.Extension = parts[i-1]
			}
			if i >= 2 {
				n.Vendor = strings.Join(parts[:i-1], `\`)
			}
			return n
		}
	}

	switch len(parts) {
	case 0:
		return ModelName{}
	case 1:
		return ModelName{Model: parts[0]}
	}
	return ModelName{Extension: parts[len(parts)-2], Model: parts[len(parts)-1]}
}

// ExtensionKey: BlogExample -> blog_example.
func ExtensionKey(extension string) string {
	var b strings.Builder
	for i, r := range extension {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// TableNameByModelName: Vendor\BlogExample\Domain\Model\Post -> tx_blogexample_domain_model_post.
func TableNameByModelName(class string) string {
	n := ExplodeModelName(class)
	ext := strings.ToLower(strings.ReplaceAll(ExtensionKey(n.Extension), "_", ""))
	return "tx_" + ext + "_domain_model_" + strings.ToLower(n.Model)
}

// TableName — таблица модели с учётом явного переопределения.
func (m *Model) TableName() string {
	if t := strings.TrimSpace(m.Table); t != "" {
		return t
	}
	return TableNameByModelName(m.Class)
}

// Extends сообщает, что модель дополняет существующую таблицу хоста.
func (m *Model) Extends() bool { return strings.TrimSpace(m.Table) != "" }

func (m *Model) Name() ModelName { return ExplodeModelName(m.Class) }

func (m *Model) ExtensionKey() string { return ExtensionKey(m.Name().Extension) }
