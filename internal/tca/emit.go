package tca

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatPHP  Format = "php"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPHP, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "":
		return FormatPHP, nil
	}
	return "", fmt.Errorf("unknown output format %q (allowed: php|json|yaml)", s)
}

// Ext — расширение файла для формата.
func (f Format) Ext() string {
	if f == FormatYAML {
		return "yaml"
	}
	return string(f)
}

// Encode пишет дерево в w в заданном формате. Вывод детерминирован.
func Encode(w io.Writer, c Config, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(c)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]any(c)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return WritePHP(w, c)
	}
}

// WritePHP пишет файл вида `<?php return [...];`, который хост подключает как конфигурацию таблицы.
func WritePHP(w io.Writer, c Config) error {
	var b bytes.Buffer
	b.WriteString("<?php\n\nreturn ")
	if err := writePHPValue(&b, map[string]any(c), 0); err != nil {
		return err
	}
	b.WriteString(";\n")
	_, err := w.Write(b.Bytes())
	return err
}

func writePHPValue(b *bytes.Buffer, v any, depth int) error {
	if m, ok := AsMap(v); ok {
		if len(m) == 0 {
			b.WriteString("[]")
			return nil
		}
		b.WriteString("[\n")
		for _, k := range Keys(m) {
			indent(b, depth+1)
			b.WriteString(phpString(k))
			b.WriteString(" => ")
			if err := writePHPValue(b, m[k], depth+1); err != nil {
				return err
			}
			b.WriteString(",\n")
		}
		indent(b, depth)
		b.WriteString("]")
		return nil
	}

	switch t := v.(type) {
	case nil:
		b.WriteString("null")
	case string:
		b.WriteString(phpString(t))
	case bool:
		b.WriteString(strconv.FormatBool(t))
	case int:
		b.WriteString(strconv.Itoa(t))
	case int64:
		b.WriteString(strconv.FormatInt(t, 10))
	case float64:
		b.WriteString(strconv.FormatFloat(t, 'f', -1, 64))
	case []string:
		list := make([]any, len(t))
		for i, s := range t {
			list[i] = s
		}
		return writePHPList(b, list, depth)
	case []any:
		return writePHPList(b, t, depth)
	default:
		return fmt.Errorf("tca: unsupported value type %T", v)
	}
	return nil
}

func writePHPList(b *bytes.Buffer, list []any, depth int) error {
	if len(list) == 0 {
		b.WriteString("[]")
		return nil
	}
	b.WriteString("[\n")
	for _, it := range list {
		indent(b, depth+1)
		if err := writePHPValue(b, it, depth+1); err != nil {
			return err
		}
		b.WriteString(",\n")
	}
	indent(b, depth)
	b.WriteString("]")
	return nil
}

func phpString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}

func indent(b *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("    ")
	}
}
