package generate

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"autoloader/internal/sqlgen"
	"autoloader/internal/tca"
)

// Written — один записанный файл.
type Written struct {
	Path  string
	Table string
}

// Write раскладывает результат по расширениям:
//
//	<out>/<ext>/ext_tables.sql
//	<out>/<ext>/Configuration/TCA/<table>.<fmt>
//	<out>/<ext>/Configuration/TCA/Overrides/<table>.<fmt>   (для расширяемых таблиц)
func Write(outDir string, res *Result, format tca.Format) ([]Written, error) {
	var written []Written

	sqlByExt := map[string][]string{}
	var extOrder []string

	for _, t := range res.Tables {
		if _, seen := sqlByExt[t.Extension]; !seen {
			extOrder = append(extOrder, t.Extension)
			sqlByExt[t.Extension] = nil
		}
		sqlByExt[t.Extension] = append(sqlByExt[t.Extension], t.SQL)

		dir := filepath.Join(outDir, t.Extension, "Configuration", "TCA")
		if t.Extends {
			dir = filepath.Join(dir, "Overrides")
		}
		var buf bytes.Buffer
		if err := tca.Encode(&buf, t.TCA, format); err != nil {
			return written, fmt.Errorf("encode %s: %w", t.Name, err)
		}
		path := filepath.Join(dir, t.Name+"."+format.Ext())
		if err := writeFile(path, buf.Bytes()); err != nil {
			return written, err
		}
		written = append(written, Written{Path: path, Table: t.Name})
	}

	for _, ext := range extOrder {
		ddl := sqlgen.Join(sqlByExt[ext]...)
		if ddl == "" {
			continue
		}
		path := filepath.Join(outDir, ext, "ext_tables.sql")
		if err := writeFile(path, []byte(ddl)); err != nil {
			return written, err
		}
		written = append(written, Written{Path: path})
	}
	return written, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
