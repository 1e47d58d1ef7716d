package label

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

type xliffDoc struct {
	XMLName xml.Name  `xml:"xliff"`
	Version string    `xml:"version,attr"`
	File    xliffFile `xml:"file"`
}

type xliffFile struct {
	SourceLanguage string      `xml:"source-language,attr"`
	Datatype       string      `xml:"datatype,attr"`
	Original       string      `xml:"original,attr"`
	ProductName    string      `xml:"product-name,attr,omitempty"`
	Header         struct{}    `xml:"header"`
	Units          []xliffUnit `xml:"body>trans-unit"`
}

type xliffUnit struct {
	ID     string `xml:"id,attr"`
	Source string `xml:"source"`
}

// XLIFF — каталог поверх языковых файлов расширений:
// <root>/<ext>/Resources/Private/Language/locallang.xlf.
// Новые ключи дописываются в файл при Ensure, если каталог не ReadOnly.
type XLIFF struct {
	Root   string
	Layout Layout
	// ReadOnly: новые ключи живут только в кэше, файлы не меняются.
	ReadOnly bool

	mu    sync.Mutex
	cache map[string]*xliffDoc
}

func NewXLIFF(root string, layout Layout) *XLIFF {
	return &XLIFF{Root: root, Layout: layout, cache: map[string]*xliffDoc{}}
}

func (x *XLIFF) path(extension, table string) string {
	return filepath.Join(x.Root, extension, filepath.FromSlash(x.Layout.File(table)))
}

func (x *XLIFF) Ensure(key, extension, field, table string) Result {
	x.mu.Lock()
	defer x.mu.Unlock()

	path := x.path(extension, table)
	doc, err := x.load(path, extension)
	if err != nil {
		return Result{Status: StatusFailed, Err: err}
	}
	if doc.has(key) {
		return Result{Status: StatusExisting}
	}

	doc.File.Units = append(doc.File.Units, xliffUnit{ID: key, Source: DefaultText(field, table)})
	if x.ReadOnly {
		return Result{Status: StatusRegistered}
	}
	if err := write(path, doc); err != nil {
		// откатываем кэш, чтобы следующий вызов перечитал файл
		delete(x.cache, path)
		return Result{Status: StatusFailed, Err: err}
	}
	return Result{Status: StatusRegistered}
}

func (x *XLIFF) Resolve(key, extension, table string) string {
	x.mu.Lock()
	defer x.mu.Unlock()

	doc, err := x.load(x.path(extension, table), extension)
	if err == nil && doc.has(key) {
		return x.Layout.Reference(key, extension, table)
	}
	return x.Layout.HelpMessage(key, extension, table)
}

func (x *XLIFF) load(path, extension string) (*xliffDoc, error) {
	if doc, ok := x.cache[path]; ok {
		return doc, nil
	}
	doc := &xliffDoc{
		Version: "1.2",
		File: xliffFile{
			SourceLanguage: "en",
			Datatype:       "plaintext",
			Original:       "messages",
			ProductName:    extension,
		},
	}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := xml.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	x.cache[path] = doc
	return doc, nil
}

func (d *xliffDoc) has(key string) bool {
	for _, u := range d.File.Units {
		if u.ID == key {
			return true
		}
	}
	return false
}

func write(path string, doc *xliffDoc) error {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "\t")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	buf.WriteByte('\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
