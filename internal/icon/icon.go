// Package icon ищет иконку модели в ресурсах расширения.
package icon

import (
	"io/fs"
	"path"
)

// Resolver возвращает EXT:-путь иконки или "".
type Resolver interface {
	ModelIcon(extensionKey, model string) string
}

var (
	modelExts      = []string{"svg", "png", "gif"}
	extensionIcons = []string{
		"Resources/Public/Icons/Extension.svg",
		"ext_icon.svg",
		"ext_icon.png",
		"ext_icon.gif",
	}
)

// FS ищет Resources/Public/Icons/<Model>.<ext> внутри <extkey>/, затем иконку расширения.
type FS struct {
	fsys fs.FS
}

func NewFS(fsys fs.FS) *FS { return &FS{fsys: fsys} }

func (r *FS) ModelIcon(extensionKey, model string) string {
	if r == nil || r.fsys == nil {
		return ""
	}
	for _, ext := range modelExts {
		rel := "Resources/Public/Icons/" + model + "." + ext
		if r.exists(path.Join(extensionKey, rel)) {
			return "EXT:" + extensionKey + "/" + rel
		}
	}
	for _, rel := range extensionIcons {
		if r.exists(path.Join(extensionKey, rel)) {
			return "EXT:" + extensionKey + "/" + rel
		}
	}
	return ""
}

func (r *FS) exists(name string) bool {
	st, err := fs.Stat(r.fsys, name)
	return err == nil && !st.IsDir()
}

// Static — одна иконка для всех моделей.
type Static string

func (s Static) ModelIcon(string, string) string { return string(s) }
