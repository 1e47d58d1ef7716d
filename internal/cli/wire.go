package cli

import (
	"fmt"
	"os"

	"autoloader/internal/dataset"
	"autoloader/internal/host"
	"autoloader/internal/icon"
	"autoloader/internal/label"
	"autoloader/internal/metadata"
	"autoloader/internal/smartobject"
	"autoloader/internal/typemap"
)

func (a *app) models() (*metadata.Registry, error) {
	reg, err := metadata.LoadDir(a.cfg.ModelsDir)
	if err != nil {
		return nil, fmt.Errorf("load models from %s: %w", a.cfg.ModelsDir, err)
	}
	return reg, nil
}

// service связывает генератор с окружением: базовый TCA хоста, файлы меток и иконки
// берутся с диска, если каталоги заданы, иначе используются заглушки в памяти.
// Языковые файлы дописываются только при writeLabels; иначе новые ключи живут в памяти.
func (a *app) service(reg *metadata.Registry, writeLabels bool) (*smartobject.Service, error) {
	tables, err := host.LoadDir(a.cfg.HostTCADir)
	if err != nil {
		return nil, fmt.Errorf("load host TCA: %w", err)
	}

	layout := label.Layout{PerTable: a.cfg.LabelsPerTable}
	var (
		labels label.Catalog = label.NewMemory(layout)
		icons  icon.Resolver = icon.Static("")
	)
	if a.cfg.ExtensionsDir != "" {
		x := label.NewXLIFF(a.cfg.ExtensionsDir, layout)
		x.ReadOnly = !writeLabels
		labels = x
		icons = icon.NewFS(os.DirFS(a.cfg.ExtensionsDir))
	}

	return smartobject.New(smartobject.Deps{
		Models:   reg,
		Mapper:   typemap.New(metadata.TableNameByModelName),
		DataSets: dataset.Default(dataset.Options{LegacyLanguageWidget: a.cfg.LegacyLanguageWidget}),
		Labels:   labels,
		Icons:    icons,
		Host:     tables,
		Logger:   a.log,
	}, smartobject.Options{LabelsPerTable: a.cfg.LabelsPerTable}), nil
}
