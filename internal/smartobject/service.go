// Package smartobject выводит из метаданных модели DDL таблицы и её конфигурацию формы (TCA):
// модули поведения, пользовательские поля и ручные переопределения сливаются в одно дерево.
package smartobject

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"autoloader/internal/dataset"
	"autoloader/internal/host"
	"autoloader/internal/icon"
	"autoloader/internal/label"
	"autoloader/internal/metadata"
	"autoloader/internal/sqlgen"
	"autoloader/internal/tca"
	"autoloader/internal/typemap"
)

// Deps — внешние коллабораторы генератора.
type Deps struct {
	Models   metadata.Provider
	Mapper   *typemap.Mapper
	DataSets *dataset.Registry
	Labels   label.Catalog
	Icons    icon.Resolver
	Host     host.Store
	Logger   *zap.Logger
}

type Options struct {
	// LabelsPerTable: ключ метки поля без префикса таблицы, файл меток на таблицу.
	LabelsPerTable bool
}

type Service struct {
	models   metadata.Provider
	mapper   *typemap.Mapper
	datasets *dataset.Registry
	labels   label.Catalog
	icons    icon.Resolver
	host     host.Store
	log      *zap.Logger
	opts     Options
}

func New(d Deps, opts Options) *Service {
	s := &Service{
		models:   d.Models,
		mapper:   d.Mapper,
		datasets: d.DataSets,
		labels:   d.Labels,
		icons:    d.Icons,
		host:     d.Host,
		log:      d.Logger,
		opts:     opts,
	}
	if s.mapper == nil {
		s.mapper = typemap.New(metadata.TableNameByModelName)
	}
	if s.datasets == nil {
		s.datasets = dataset.Default(dataset.Options{})
	}
	if s.labels == nil {
		s.labels = label.NewMemory(label.Layout{PerTable: opts.LabelsPerTable})
	}
	if s.icons == nil {
		s.icons = icon.Static("")
	}
	if s.host == nil {
		s.host = host.Tables{}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// Table — готовые артефакты одной таблицы.
type Table struct {
	Class     string `json:"class"`
	Extension string `json:"extension"`
	Name      string `json:"table"`
	Extends   bool   `json:"extends"`
	// Classes — все модели, из которых собрана таблица (несколько для расширяемой).
	Classes []string   `json:"classes"`
	SQL     string     `json:"sql"`
	TCA     tca.Config `json:"tca"`
}

// Table строит оба артефакта; при любой ошибке не возвращает ни одного.
func (s *Service) Table(class string) (*Table, error) {
	m, err := s.models.Model(class)
	if err != nil {
		return nil, err
	}
	conf, err := s.TCAInformation(class)
	if err != nil {
		return nil, err
	}
	sql, err := s.DatabaseInformation(class)
	if err != nil {
		return nil, err
	}
	return &Table{
		Class:     m.Class,
		Extension: m.ExtensionKey(),
		Name:      m.TableName(),
		Extends:   m.Extends(),
		Classes:   []string{m.Class},
		SQL:       sql,
		TCA:       conf,
	}, nil
}

// DatabaseInformation — DDL таблицы модели. Для расширяемых таблиц только пользовательские колонки.
func (s *Service) DatabaseInformation(class string) (string, error) {
	m, err := s.models.Model(class)
	if err != nil {
		return "", err
	}
	table := m.TableName()
	custom, err := s.customDatabaseInformation(m)
	if err != nil {
		return "", err
	}

	// таблица уже есть у хоста: только добавляем колонки
	if m.Extends() {
		return sqlgen.EmitSQL(table, custom), nil
	}

	excludes, err := s.models.ExcludedBehaviors(class)
	if err != nil {
		return "", err
	}
	key, err := s.models.DeclaredKey(class)
	if err != nil {
		return "", err
	}
	mods := s.datasets.Resolve(excludes)

	columns := append(custom, dataset.SQLColumns(mods, table)...)
	return sqlgen.EmitFullSQL(table, columns, key, dataset.SQLKeys(mods)), nil
}

// Column — SQL-определение пользовательского поля.
type Column struct {
	Definition string
	// Fallback: переопределение db не нашлось среди типов и взято как есть.
	Fallback bool
}

// ColumnDefinition: db-переопределение сначала ищется среди типов, при неудаче берётся дословно;
// без переопределения тип поля обязан быть известен.
func (s *Service) ColumnDefinition(m *metadata.Model, f metadata.Field) (Column, error) {
	if strings.TrimSpace(f.DB) == "" {
		def, err := s.mapper.DatabaseDefinition(f.Var)
		if err != nil {
			return Column{}, &FieldError{Model: m.Class, Field: f.Name, Err: err}
		}
		return Column{Definition: def}, nil
	}

	def, err := s.mapper.DatabaseDefinition(f.DB)
	if err != nil {
		s.log.Warn("db override is not a registered type, using it verbatim",
			zap.String("model", m.Class),
			zap.String("field", f.Name),
			zap.String("db", f.DB),
			zap.Error(err),
		)
		return Column{Definition: strings.TrimSpace(f.DB), Fallback: true}, nil
	}
	return Column{Definition: def}, nil
}

func (s *Service) customDatabaseInformation(m *metadata.Model) ([]string, error) {
	fields, err := s.models.ListFields(m.Class)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		col, err := s.ColumnDefinition(m, f)
		if err != nil {
			return nil, err
		}
		out = append(out, sqlgen.Column(f.Name, col.Definition))
	}
	return out, nil
}

// CustomFields — колонки TCA пользовательских полей и их порядок объявления.
type CustomFields struct {
	Columns tca.Config
	Order   []string
}

// CustomModelFieldTCA строит конфигурацию колонок для объявленных полей модели.
func (s *Service) CustomModelFieldTCA(class string) (*CustomFields, error) {
	m, err := s.models.Model(class)
	if err != nil {
		return nil, err
	}
	fields, err := s.models.ListFields(class)
	if err != nil {
		return nil, err
	}
	table := m.TableName()
	ext := m.ExtensionKey()

	out := &CustomFields{Columns: tca.Config{}}
	for _, f := range fields {
		if _, dup := out.Columns[f.Name]; dup {
			return nil, &FieldError{Model: m.Class, Field: f.Name, Err: errDuplicateField}
		}

		conf, err := s.mapper.TCAConfiguration(f.Var, typemap.Field{Table: table, Name: f.Name}, s.fieldLabel(m, f))
		if err != nil {
			return nil, &FieldError{Model: m.Class, Field: f.Name, Err: err}
		}
		if f.RTE {
			applyRichText(conf)
		}

		out.Columns[f.Name] = conf
		out.Order = append(out.Order, f.Name)
	}
	s.log.Debug("custom fields mapped", zap.String("table", table), zap.String("extension", ext), zap.Int("fields", len(out.Order)))
	return out, nil
}

// fieldLabel регистрирует метку поля; при неудаче метка — имя поля.
func (s *Service) fieldLabel(m *metadata.Model, f metadata.Field) string {
	table := m.TableName()
	ext := m.ExtensionKey()

	key := f.Label
	if key == "" {
		key = table + "." + f.Name
		if s.opts.LabelsPerTable {
			key = f.Name
		}
	}

	res := s.labels.Ensure(key, ext, f.Name, table)
	if res.Failed() {
		s.log.Warn("label registration failed, falling back to field name",
			zap.String("model", m.Class),
			zap.String("field", f.Name),
			zap.String("key", key),
			zap.Error(res.Err),
		)
		return f.Name
	}
	return s.labels.Resolve(key, ext, table)
}

func applyRichText(conf tca.Config) {
	widget, ok := tca.AsMap(conf["config"])
	if !ok {
		widget = tca.Config{}
		conf["config"] = widget
	}
	widget["type"] = "text"
	widget["enableRichtext"] = "1"
	widget["richtextConfiguration"] = "default"
	widget["softref"] = "typolink_tag,email[subst],url"
	conf["defaultExtras"] = "richtext:rte_transform[flag=rte_enabled|mode=ts_css]"
}

// TCAInformation собирает итоговое дерево таблицы:
// модули поведения, поверх — пользовательские поля, последними — переопределения.
func (s *Service) TCAInformation(class string) (tca.Config, error) {
	m, err := s.models.Model(class)
	if err != nil {
		return nil, err
	}
	table := m.TableName()
	ext := m.ExtensionKey()

	custom, err := s.CustomModelFieldTCA(class)
	if err != nil {
		return nil, err
	}

	if m.Extends() {
		base, err := s.hostBase(table)
		if err != nil {
			return nil, err
		}
		return tca.MergeAll(base, tca.Config{tca.SectionColumns: custom.Columns}, m.TCA), nil
	}

	excludes, err := s.models.ExcludedBehaviors(class)
	if err != nil {
		return nil, err
	}
	mods := s.datasets.Resolve(excludes)
	base := dataset.TCA(mods, table)

	labelField := LabelField(custom.Order)

	if res := s.labels.Ensure(table, ext, "", table); res.Failed() {
		s.log.Debug("table label registration failed", zap.String("table", table), zap.Error(res.Err))
	}

	base = tca.Merge(base, tca.Config{tca.SectionColumns: custom.Columns})

	if dataset.Has(mods, dataset.NameWorkspaces) {
		ctrl := base.Section(tca.SectionCtrl)
		if ctrl == nil {
			ctrl = tca.Config{}
			base[tca.SectionCtrl] = ctrl
		}
		shadow, _ := ctrl["shadowColumnsForNewPlaceholders"].(string)
		if shadow != "" {
			shadow += ","
		}
		ctrl["shadowColumnsForNewPlaceholders"] = shadow + labelField
	}

	override := tca.Config{
		tca.SectionCtrl: tca.Config{
			"title":         s.labels.Resolve(table, ext, table),
			"label":         labelField,
			"dividers2tabs": true,
			"searchFields":  strings.Join(custom.Order, ","),
			"iconfile":      s.icons.ModelIcon(ext, m.Name().Model),
		},
		tca.SectionTypes: tca.Config{
			"1": tca.Config{"showitem": ShowItem(custom.Order, mods)},
		},
	}
	return tca.MergeAll(base, override, m.TCA), nil
}

func (s *Service) hostBase(table string) (tca.Config, error) {
	base, err := s.host.Table(table)
	var malformed *host.MalformedOverrideError
	switch {
	case errors.As(err, &malformed):
		s.log.Warn("host configuration is malformed, starting from empty base", zap.String("table", table), zap.Error(err))
		return tca.Config{}, nil
	case err != nil:
		return nil, fmt.Errorf("host configuration for %s: %w", table, err)
	case base == nil:
		return tca.Config{}, nil
	}
	return base, nil
}

// LabelField — поле-заголовок записи: "title", если объявлено, иначе первое объявленное поле.
func LabelField(fields []string) string {
	for _, f := range fields {
		if f == "title" {
			return f
		}
	}
	if len(fields) > 0 {
		return fields[0]
	}
	return "uid"
}
