package metadata

// Model описывает одну доменную модель и её поля, как они объявлены в файлах метаданных.
type Model struct {
	Class    string         `yaml:"class"`    // Vendor\Ext\Domain\Model\Post или Ext\Post
	Table    string         `yaml:"table"`    // явная таблица: модель расширяет существующую таблицу
	Excludes []string       `yaml:"excludes"` // модули поведения, которые не нужны
	Key      string         `yaml:"key"`      // дополнительный ключ: "slug (slug)"
	Fields   []Field        `yaml:"fields"`
	TCA      map[string]any `yaml:"tca"` // ручные переопределения, применяются последними
}

// Field — одно объявленное поле модели.
type Field struct {
	Name  string `yaml:"name"`
	Var   string `yaml:"var"`   // семантический тип: string, int, \DateTime, ObjectStorage<...>
	DB    string `yaml:"db"`    // необязательное переопределение SQL-типа
	RTE   bool   `yaml:"rte"`   // поле редактируется в rich-text редакторе
	Label string `yaml:"label"` // ключ метки; по умолчанию <table>.<name>
}

// file — формат одного YAML-файла.
type file struct {
	Models []Model `yaml:"models"`
}
