package smartobject

import (
	"strings"

	"autoloader/internal/dataset"
)

const (
	lllTabs     = "LLL:EXT:core/Resources/Private/Language/Form/locallang_tabs.xlf"
	lllFrontend = "LLL:EXT:frontend/Resources/Private/Language/"
)

// tabSection — вкладка формы после пользовательских полей.
// module == "" — вкладка есть всегда, иначе только если модуль выбран.
type tabSection struct {
	module string
	items  []string
}

var tabSections = []tabSection{
	{dataset.NameLanguage, []string{
		"--div--;" + lllTabs + ":language",
		"--palette--;;language",
	}},
	{dataset.NameEnableFields, []string{
		"--div--;" + lllTabs + ":access",
		"--palette--;" + lllFrontend + "locallang_tca.xlf:pages.palettes.access;access",
	}},
	{"", []string{
		"--div--;" + lllFrontend + "locallang_ttc.xlf:tabs.extended",
	}},
}

// ShowItem — порядок полей формы: пользовательские поля, затем вкладки выбранных модулей.
func ShowItem(fields []string, modules []dataset.Module) string {
	items := append([]string(nil), fields...)
	for _, sec := range tabSections {
		if sec.module != "" && !dataset.Has(modules, sec.module) {
			continue
		}
		items = append(items, sec.items...)
	}
	return strings.Join(items, ",")
}
