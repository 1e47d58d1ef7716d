package dataset

import (
	"autoloader/internal/tca"
)

const lllGeneral = "LLL:EXT:core/Resources/Private/Language/locallang_general.xlf:"

// Language — поле языка, ссылка на запись-оригинал и источник диффа перевода.
type Language struct {
	Legacy bool
}

func (Language) Name() string { return NameLanguage }

func (l Language) TCA(table string) tca.Config {
	languageConfig := tca.Config{"type": "language"}
	if l.Legacy {
		languageConfig = tca.Config{
			"type":       "select",
			"renderType": "selectSingle",
			"default":    "0",
			"special":    "languages",
			"items": []any{
				[]any{lllGeneral + "LGL.allLanguages", -1, "flags-multiple"},
			},
		}
	}

	return tca.Config{
		tca.SectionCtrl: tca.Config{
			"languageField":            "sys_language_uid",
			"transOrigPointerField":    "l10n_parent",
			"transOrigDiffSourceField": "l10n_diffsource",
		},
		tca.SectionColumns: tca.Config{
			"sys_language_uid": tca.Config{
				"exclude": 1,
				"label":   lllGeneral + "LGL.language",
				"config":  languageConfig,
			},
			"l10n_parent": tca.Config{
				"displayCond": "FIELD:sys_language_uid:>:0",
				"label":       lllGeneral + "LGL.l18n_parent",
				"config": tca.Config{
					"type":                "select",
					"renderType":          "selectSingle",
					"default":             0,
					"items":               []any{[]any{"", 0}},
					"foreign_table":       table,
					"foreign_table_where": "AND " + table + ".pid=###CURRENT_PID### AND " + table + ".sys_language_uid IN (-1,0)",
				},
			},
			"l10n_diffsource": tca.Config{
				"config": tca.Config{"type": "passthrough"},
			},
		},
		tca.SectionPalettes: tca.Config{
			"language": tca.Config{"showitem": "sys_language_uid, l10n_parent, l10n_diffsource"},
		},
	}
}

func (Language) SQLColumns(string) []string {
	return []string{
		"sys_language_uid int(11) DEFAULT '0' NOT NULL",
		"l10n_parent int(11) DEFAULT '0' NOT NULL",
		"l10n_diffsource mediumblob",
	}
}

func (Language) SQLKeys() []string {
	return []string{"KEY language (l10n_parent,sys_language_uid)"}
}
