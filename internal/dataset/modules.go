package dataset

import (
	"autoloader/internal/tca"
)

// EnableFields — видимость, время публикации, группы фронтенда и блокировка редактирования.
type EnableFields struct{}

func (EnableFields) Name() string { return NameEnableFields }

func (EnableFields) TCA(string) tca.Config {
	dateTime := func(label string) tca.Config {
		return tca.Config{
			"exclude": 1,
			"label":   lllGeneral + label,
			"config": tca.Config{
				"type":       "input",
				"renderType": "inputDateTime",
				"eval":       "datetime,int",
				"default":    0,
			},
		}
	}

	return tca.Config{
		tca.SectionCtrl: tca.Config{
			"editlock": "editlock",
			"enablecolumns": tca.Config{
				"disabled":  "hidden",
				"starttime": "starttime",
				"endtime":   "endtime",
				"fe_group":  "fe_group",
			},
		},
		tca.SectionColumns: tca.Config{
			"hidden": tca.Config{
				"exclude": 1,
				"label":   lllGeneral + "LGL.hidden",
				"config":  tca.Config{"type": "check"},
			},
			"starttime": dateTime("LGL.starttime"),
			"endtime":   dateTime("LGL.endtime"),
			"fe_group": tca.Config{
				"exclude": 1,
				"label":   lllGeneral + "LGL.fe_group",
				"config": tca.Config{
					"type":       "select",
					"renderType": "selectMultipleSideBySide",
					"size":       5,
					"maxitems":   20,
					"items": []any{
						[]any{lllGeneral + "LGL.hide_at_login", -1},
						[]any{lllGeneral + "LGL.any_login", -2},
						[]any{lllGeneral + "LGL.usergroups", "--div--"},
					},
					"exclusiveKeys":       "-1,-2",
					"foreign_table":       "fe_groups",
					"foreign_table_where": "ORDER BY fe_groups.title",
				},
			},
			"editlock": tca.Config{
				"exclude": 1,
				"label":   "LLL:EXT:core/Resources/Private/Language/locallang_tca.xlf:editlock",
				"config":  tca.Config{"type": "check"},
			},
		},
		tca.SectionPalettes: tca.Config{
			"access": tca.Config{"showitem": "starttime, endtime, --linebreak--, hidden, editlock, --linebreak--, fe_group"},
		},
	}
}

func (EnableFields) SQLColumns(string) []string {
	return []string{
		"hidden tinyint(4) unsigned DEFAULT '0' NOT NULL",
		"starttime int(11) unsigned DEFAULT '0' NOT NULL",
		"endtime int(11) unsigned DEFAULT '0' NOT NULL",
		"fe_group varchar(100) DEFAULT '0' NOT NULL",
		"editlock tinyint(4) unsigned DEFAULT '0' NOT NULL",
	}
}

func (EnableFields) SQLKeys() []string { return nil }

// Workspaces — версионирование записей.
type Workspaces struct{}

func (Workspaces) Name() string { return NameWorkspaces }

func (Workspaces) TCA(string) tca.Config {
	return tca.Config{
		tca.SectionCtrl: tca.Config{
			"versioningWS":                    true,
			"origUid":                         "t3_origuid",
			"shadowColumnsForNewPlaceholders": "sys_language_uid,l10n_parent,starttime,endtime,fe_group",
		},
		tca.SectionColumns: tca.Config{
			"t3ver_label": tca.Config{
				"label":  lllGeneral + "LGL.versionLabel",
				"config": tca.Config{"type": "input", "size": 30, "max": 30},
			},
		},
	}
}

func (Workspaces) SQLColumns(string) []string {
	return []string{
		"t3ver_oid int(11) DEFAULT '0' NOT NULL",
		"t3ver_id int(11) DEFAULT '0' NOT NULL",
		"t3ver_wsid int(11) DEFAULT '0' NOT NULL",
		"t3ver_label varchar(255) DEFAULT '' NOT NULL",
		"t3ver_state tinyint(4) DEFAULT '0' NOT NULL",
		"t3ver_stage int(11) DEFAULT '0' NOT NULL",
		"t3ver_count int(11) DEFAULT '0' NOT NULL",
		"t3ver_tstamp int(11) DEFAULT '0' NOT NULL",
		"t3ver_move_id int(11) DEFAULT '0' NOT NULL",
		"t3_origuid int(11) DEFAULT '0' NOT NULL",
	}
}

func (Workspaces) SQLKeys() []string {
	return []string{"KEY t3ver_oid (t3ver_oid,t3ver_wsid)"}
}

// Timestamps — время создания/изменения и автор записи.
type Timestamps struct{}

func (Timestamps) Name() string { return NameTimestamps }

func (Timestamps) TCA(string) tca.Config {
	return tca.Config{
		tca.SectionCtrl: tca.Config{
			"tstamp":    "tstamp",
			"crdate":    "crdate",
			"cruser_id": "cruser_id",
		},
	}
}

func (Timestamps) SQLColumns(string) []string {
	return []string{
		"tstamp int(11) unsigned DEFAULT '0' NOT NULL",
		"crdate int(11) unsigned DEFAULT '0' NOT NULL",
		"cruser_id int(11) unsigned DEFAULT '0' NOT NULL",
	}
}

func (Timestamps) SQLKeys() []string { return nil }

// SoftDelete — флаг удаления вместо физического удаления.
type SoftDelete struct{}

func (SoftDelete) Name() string { return NameSoftDelete }

func (SoftDelete) TCA(string) tca.Config {
	return tca.Config{tca.SectionCtrl: tca.Config{"delete": "deleted"}}
}

func (SoftDelete) SQLColumns(string) []string {
	return []string{"deleted tinyint(4) unsigned DEFAULT '0' NOT NULL"}
}

func (SoftDelete) SQLKeys() []string { return nil }

// Sorting — ручная сортировка записей в списке.
type Sorting struct{}

func (Sorting) Name() string { return NameSorting }

func (Sorting) TCA(string) tca.Config {
	return tca.Config{tca.SectionCtrl: tca.Config{"sortby": "sorting"}}
}

func (Sorting) SQLColumns(string) []string {
	return []string{"sorting int(11) DEFAULT '0' NOT NULL"}
}

func (Sorting) SQLKeys() []string { return nil }
