package sqlgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitSQL(t *testing.T) {
	got := EmitSQL("tx_blog_domain_model_post", []string{
		"`title` varchar(255) DEFAULT '' NOT NULL",
		"`body` text",
	})
	want := "\nCREATE TABLE tx_blog_domain_model_post (\n" +
		"`title` varchar(255) DEFAULT '' NOT NULL,\n" +
		"`body` text\n" +
		");\n"
	assert.Equal(t, want, got)
}

func TestEmitSQLEmpty(t *testing.T) {
	assert.Equal(t, "", EmitSQL("tx_empty", nil))
	assert.Equal(t, "", EmitSQL("tx_empty", []string{}))
	assert.Equal(t, "", EmitFullSQL("tx_empty", nil, "", nil))
}

func TestEmitFullSQLOrder(t *testing.T) {
	got := EmitFullSQL("t",
		[]string{"`title` varchar(255) DEFAULT '' NOT NULL", "deleted tinyint(4) unsigned DEFAULT '0' NOT NULL"},
		" slug (slug) ",
		[]string{"KEY language (l10n_parent,sys_language_uid)"},
	)
	want := "\nCREATE TABLE t (\n" +
		"`title` varchar(255) DEFAULT '' NOT NULL,\n" +
		"deleted tinyint(4) unsigned DEFAULT '0' NOT NULL,\n" +
		"KEY slug (slug),\n" +
		"KEY language (l10n_parent,sys_language_uid)\n" +
		");\n"
	assert.Equal(t, want, got)
}

func TestEmitFullSQLKeysOnly(t *testing.T) {
	got := EmitFullSQL("t", nil, "", []string{"KEY language (l10n_parent,sys_language_uid)"})
	assert.Equal(t, "\nCREATE TABLE t (\nKEY language (l10n_parent,sys_language_uid)\n);\n", got)
}

func TestColumnAndKey(t *testing.T) {
	assert.Equal(t, "`order` int(11) DEFAULT '0' NOT NULL", Column("order", " int(11) DEFAULT '0' NOT NULL"))
	assert.Equal(t, "`x` text", Column("`x`", "text"))
	assert.Equal(t, "", Key("  "))
	assert.Equal(t, "KEY a (a)", Key("a (a)"))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "AB", Join("A", "", "  ", "B"))
}
