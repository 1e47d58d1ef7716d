package generate

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoloader/internal/host"
	"autoloader/internal/metadata"
	"autoloader/internal/smartobject"
	"autoloader/internal/tca"
	"autoloader/internal/typemap"
)

func registry(t *testing.T) *metadata.Registry {
	t.Helper()
	reg := metadata.NewRegistry()
	require.NoError(t, reg.Register(metadata.Model{
		Class:  `Blog\Post`,
		Fields: []metadata.Field{{Name: "title", Var: "string"}, {Name: "body", Var: "string", RTE: true}},
	}))
	require.NoError(t, reg.Register(metadata.Model{
		Class:  `Blog\Broken`,
		Fields: []metadata.Field{{Name: "gadget", Var: "FrobnicatorWidget"}},
	}))
	require.NoError(t, reg.Register(metadata.Model{
		Class:  `Blog\Page`,
		Table:  "pages",
		Fields: []metadata.Field{{Name: "blog_teaser", Var: "string"}},
	}))
	require.NoError(t, reg.Register(metadata.Model{
		Class:  `News\Item`,
		Fields: []metadata.Field{{Name: "headline", Var: "string"}},
	}))
	return reg
}

func TestRunCollectsFailures(t *testing.T) {
	reg := registry(t)
	res := Run(reg, smartobject.New(smartobject.Deps{Models: reg}, smartobject.Options{}), nil)

	require.Len(t, res.Tables, 3)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, `Blog\Broken`, res.Failures[0].Class)
	assert.Len(t, res.ID, 26)

	var ute *typemap.UnknownTypeError
	assert.True(t, errors.As(res.Err(), &ute))

	_, ok := res.Table("tx_blog_domain_model_broken")
	assert.False(t, ok)
	post, ok := res.Table("tx_blog_domain_model_post")
	require.True(t, ok)
	assert.Equal(t, "title", post.TCA.String("ctrl", "label"))
}

func TestRunIDsDiffer(t *testing.T) {
	reg := registry(t)
	svc := smartobject.New(smartobject.Deps{Models: reg}, smartobject.Options{})
	a, b := Run(reg, svc, nil), Run(reg, svc, nil)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Tables, b.Tables)
}

func TestWrite(t *testing.T) {
	reg := registry(t)
	res := Run(reg, smartobject.New(smartobject.Deps{Models: reg}, smartobject.Options{}), nil)
	out := t.TempDir()

	written, err := Write(out, res, tca.FormatPHP)
	require.NoError(t, err)
	assert.Len(t, written, 5)

	php, err := os.ReadFile(filepath.Join(out, "blog", "Configuration", "TCA", "tx_blog_domain_model_post.php"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(php), "<?php\n\nreturn [\n    'ctrl' => ["))

	_, err = os.Stat(filepath.Join(out, "blog", "Configuration", "TCA", "Overrides", "pages.php"))
	require.NoError(t, err)

	sql, err := os.ReadFile(filepath.Join(out, "blog", "ext_tables.sql"))
	require.NoError(t, err)
	post := strings.Index(string(sql), "CREATE TABLE tx_blog_domain_model_post")
	pages := strings.Index(string(sql), "CREATE TABLE pages")
	assert.True(t, post >= 0 && pages > post)
	assert.NotContains(t, string(sql), "broken")

	news, err := os.ReadFile(filepath.Join(out, "news", "ext_tables.sql"))
	require.NoError(t, err)
	assert.Contains(t, string(news), "`headline`")
}

func TestWriteJSON(t *testing.T) {
	reg := registry(t)
	res := Run(reg, smartobject.New(smartobject.Deps{Models: reg}, smartobject.Options{}), nil)
	out := t.TempDir()

	_, err := Write(out, res, tca.FormatJSON)
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(out, "news", "Configuration", "TCA", "tx_news_domain_model_item.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"label": "headline"`)
}

func TestExtendersOfOneTableAreFolded(t *testing.T) {
	reg := metadata.NewRegistry()
	for _, m := range []metadata.Model{
		{Class: `Blog\Page`, Table: "pages", Fields: []metadata.Field{{Name: "blog_teaser", Var: "string"}}},
		{Class: `Blog\Post`, Fields: []metadata.Field{{Name: "title", Var: "string"}}},
		{Class: `Blog\PageExtra`, Table: "pages", Fields: []metadata.Field{{Name: "blog_extra", Var: "bool"}},
			TCA: map[string]any{"ctrl": map[string]any{"label": "nav_title"}}},
		{Class: `News\Page`, Table: "pages", Fields: []metadata.Field{{Name: "news_flag", Var: "bool"}}},
	} {
		require.NoError(t, reg.Register(m))
	}
	base := host.Tables{"pages": map[string]any{
		"ctrl":    map[string]any{"label": "title"},
		"columns": map[string]any{"title": map[string]any{"label": "Title"}},
	}}
	svc := smartobject.New(smartobject.Deps{Models: reg, Host: base}, smartobject.Options{})

	res := Run(reg, svc, nil)
	require.Empty(t, res.Failures)
	require.Len(t, res.Tables, 3)
	assert.Equal(t, "pages", res.Tables[0].Name, "group keeps the position of its first model")

	pages, ok := res.TableIn("blog", "pages")
	require.True(t, ok)
	assert.Equal(t, []string{`Blog\Page`, `Blog\PageExtra`}, pages.Classes)
	columns := pages.TCA.Section("columns")
	assert.Contains(t, columns, "title")
	assert.Contains(t, columns, "blog_teaser")
	assert.Contains(t, columns, "blog_extra")
	assert.NotContains(t, columns, "news_flag")
	assert.Equal(t, "nav_title", pages.TCA.String("ctrl", "label"))
	assert.Equal(t, "\nCREATE TABLE pages (\n`blog_teaser` varchar(255) DEFAULT '' NOT NULL,\n`blog_extra` tinyint(4) unsigned DEFAULT '0' NOT NULL\n);\n", pages.SQL)

	news, ok := res.TableIn("news", "pages")
	require.True(t, ok)
	assert.Contains(t, news.TCA.Section("columns"), "news_flag")

	out := t.TempDir()
	written, err := Write(out, res, tca.FormatJSON)
	require.NoError(t, err)
	overrides := 0
	for _, w := range written {
		if strings.HasSuffix(w.Path, filepath.Join("Overrides", "pages.json")) {
			overrides++
		}
	}
	assert.Equal(t, 2, overrides, "one override per extension")

	data, err := os.ReadFile(filepath.Join(out, "blog", "Configuration", "TCA", "Overrides", "pages.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"blog_teaser"`)
	assert.Contains(t, string(data), `"blog_extra"`)
}

func TestExtendersWithSameFieldFail(t *testing.T) {
	reg := metadata.NewRegistry()
	require.NoError(t, reg.Register(metadata.Model{Class: `Blog\Page`, Table: "pages", Fields: []metadata.Field{{Name: "teaser", Var: "string"}}}))
	require.NoError(t, reg.Register(metadata.Model{Class: `Blog\PageExtra`, Table: "pages", Fields: []metadata.Field{{Name: "teaser", Var: "text"}}}))

	res := Run(reg, smartobject.New(smartobject.Deps{Models: reg}, smartobject.Options{}), nil)
	require.Empty(t, res.Tables)
	require.Len(t, res.Failures, 1)
	f := res.Failures[0]
	assert.Equal(t, []string{`Blog\Page`, `Blog\PageExtra`}, f.Classes)
	assert.Equal(t, "pages", f.Table)
	assert.Contains(t, f.Error, `Blog\PageExtra`)
	assert.Contains(t, f.Error, "teaser")
}
