package metadata

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplodeModelName(t *testing.T) {
	tests := []struct {
		class string
		want  ModelName
	}{
		{`Blog\Post`, ModelName{Extension: "Blog", Model: "Post"}},
		{`\HDNET\Calendarize\Domain\Model\Event`, ModelName{Vendor: "HDNET", Extension: "Calendarize", Model: "Event"}},
		{`Acme\Shop\Domain\Model\Order\Item`, ModelName{Vendor: "Acme", Extension: "Shop", Model: "Order_Item"}},
		{`News\Domain\Model\Tag`, ModelName{Extension: "News", Model: "Tag"}},
		{`Orphan`, ModelName{Model: "Orphan"}},
	}
	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			assert.Equal(t, tt.want, ExplodeModelName(tt.class))
		})
	}
}

func TestNaming(t *testing.T) {
	assert.Equal(t, "blog_example", ExtensionKey("BlogExample"))
	assert.Equal(t, "news", ExtensionKey("News"))
	assert.Equal(t, "tx_blog_domain_model_post", TableNameByModelName(`Blog\Post`))
	assert.Equal(t, "tx_blogexample_domain_model_post", TableNameByModelName(`Vendor\BlogExample\Domain\Model\Post`))

	m := Model{Class: `Blog\Post`, Table: "pages"}
	assert.Equal(t, "pages", m.TableName())
	assert.True(t, m.Extends())
	assert.Equal(t, "blog", m.ExtensionKey())
}

func TestRegistryProvider(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Model{
		Class:    `\Blog\Post`,
		Excludes: []string{"workspaces"},
		Key:      " slug (slug) ",
		Fields:   []Field{{Name: "title", Var: "string"}},
	}))

	fields, err := r.ListFields(`Blog\Post`)
	require.NoError(t, err)
	assert.Len(t, fields, 1)

	key, err := r.DeclaredKey(`Blog\Post`)
	require.NoError(t, err)
	assert.Equal(t, "slug (slug)", key)

	ex, err := r.ExcludedBehaviors(`Blog\Post`)
	require.NoError(t, err)
	assert.Equal(t, []string{"workspaces"}, ex)

	override, err := r.TableOverride(`Blog\Post`)
	require.NoError(t, err)
	assert.Empty(t, override)

	m, ok := r.ByTable("TX_BLOG_DOMAIN_MODEL_POST")
	require.True(t, ok)
	assert.Equal(t, `Blog\Post`, m.Class)

	_, err = r.Model(`Blog\Missing`)
	assert.True(t, errors.Is(err, ErrModelNotFound))
}

func TestByTableCaseInsensitiveIsStable(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Model{Class: `Blog\Page`, Table: "Pages"}))
	require.NoError(t, r.Register(Model{Class: `News\Page`, Table: "PAGES"}))
	require.NoError(t, r.Register(Model{Class: `Shop\Page`, Table: "pAgEs"}))

	for i := 0; i < 20; i++ {
		m, ok := r.ByTable("pages")
		require.True(t, ok)
		assert.Equal(t, `Blog\Page`, m.Class)
	}
	m, ok := r.ByTable("PAGES")
	require.True(t, ok)
	assert.Equal(t, `News\Page`, m.Class, "exact match wins")
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Model{Class: `Blog\Post`}))
	assert.Error(t, r.Register(Model{Class: `Blog\Post`}))
	assert.Error(t, r.Register(Model{Class: `Blog\Domain\Model\Post`}), "same generated table")
	assert.NoError(t, r.Register(Model{Class: `Blog\PostPages`, Table: "pages"}))
	assert.NoError(t, r.Register(Model{Class: `Other\PostPages`, Table: "pages"}))
	assert.Error(t, r.Register(Model{Class: " "}))
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "blog"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blog", "models.yaml"), []byte(`
models:
  - class: Blog\Post
    excludes: [workspaces]
    key: "slug (slug)"
    fields:
      - name: title
        var: string
      - name: body
        var: string
        rte: true
      - name: teaser
        var: string
        db: text
    tca:
      ctrl:
        hideTable: true
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0o644))

	r, err := LoadDir(dir)
	require.NoError(t, err)
	require.Equal(t, 1, r.Len())

	m := r.Models()[0]
	assert.Equal(t, `Blog\Post`, m.Class)
	assert.True(t, m.Fields[1].RTE)
	assert.Equal(t, "text", m.Fields[2].DB)
	assert.Equal(t, []string{"title", "body", "teaser"}, []string{m.Fields[0].Name, m.Fields[1].Name, m.Fields[2].Name})
	ctrl, ok := m.TCA["ctrl"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, ctrl["hideTable"])
}

func TestLoadDirBrokenYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yml"), []byte("models: [\n"), 0o644))

	_, err := LoadDir(dir)
	assert.Error(t, err)
}

type checker struct{}

func (checker) KnownType(s string) bool     { return s == "string" || s == "int" }
func (checker) KnownBehavior(s string) bool { return s == "language" }

func TestLint(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Model{
		Class:    `Blog\Post`,
		Excludes: []string{"language", "frobnicate"},
		Fields: []Field{
			{Name: "title", Var: "string"},
			{Name: "title", Var: "string"},
			{Name: "widget", Var: "FrobnicatorWidget"},
			{Name: "code", Var: "string", DB: "mediumtext"},
			{Name: "", Var: "int"},
		},
	}))
	require.NoError(t, r.Register(Model{Class: "Orphan"}))

	issues := Lint(r, checker{})
	codes := map[string]string{}
	for _, i := range issues {
		codes[i.Code] = i.Severity
	}
	assert.Equal(t, map[string]string{
		"field_duplicate":   SeverityError,
		"type_unknown":      SeverityError,
		"db_suspicious":     SeverityWarning,
		"field_name_empty":  SeverityError,
		"exclude_unknown":   SeverityError,
		"extension_unknown": SeverityError,
		"no_fields":         SeverityError,
	}, codes)
	assert.Len(t, Blocking(issues), len(issues)-1)
}
