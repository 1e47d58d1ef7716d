package label

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultText(t *testing.T) {
	assert.Equal(t, "Publish Date", DefaultText("publish_date", "tx_blog_domain_model_post"))
	assert.Equal(t, "Publish Date", DefaultText("publishDate", ""))
	assert.Equal(t, "Post", DefaultText("", "tx_blog_domain_model_posts"))
	assert.Equal(t, "Page", DefaultText("", "pages"))
}

func TestLayout(t *testing.T) {
	l := Layout{}
	assert.Equal(t, "LLL:EXT:blog/Resources/Private/Language/locallang.xlf:tx_blog_domain_model_post.title",
		l.Reference("tx_blog_domain_model_post.title", "blog", "tx_blog_domain_model_post"))

	perTable := Layout{PerTable: true}
	assert.Equal(t, "LLL:EXT:blog/Resources/Private/Language/tx_blog_domain_model_post.xlf:title",
		perTable.Reference("title", "blog", "tx_blog_domain_model_post"))
	assert.Contains(t, perTable.HelpMessage("title", "blog", "tx_x"), `"title"`)
}

func TestMemoryCatalog(t *testing.T) {
	m := NewMemory(Layout{})

	assert.Contains(t, m.Resolve("t.title", "blog", "t"), "Please translate")

	res := m.Ensure("t.title", "blog", "title", "t")
	assert.Equal(t, StatusRegistered, res.Status)
	assert.Equal(t, StatusExisting, m.Ensure("t.title", "blog", "title", "t").Status)

	assert.Equal(t, "LLL:EXT:blog/Resources/Private/Language/locallang.xlf:t.title", m.Resolve("t.title", "blog", "t"))
	text, ok := m.Text("t.title", "blog", "t")
	require.True(t, ok)
	assert.Equal(t, "Title", text)
}

func TestXLIFFCatalogWritesAndReloads(t *testing.T) {
	root := t.TempDir()
	x := NewXLIFF(root, Layout{})

	res := x.Ensure("tx_blog_domain_model_post.title", "blog", "title", "tx_blog_domain_model_post")
	require.Equal(t, StatusRegistered, res.Status, res.Err)
	require.Equal(t, StatusRegistered, x.Ensure("tx_blog_domain_model_post", "blog", "", "tx_blog_domain_model_post").Status)

	data, err := os.ReadFile(filepath.Join(root, "blog", "Resources", "Private", "Language", "locallang.xlf"))
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, "<?xml"))
	assert.Contains(t, content, `<trans-unit id="tx_blog_domain_model_post.title">`)
	assert.Contains(t, content, "<source>Title</source>")
	assert.Contains(t, content, "<source>Post</source>")

	fresh := NewXLIFF(root, Layout{})
	assert.Equal(t, StatusExisting, fresh.Ensure("tx_blog_domain_model_post.title", "blog", "title", "tx_blog_domain_model_post").Status)
	assert.Equal(t,
		"LLL:EXT:blog/Resources/Private/Language/locallang.xlf:tx_blog_domain_model_post.title",
		fresh.Resolve("tx_blog_domain_model_post.title", "blog", "tx_blog_domain_model_post"))
}

func TestXLIFFCatalogFailure(t *testing.T) {
	root := t.TempDir()
	// файл на месте каталога расширения — запись невозможна
	require.NoError(t, os.WriteFile(filepath.Join(root, "blog"), []byte("x"), 0o644))

	x := NewXLIFF(root, Layout{})
	res := x.Ensure("k", "blog", "title", "t")
	assert.True(t, res.Failed())
	assert.Error(t, res.Err)
	assert.Contains(t, x.Resolve("k", "blog", "t"), "Please translate")
}

func TestXLIFFCatalogBrokenFile(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "blog", "Resources", "Private", "Language")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "locallang.xlf"), []byte("<xliff><file>"), 0o644))

	res := NewXLIFF(root, Layout{}).Ensure("k", "blog", "title", "t")
	assert.Equal(t, StatusFailed, res.Status)
}

func TestXLIFFCatalogReadOnly(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "blog", "Resources", "Private", "Language", "locallang.xlf")

	writer := NewXLIFF(root, Layout{})
	require.Equal(t, StatusRegistered, writer.Ensure("tx_blog_domain_model_post.title", "blog", "title", "tx_blog_domain_model_post").Status)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	x := NewXLIFF(root, Layout{})
	x.ReadOnly = true
	assert.Equal(t, StatusExisting, x.Ensure("tx_blog_domain_model_post.title", "blog", "title", "tx_blog_domain_model_post").Status)
	assert.Equal(t, StatusRegistered, x.Ensure("tx_blog_domain_model_post.body", "blog", "body", "tx_blog_domain_model_post").Status)
	assert.Equal(t,
		"LLL:EXT:blog/Resources/Private/Language/locallang.xlf:tx_blog_domain_model_post.body",
		x.Resolve("tx_blog_domain_model_post.body", "blog", "tx_blog_domain_model_post"))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	res := x.Ensure("tx_news_domain_model_item.title", "news", "title", "tx_news_domain_model_item")
	assert.Equal(t, StatusRegistered, res.Status)
	_, err = os.Stat(filepath.Join(root, "news"))
	assert.True(t, os.IsNotExist(err))
}
