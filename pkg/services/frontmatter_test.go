package services

import (
	"testing"
	"testing/fstest"

	"history-browser/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontMatterYAML(t *testing.T) {
	fm, body, format, err := ParseFrontMatter([]byte("---\ntitle: The Vikings\nweight: 2\n---\n\nSeafaring Norse people.\n"))
	require.NoError(t, err)
	assert.Equal(t, "yaml", format)
	assert.Equal(t, "The Vikings", frontMatterString(fm, "title"))
	weight, ok := frontMatterInt(fm, "weight")
	assert.True(t, ok)
	assert.Equal(t, 2, weight)
	assert.Equal(t, "Seafaring Norse people.", body)
}

func TestParseFrontMatterTOML(t *testing.T) {
	fm, body, format, err := ParseFrontMatter([]byte("+++\r\ntitle = \"World War I\"\r\nweight = 7\r\n+++\r\nThe Great War.\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "toml", format)
	assert.Equal(t, "World War I", frontMatterString(fm, "title"))
	weight, ok := frontMatterInt(fm, "weight")
	assert.True(t, ok)
	assert.Equal(t, 7, weight)
	assert.Equal(t, "The Great War.", body)
}

func TestParseFrontMatterBodyMayContainDelimiter(t *testing.T) {
	_, body, _, err := ParseFrontMatter([]byte("---\ntitle: A\n---\nbefore\n---\nafter"))
	require.NoError(t, err)
	assert.Equal(t, "before\n---\nafter", body)
}

func TestParseFrontMatterErrors(t *testing.T) {
	_, _, _, err := ParseFrontMatter([]byte("just text"))
	assert.EqualError(t, err, "unknown format")

	_, _, _, err = ParseFrontMatter([]byte("---\ntitle: [unclosed\n---\nbody"))
	assert.ErrorContains(t, err, "yaml front matter")

	_, _, _, err = ParseFrontMatter([]byte("+++\ntitle = \n+++\nbody"))
	assert.ErrorContains(t, err, "toml front matter")
}

func TestFrontMatterFieldHelpers(t *testing.T) {
	fm := map[string]interface{}{"title": 42, "weight": "high"}
	assert.Equal(t, "", frontMatterString(fm, "title"))
	_, ok := frontMatterInt(fm, "weight")
	assert.False(t, ok)
	_, ok = frontMatterInt(fm, "missing")
	assert.False(t, ok)
}

func TestParseFrontMatterDelimiterInsideValue(t *testing.T) {
	fm, body, _, err := ParseFrontMatter([]byte("---\ntitle: \"A---B\"\nweight: 3\n---\nBody text"))
	require.NoError(t, err)
	assert.Equal(t, "A---B", frontMatterString(fm, "title"))
	weight, _ := frontMatterInt(fm, "weight")
	assert.Equal(t, 3, weight)
	assert.Equal(t, "Body text", body)

	fm, body, _, err = ParseFrontMatter([]byte("+++\ntitle = \"C+++D\"\n+++\nMore"))
	require.NoError(t, err)
	assert.Equal(t, "C+++D", frontMatterString(fm, "title"))
	assert.Equal(t, "More", body)
}

func TestParseFrontMatterHeaderOnly(t *testing.T) {
	fm, body, format, err := ParseFrontMatter([]byte("---\ntitle: Lone\n---"))
	require.NoError(t, err)
	assert.Equal(t, "yaml", format)
	assert.Equal(t, "Lone", frontMatterString(fm, "title"))
	assert.Equal(t, "", body)

	_, _, _, err = ParseFrontMatter([]byte("---\ntitle: Unclosed\n"))
	assert.EqualError(t, err, "unknown format")
}

func TestLoadLibraryTitleWithDashes(t *testing.T) {
	lib, err := LoadLibrary(fstest.MapFS{
		"ancient/a.md": {Data: []byte("---\ntitle: \"Rome---Carthage\"\n---\nPunic wars.")},
	})
	require.NoError(t, err)
	list, _ := lib.Articles(models.Ancient)
	require.Len(t, list, 1)
	assert.Equal(t, "Rome---Carthage", list[0].Title)
	assert.Equal(t, "Punic wars.", list[0].Content)
}
