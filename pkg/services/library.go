package services

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"history-browser/pkg/models"
)

//go:embed content
var embeddedContent embed.FS

var (
	embeddedLibrary *Library
	embeddedErr     error
	embeddedOnce    sync.Once
)

// Library is the read-only dataset of articles keyed by era.
type Library struct {
	articles map[models.Era][]models.Article
}

// NewLibrary builds a library from an in-memory mapping. Every known era is
// present afterwards, possibly with no articles. Keys outside the era set
// are rejected.
func NewLibrary(articles map[models.Era][]models.Article) (*Library, error) {
	lib := &Library{articles: make(map[models.Era][]models.Article, len(models.Eras()))}
	for _, era := range models.Eras() {
		lib.articles[era] = nil
	}
	for era, list := range articles {
		if !era.Valid() {
			return nil, fmt.Errorf("unknown era %q", era)
		}
		lib.articles[era] = append([]models.Article(nil), list...)
	}
	return lib, nil
}

// EmbeddedLibrary returns the library compiled into the binary. It is
// parsed once and shared afterwards.
func EmbeddedLibrary() (*Library, error) {
	embeddedOnce.Do(func() {
		sub, err := fs.Sub(embeddedContent, "content")
		if err != nil {
			embeddedErr = err
			return
		}
		embeddedLibrary, embeddedErr = LoadLibrary(sub)
	})
	return embeddedLibrary, embeddedErr
}

// OpenLibrary loads articles from dir, or the embedded set when dir is empty.
func OpenLibrary(dir string) (*Library, error) {
	if dir == "" {
		return EmbeddedLibrary()
	}
	return LoadLibrary(os.DirFS(dir))
}

type articleFile struct {
	name    string
	weight  int
	article models.Article
}

// LoadLibrary reads <era>/*.md files from fsys. Each file carries a title
// and an optional weight in its front matter; the body is the content.
func LoadLibrary(fsys fs.FS) (*Library, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read content root: %w", err)
	}

	articles := make(map[models.Era][]models.Article)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		era, ok := models.ParseEra(entry.Name())
		if !ok {
			return nil, fmt.Errorf("unknown era directory %q", entry.Name())
		}
		list, err := loadEra(fsys, entry.Name())
		if err != nil {
			return nil, err
		}
		articles[era] = list
	}
	return NewLibrary(articles)
}

func loadEra(fsys fs.FS, dir string) ([]models.Article, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var files []articleFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		p := path.Join(dir, entry.Name())
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		fm, body, _, err := ParseFrontMatter(content)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		title := frontMatterString(fm, "title")
		if title == "" {
			return nil, fmt.Errorf("parse %s: missing title", p)
		}
		weight, _ := frontMatterInt(fm, "weight")
		files = append(files, articleFile{
			name:    entry.Name(),
			weight:  weight,
			article: models.Article{Title: title, Content: body},
		})
	}

	sort.SliceStable(files, func(i, j int) bool {
		if files[i].weight != files[j].weight {
			return files[i].weight < files[j].weight
		}
		return files[i].name < files[j].name
	})

	list := make([]models.Article, 0, len(files))
	for _, f := range files {
		list = append(list, f.article)
	}
	return list, nil
}

// Articles returns a copy of the era's articles in display order. ok is
// false when the era is not part of the library.
func (l *Library) Articles(era models.Era) ([]models.Article, bool) {
	list, ok := l.articles[era]
	if !ok {
		return nil, false
	}
	return append([]models.Article(nil), list...), true
}

// Counts reports the number of articles per era.
func (l *Library) Counts() map[models.Era]int {
	counts := make(map[models.Era]int, len(l.articles))
	for era, list := range l.articles {
		counts[era] = len(list)
	}
	return counts
}

// Search returns every article whose title or content contains query,
// ignoring case. Results follow era order, then article order.
func (l *Library) Search(query string) []models.SearchResult {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var results []models.SearchResult
	for _, era := range models.Eras() {
		for _, article := range l.articles[era] {
			if strings.Contains(strings.ToLower(article.Title), query) ||
				strings.Contains(strings.ToLower(article.Content), query) {
				results = append(results, models.SearchResult{Article: article, Era: era})
			}
		}
	}
	return results
}
