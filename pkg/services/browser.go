package services

import (
	"strings"

	"history-browser/pkg/models"
)

const (
	MessageNoContent = "No content found for this period."
	MessageNoResults = "No results found for your search."
)

// Block is one rendered article inside the content container. Source holds
// the era label for search results and is empty in an era view.
type Block struct {
	Title   string
	Content string
	Source  string
}

// View is the content container. Either Blocks or Message is set.
type View struct {
	Blocks  []Block
	Message string
}

// State is the UI state owned by a Browser: the active navigation link, the
// value of the search input and the era key last rendered. Shown keeps the
// key even when it names no era, so the fallback view can be drawn again.
type State struct {
	Active    models.Era
	HasActive bool
	Query     string
	Shown     string
}

// NavLink is a navigation entry tagged with its era.
type NavLink struct {
	Era    models.Era
	Label  string
	Active bool
}

// Browser renders eras and search results from a Library into a View.
// It is not safe for concurrent use; create one per interaction.
type Browser struct {
	library *Library
	state   State
	view    View
}

func NewBrowser(library *Library, state State) *Browser {
	if state.HasActive && !state.Active.Valid() {
		state.Active, state.HasActive = "", false
	}
	return &Browser{library: library, state: state}
}

func (b *Browser) State() State {
	return b.state
}

// View returns the most recently rendered container.
func (b *Browser) View() View {
	return b.view
}

// Load handles the initial page load: the default era is shown and marked
// and the search input starts empty.
func (b *Browser) Load() View {
	view := b.RenderEra(string(models.DefaultEra))
	b.SetActiveLink(string(models.DefaultEra))
	b.state.Query = ""
	return view
}

// Navigate handles a click on a navigation link. The search input is cleared.
func (b *Browser) Navigate(name string) View {
	view := b.RenderEra(name)
	b.SetActiveLink(name)
	b.state.Query = ""
	return view
}

// RenderEra replaces the container with the articles of the named era.
func (b *Browser) RenderEra(name string) View {
	b.view = View{}
	b.state.Shown = name

	era, ok := models.ParseEra(name)
	if !ok {
		b.view.Message = MessageNoContent
		return b.view
	}
	articles, ok := b.library.Articles(era)
	if !ok || len(articles) == 0 {
		b.view.Message = MessageNoContent
		return b.view
	}

	b.view.Blocks = make([]Block, 0, len(articles))
	for _, article := range articles {
		b.view.Blocks = append(b.view.Blocks, Block{Title: article.Title, Content: article.Content})
	}
	return b.view
}

// Search renders every article matching query. A blank query restores the
// default era view. The search input keeps its value either way.
func (b *Browser) Search(query string) View {
	b.state.Query = query
	if strings.TrimSpace(query) == "" {
		view := b.RenderEra(string(models.DefaultEra))
		b.SetActiveLink(string(models.DefaultEra))
		return view
	}

	b.view = View{}
	b.state.Shown = ""
	results := b.library.Search(query)
	if len(results) == 0 {
		b.view.Message = MessageNoResults
	} else {
		b.view.Blocks = make([]Block, 0, len(results))
		for _, result := range results {
			b.view.Blocks = append(b.view.Blocks, Block{
				Title:   result.Title,
				Content: result.Content,
				Source:  result.Era.Label(),
			})
		}
	}
	b.ClearActiveLinks()
	return b.view
}

// Restore re-renders whatever the state describes: the pending search, the
// last rendered era key, or the default view when nothing was shown yet.
// Active marks are left as they were.
func (b *Browser) Restore() View {
	switch {
	case strings.TrimSpace(b.state.Query) != "":
		return b.Search(b.state.Query)
	case b.state.Shown != "":
		return b.RenderEra(b.state.Shown)
	case b.state.HasActive:
		return b.RenderEra(string(b.state.Active))
	default:
		return b.Load()
	}
}

// SetActiveLink marks the link tagged name and unmarks every other one. An
// unknown name leaves no link marked.
func (b *Browser) SetActiveLink(name string) {
	era, ok := models.ParseEra(name)
	if !ok {
		b.ClearActiveLinks()
		return
	}
	b.state.Active, b.state.HasActive = era, true
}

func (b *Browser) ClearActiveLinks() {
	b.state.Active, b.state.HasActive = "", false
}

// Links lists the navigation entries in era order.
func (b *Browser) Links() []NavLink {
	eras := models.Eras()
	links := make([]NavLink, 0, len(eras))
	for _, era := range eras {
		links = append(links, NavLink{
			Era:    era,
			Label:  era.Label(),
			Active: b.state.HasActive && b.state.Active == era,
		})
	}
	return links
}
