package web

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
)

// pageTemplates lists every page rendered inside the base layout.
var pageTemplates = []string{
	"index.html",
	"edit.html",
	"login.html",
	"settings.html",
	"messages.html",
	"errors/400.html",
	"errors/404.html",
	"errors/500.html",
}

// Renderer parses the embedded templates once and renders pages inside the
// shared base layout.
type Renderer struct {
	pages  map[string]*template.Template
	logger *slog.Logger
}

// NewRenderer parses all embedded page templates. It panics on a malformed
// template, which is a build defect rather than a runtime condition.
func NewRenderer(logger *slog.Logger) *Renderer {
	pages := make(map[string]*template.Template, len(pageTemplates))
	for _, page := range pageTemplates {
		pages[page] = template.Must(template.ParseFS(
			templatesFS,
			"templates/base.html",
			"templates/"+page,
		))
	}

	return &Renderer{pages: pages, logger: logger}
}

// Render writes the named page with the given status code. A missing page name
// or a template execution failure degrades to a plain 500.
func (rd *Renderer) Render(w http.ResponseWriter, status int, page string, data any) {
	tmpl, ok := rd.pages[page]
	if !ok {
		rd.logger.Error("unknown template", "page", page)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		// Headers are already out; all we can do is log.
		rd.logger.Error("render template", "page", page, "error", err)
	}
}

// RenderMarkdownHTML exposes sanitized markdown to templates as trusted HTML.
func RenderMarkdownHTML(src string) template.HTML {
	return template.HTML(RenderMarkdown(src))
}

func pageTitle(owner string) string {
	if owner == "" {
		return "Watchlist"
	}
	return fmt.Sprintf("%s's Watchlist", owner)
}
