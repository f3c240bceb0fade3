// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site and
// the admin interface. Admin pages support full-page and HTMX partial
// rendering, automatically detecting the request type via the HX-Request
// header. Public pages render to bytes so handlers can cache the output.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"
	"time"

	"sisumaja/internal/middleware"
	"sisumaja/internal/session"
	"sisumaja/internal/stats"
	"sisumaja/internal/youtube"
)

//go:embed templates/admin/*.html templates/public/*.html
var templateFS embed.FS

// PageData holds all data passed to admin templates.
type PageData struct {
	Title     string         // Page title for <title> tag
	Section   string         // Active sidebar section (e.g., "dashboard", "projects")
	Session   *session.Data  // Current user session (nil if unauthenticated)
	CSRFToken string         // CSRF token for forms and HTMX headers
	Data      map[string]any // Page-specific data
	Flashes   []Flash        // One-time notification messages
}

// Flash represents a one-time notification message displayed to the user.
type Flash struct {
	Type    string // "success", "error", "warning", "info"
	Message string
}

// PublicData holds all data passed to public templates.
type PublicData struct {
	Title string
	Data  map[string]any
}

// Renderer handles template parsing and execution.
type Renderer struct {
	admin   map[string]*template.Template
	public  map[string]*template.Template
	funcMap template.FuncMap
}

// standaloneTemplates lists admin templates that render as full HTML pages
// without the base layout (they have their own <html>, <head>, etc.).
var standaloneTemplates = map[string]bool{
	"login":      true,
	"2fa_setup":  true,
	"2fa_verify": true,
}

// New creates a Renderer by parsing all templates from the embedded
// filesystem. Each admin page template is paired with the admin base
// layout; each public page with the public layout.
// When devMode is true, templates use CDN-hosted assets (TailwindCSS, HTMX);
// when false, they reference compiled local static files.
func New(devMode bool) (*Renderer, error) {
	r := &Renderer{
		admin:  make(map[string]*template.Template),
		public: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			"activeClass": func(current, target string) string {
				if current == target {
					return "bg-gray-900 text-white"
				}
				return "text-gray-300 hover:bg-gray-700 hover:text-white"
			},
			// deref safely dereferences a string pointer for use in templates.
			"deref": func(s *string) string {
				if s == nil {
					return ""
				}
				return *s
			},
			// isDev returns true when the app runs in development mode.
			// Used by templates to conditionally load CDN vs local assets.
			"isDev": func() bool {
				return devMode
			},
			// statDisplay formats a stored stat value for display, or ""
			// when the field should be omitted.
			"statDisplay": func(raw *string) string {
				if raw == nil {
					return ""
				}
				v, ok := stats.Display(*raw)
				if !ok {
					return ""
				}
				return v
			},
			// embedURL converts a YouTube URL to its embeddable form, or ""
			// when no valid video ID is present.
			"embedURL": func(rawURL string) string {
				u, ok := youtube.EmbedURL(rawURL)
				if !ok {
					return ""
				}
				return u
			},
			// dateISO formats a timestamp for <input type="date"> values.
			"dateISO": func(t *time.Time) string {
				if t == nil {
					return ""
				}
				return t.Format("2006-01-02")
			},
			// joinLines renders a list for a newline-separated textarea.
			"joinLines": func(items []string) string {
				return strings.Join(items, "\n")
			},
			// dateET formats a timestamp the Estonian way (d. month yyyy).
			"dateET": func(t *time.Time) string {
				if t == nil {
					return ""
				}
				months := []string{"jaanuar", "veebruar", "märts", "aprill", "mai", "juuni",
					"juuli", "august", "september", "oktoober", "november", "detsember"}
				return fmt.Sprintf("%d. %s %d", t.Day(), months[t.Month()-1], t.Year())
			},
			// isVideoFile reports whether a gallery URL points at a video
			// by extension, so carousels know which element to render.
			"isVideoFile": func(rawURL string) bool {
				lower := strings.ToLower(rawURL)
				for _, ext := range []string{".mp4", ".webm", ".mov"} {
					if strings.HasSuffix(lower, ext) {
						return true
					}
				}
				return false
			},
			"nl2br": func(s string) template.HTML {
				escaped := template.HTMLEscapeString(s)
				return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
			},
			"add": func(a, b int) int { return a + b },
			"sub": func(a, b int) int { return a - b },
			"seq": func(n int) []int {
				out := make([]int, n)
				for i := range out {
					out[i] = i
				}
				return out
			},
		},
	}

	if err := r.parseDir("admin", r.admin, "templates/admin/base.html"); err != nil {
		return nil, err
	}
	if err := r.parseDir("public", r.public, "templates/public/layout.html"); err != nil {
		return nil, err
	}

	return r, nil
}

// parseDir parses every page template in a template directory, pairing it
// with the given layout unless it is standalone.
func (rn *Renderer) parseDir(dir string, dest map[string]*template.Template, layout string) error {
	entries, err := templateFS.ReadDir("templates/" + dir)
	if err != nil {
		return fmt.Errorf("read embedded templates: %w", err)
	}

	layoutBase := layout[strings.LastIndex(layout, "/")+1:]

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if name == layoutBase {
			continue
		}

		// Strip .html extension for the template name.
		tmplName := name[:len(name)-len(".html")]

		var tmpl *template.Template
		var parseErr error

		if dir == "admin" && standaloneTemplates[tmplName] {
			tmpl, parseErr = template.New(name).Funcs(rn.funcMap).ParseFS(
				templateFS, "templates/admin/"+name,
			)
		} else {
			tmpl, parseErr = template.New(layoutBase).Funcs(rn.funcMap).ParseFS(
				templateFS, layout, "templates/"+dir+"/"+name,
			)
		}

		if parseErr != nil {
			return fmt.Errorf("parse template %s: %w", name, parseErr)
		}

		dest[tmplName] = tmpl
	}
	return nil
}

// Page renders a full admin page or an HTMX partial, depending on the
// request headers. For HTMX requests, only the "content" block is sent.
// For full page loads, the entire base layout is rendered.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	tmpl, ok := rn.admin[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	// Inject CSRF token from the request cookie (set by CSRF middleware).
	data.CSRFToken = middleware.GetCSRFToken(r)

	// Inject session from context.
	if data.Session == nil {
		data.Session = middleware.SessionFromCtx(r.Context())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	// HTMX request: render only the content fragment.
	if IsHTMX(r) {
		if err := executeTemplate(w, tmpl, "content", data); err != nil {
			http.Error(w, "template error", http.StatusInternalServerError)
		}
		return
	}

	// Full page request: render the complete layout.
	execName := "base.html"
	// Standalone pages use their own root template (not base.html).
	if standaloneTemplates[name] {
		execName = name + ".html"
	}

	if err := executeTemplate(w, tmpl, execName, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// Fragment renders a single named block from an admin template. Used by
// the HTMX endpoints that rebuild parts of the project form.
func (rn *Renderer) Fragment(w http.ResponseWriter, name, block string, data any) {
	tmpl, ok := rn.admin[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := executeTemplate(w, tmpl, block, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// PublicHTML renders a public page to bytes so the handler can store the
// result in the page cache before writing it out.
func (rn *Renderer) PublicHTML(name string, data *PublicData) ([]byte, error) {
	tmpl, ok := rn.public[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}

	var buf bytes.Buffer
	if err := executeTemplate(&buf, tmpl, "layout.html", data); err != nil {
		return nil, fmt.Errorf("render public %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// executeTemplate wraps template execution with error handling.
func executeTemplate(w io.Writer, tmpl *template.Template, name string, data any) error {
	return tmpl.ExecuteTemplate(w, name, data)
}

// IsHTMX returns true if the request was made by HTMX (has HX-Request header).
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
