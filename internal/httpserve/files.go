package httpserve

import (
	"errors"
	"fmt"
	"html"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

type fileHandler struct {
	root string // symlink-free absolute path
	log  *slog.Logger
}

// contain rejects requests whose path escapes the root before handing them
// to next. It guards the http.FileServer mount, which follows symlinks.
func (h *fileHandler) contain(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := h.resolve(r.URL.Path); !ok {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *fileHandler) serveRoot(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "")
}

func (h *fileHandler) serve(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, chi.URLParam(r, "*"))
}

func (h *fileHandler) respond(w http.ResponseWriter, r *http.Request, rel string) {
	p, ok := h.resolve(rel)
	if !ok {
		http.NotFound(w, r)
		return
	}

	fi, err := os.Stat(p)
	if errors.Is(err, fs.ErrNotExist) {
		http.Error(w, "file not found: "+rel, http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Warn("stat failed", "path", p, "error", err)
		http.Error(w, "error reading file", http.StatusInternalServerError)
		return
	}

	if fi.IsDir() {
		h.listDir(w, r, p, rel)
		return
	}

	f, err := os.Open(p)
	if err != nil {
		h.log.Warn("open failed", "path", p, "error", err)
		http.Error(w, "error reading file", http.StatusInternalServerError)
		return
	}
	defer f.Close()
	h.log.Debug("serving file", "path", p, "bytes", fi.Size())
	http.ServeContent(w, r, fi.Name(), fi.ModTime(), f)
}

// resolve maps a request path onto the root. Paths with ".." segments
// are refused outright, as are existing paths whose symlinks lead outside
// the root. A path that does not exist resolves lexically and 404s later.
func (h *fileHandler) resolve(rel string) (string, bool) {
	if u, err := url.PathUnescape(rel); err == nil {
		rel = u
	}
	for _, seg := range strings.FieldsFunc(rel, func(r rune) bool { return r == '/' || r == '\\' }) {
		if seg == ".." {
			return "", false
		}
	}
	clean := path.Clean("/" + rel)
	p := filepath.Join(h.root, filepath.FromSlash(clean))

	target, err := filepath.EvalSymlinks(p)
	if err != nil {
		return p, errors.Is(err, fs.ErrNotExist)
	}
	if !within(h.root, target) {
		return "", false
	}
	return p, true
}

func within(root, p string) bool {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func (h *fileHandler) listDir(w http.ResponseWriter, r *http.Request, dir, rel string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		h.log.Warn("read dir failed", "path", dir, "error", err)
		http.Error(w, "error reading directory", http.StatusInternalServerError)
		return
	}

	var b strings.Builder
	b.WriteString("<html><body><ul>")
	for _, e := range entries {
		name := e.Name()
		href := path.Join("/", rel, name)
		if e.IsDir() {
			name += "/"
			href += "/"
		}
		fmt.Fprintf(&b, `<li><a href="%s">%s</a></li>`,
			html.EscapeString((&url.URL{Path: href}).EscapedPath()), html.EscapeString(name))
	}
	b.WriteString("</ul></body></html>")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(b.String()))
}
