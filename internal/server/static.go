package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

const apiPrefix = "/api/"

// mountStatic installs the catch-all route. Unknown API paths always get a
// JSON 404; everything else is served from the SPA bundle when one is present.
func (s *Server) mountStatic() {
	index, ok := s.spaIndex()
	if !ok {
		s.engine.NoRoute(spaHandler(nil, ""))
		return
	}
	s.engine.NoRoute(spaHandler(gin.Dir(s.staticDir, false), index))
}

// spaIndex locates index.html in the static directory.
func (s *Server) spaIndex() (string, bool) {
	if s.staticDir == "" {
		s.logger.Warn("static directory not configured; serving API only")
		return "", false
	}
	index := filepath.Join(s.staticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		s.logger.Warn("SPA bundle unavailable; serving API only", "path", index, "error", err)
		return "", false
	}
	return index, true
}

// spaHandler serves files from root and falls back to index for client-side
// routes such as /sprints/3. A nil root serves nothing but the API 404.
func spaHandler(root http.FileSystem, index string) gin.HandlerFunc {
	var files http.Handler
	if root != nil {
		files = http.FileServer(root)
	}
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, apiPrefix) || root == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
			return
		}
		if isFile(root, path) {
			files.ServeHTTP(c.Writer, c.Request)
			return
		}
		c.File(index)
	}
}

func isFile(root http.FileSystem, path string) bool {
	if path == "/" {
		return false
	}
	f, err := root.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	info, err := f.Stat()
	return err == nil && !info.IsDir()
}
