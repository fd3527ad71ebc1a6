package routes

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/nerdytips/internal/domain/error"
	coreport "github.com/amirhossein-jamali/nerdytips/internal/domain/port/core"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/api/dto"
)

// ClientConfig selects how the browser client is served
type ClientConfig struct {
	// Production serves the built client from StaticDir,
	// otherwise requests are proxied to the dev server at DevProxyURL
	Production  bool
	StaticDir   string
	DevProxyURL string
}

// SetupClient installs the fallback that serves the single-page client.
// Unknown /api paths always answer with a JSON 404.
func SetupClient(router *gin.Engine, config ClientConfig, logger coreport.Logger) error {
	var serveClient gin.HandlerFunc
	if config.Production {
		serveClient = staticClient(config.StaticDir)
		logger.Info("Serving built client", map[string]any{"dir": config.StaticDir})
	} else {
		target, err := url.Parse(config.DevProxyURL)
		if err != nil || target.Scheme == "" || target.Host == "" {
			return fmt.Errorf("invalid dev proxy url %q", config.DevProxyURL)
		}
		serveClient = devProxy(target, logger)
		logger.Info("Proxying client requests to dev server", map[string]any{"target": target.String()})
	}

	router.NoRoute(func(c *gin.Context) {
		if c.Request.URL.Path == "/api" || strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "Not found",
				Code:  domainerr.CodeInvalidRequest,
			})
			return
		}
		serveClient(c)
	})
	return nil
}

// staticClient serves files that exist under dir and index.html for every
// other path so client-side routes survive a reload
func staticClient(dir string) gin.HandlerFunc {
	root := filepath.Clean(dir)
	index := filepath.Join(root, "index.html")

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusNotFound)
			return
		}

		name := filepath.Join(root, filepath.FromSlash(filepath.Clean("/"+c.Request.URL.Path)))
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			c.File(name)
			return
		}
		c.File(index)
	}
}

func devProxy(target *url.URL, logger coreport.Logger) gin.HandlerFunc {
	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Warn("Dev server unreachable", map[string]any{
			"path":  r.URL.Path,
			"error": err.Error(),
		})
		w.WriteHeader(http.StatusBadGateway)
	}

	return func(c *gin.Context) {
		proxy.ServeHTTP(c.Writer, c.Request)
	}
}
