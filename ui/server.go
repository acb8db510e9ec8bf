package ui

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/rs/zerolog"

	"github.com/adityapatri279312/excel-data-analyzer/internal/engine"
)

// Server previews a generated report bundle over HTTP: the markdown
// document rendered to HTML at /, chart images under /visualizations/.
type Server struct {
	router    *chi.Mux
	outputDir string
	log       zerolog.Logger
}

// NewServer creates a preview server for the given output directory.
func NewServer(outputDir string, log zerolog.Logger) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		outputDir: outputDir,
		log:       log,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(middleware.Recoverer)
	s.router.Get("/", s.handleReport)

	chartsDir := filepath.Join(s.outputDir, engine.ChartsDirname)
	fileServer := http.StripPrefix("/"+engine.ChartsDirname+"/", http.FileServer(http.Dir(chartsDir)))
	s.router.Get("/"+engine.ChartsDirname+"/*", fileServer.ServeHTTP)
}

// Router exposes the handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start blocks serving the preview until the listener fails.
func (s *Server) Start(port int) error {
	addr := fmt.Sprintf(":%d", port)
	s.log.Info().Str("addr", addr).Str("dir", s.outputDir).Msg("serving report preview")

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	reportPath := filepath.Join(s.outputDir, engine.ReportFilename)
	source, err := os.ReadFile(reportPath)
	if err != nil {
		s.log.Error().Err(err).Str("path", reportPath).Msg("report not found")
		http.Error(w, "no report generated yet", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, pageHeader)
	w.Write(renderHTML(source))
	fmt.Fprint(w, pageFooter)
}

// renderHTML converts the markdown report to an HTML fragment. Parser
// instances are single-use, so one is built per call.
func renderHTML(source []byte) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	doc := p.Parse(source)

	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.Render(doc, renderer)
}

const pageHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Data Analysis Report</title>
<style>
body { font-family: sans-serif; max-width: 60rem; margin: 2rem auto; padding: 0 1rem; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.6rem; }
img { max-width: 100%; }
</style>
</head>
<body>
`

const pageFooter = `</body>
</html>
`
