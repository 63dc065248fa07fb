// Package web serves the HTML form and JSON batch APIs around the citation
// normalizer. Handlers are thin consumers of the batch package.
package web

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"autoquote/src/internal/batch"
)

//go:embed templates/index.html
var templatesFS embed.FS

// maxBody bounds request bodies; each line is further bounded by the parser.
const maxBody = 1 << 20

type server struct {
	tmpl *template.Template
}

type pageData struct {
	InputText string
	Mode      string
	Results   []batch.Result
}

// NewHandler returns the HTTP handler tree for the normalizer front end.
func NewHandler() http.Handler {
	s := &server{tmpl: template.Must(template.ParseFS(templatesFS, "templates/index.html"))}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.index)
	mux.HandleFunc("POST /parse", s.parseForm)
	mux.HandleFunc("POST /api/parse", s.apiParse)
	mux.HandleFunc("POST /api/parse-text", s.apiParseText)
	return mux
}

func (s *server) index(w http.ResponseWriter, r *http.Request) {
	s.render(w, pageData{})
}

func (s *server) parseForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	refs := r.PostFormValue("references")
	mode := r.PostFormValue("mode")
	var results []batch.Result
	if mode == "bibitem" {
		results = batch.RunBibItems(refs)
	} else {
		results = batch.Run(refs)
	}
	s.render(w, pageData{InputText: refs, Mode: mode, Results: results})
}

func (s *server) apiParse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	var req struct {
		Lines []string `json:"lines"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	results := make([]batch.Result, 0, len(req.Lines))
	for _, line := range req.Lines {
		results = append(results, batch.Line(line))
	}
	writeJSON(w, results)
}

func (s *server) apiParseText(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	writeJSON(w, batch.Run(r.PostFormValue("text")))
}

func (s *server) render(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}
