package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"autoquote/src/internal/batch"
)

func TestIndexPage(t *testing.T) {
	h := NewHandler()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /: status %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("GET /: content type %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "AutoQuote") {
		t.Fatalf("GET /: page missing title")
	}
}

func TestIndexUnknownPath(t *testing.T) {
	h := NewHandler()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("GET /nope: status %d", rec.Code)
	}
}

func TestAPIParse(t *testing.T) {
	h := NewHandler()
	body := `{"lines":["INNFOS. Robots[EB/OL]. (2020-01-01) [2020-04-30]. https://innfos.com/","garbage"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/parse", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /api/parse: status %d body %q", rec.Code, rec.Body.String())
	}
	var results []batch.Result
	if err := json.NewDecoder(rec.Body).Decode(&results); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("want 2 results, got %d", len(results))
	}
	if !results[0].Success || results[0].Type != "web" {
		t.Fatalf("result[0]: %+v", results[0])
	}
	if results[1].Success || results[1].Error == "" {
		t.Fatalf("result[1]: %+v", results[1])
	}
}

func TestAPIParseBadJSON(t *testing.T) {
	h := NewHandler()
	req := httptest.NewRequest(http.MethodPost, "/api/parse", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad json: status %d", rec.Code)
	}
}

func TestAPIParseText(t *testing.T) {
	h := NewHandler()
	form := url.Values{"text": {"刘伟. 机器人学基础[M]. 北京: 清华大学出版社, 2018.\n\nnonsense"}}
	req := httptest.NewRequest(http.MethodPost, "/api/parse-text", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /api/parse-text: status %d", rec.Code)
	}
	var results []batch.Result
	if err := json.NewDecoder(rec.Body).Decode(&results); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("want 2 results, got %d", len(results))
	}
	if !results[0].Success || results[0].Type != "book" {
		t.Fatalf("result[0]: %+v", results[0])
	}
}

func TestParseFormRendersResults(t *testing.T) {
	h := NewHandler()
	form := url.Values{"references": {"INNFOS. Robots[EB/OL]. (2020-01-01) [2020-04-30]. https://innfos.com/"}}
	req := httptest.NewRequest(http.MethodPost, "/parse", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /parse: status %d", rec.Code)
	}
	page := rec.Body.String()
	if !strings.Contains(page, "https://innfos.com/") {
		t.Fatalf("POST /parse: rendered page missing result")
	}
}

func TestParseFormBibitemMode(t *testing.T) {
	h := NewHandler()
	form := url.Values{
		"references": {"INNFOS. Robots[EB/OL]. (2020-01-01) [2020-04-30]. https://innfos.com/"},
		"mode":       {"bibitem"},
	}
	req := httptest.NewRequest(http.MethodPost, "/parse", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /parse bibitem: status %d", rec.Code)
	}
	page := rec.Body.String()
	if !strings.Contains(page, `\bibitem{INNFOS}`) {
		t.Fatalf("POST /parse bibitem: page missing block: %q", page)
	}
	if !strings.Contains(page, `\url{https://innfos.com/}`) {
		t.Fatalf("POST /parse bibitem: page missing url line")
	}
}
