package api

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anshulkummar/ieeeconv/internal/config"
	"github.com/anshulkummar/ieeeconv/internal/docxml"
)

func testServer(t *testing.T, cfg config.Config) *Server {
	t.Helper()
	if cfg.MaxUploadBytes == 0 {
		cfg.MaxUploadBytes = 16 * 1024 * 1024
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(log, cfg)
}

// paperBytes builds a small but real .docx payload.
func paperBytes(t *testing.T) []byte {
	t.Helper()
	doc := docxml.New()
	doc.Body.AddParagraph().AddText("A Paper Title")
	doc.Body.AddParagraph().AddText("Jane Smith")
	doc.Body.AddParagraph().AddText("Abstract")
	doc.Body.AddParagraph().AddText("Body prose.")
	var buf bytes.Buffer
	if err := doc.SaveTo(&buf); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func uploadRequest(t *testing.T, filename string, payload []byte, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write(payload); err != nil {
		t.Fatal(err)
	}
	for k, v := range fields {
		mw.WriteField(k, v)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/convert", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHandleConvert_Success(t *testing.T) {
	srv := testServer(t, config.Config{})
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, uploadRequest(t, "paper.docx", paperBytes(t), nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != docxContentType {
		t.Errorf("content type = %q", got)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "paper_IEEE.docx") {
		t.Errorf("content disposition = %q, want paper_IEEE.docx", cd)
	}

	// The download is a valid, converted package.
	out, err := docxml.Parse(bytes.NewReader(rec.Body.Bytes()), int64(rec.Body.Len()))
	if err != nil {
		t.Fatalf("response is not a valid document: %v", err)
	}
	title := out.Body.Paragraphs()[0]
	if got := title.Runs()[0].Props.Size.Val; got != "48" {
		t.Errorf("title size = %q, want 48", got)
	}
	if out.Body.SectPr.Margins.Top != "1080" {
		t.Errorf("top margin = %q, want 1080", out.Body.SectPr.Margins.Top)
	}
}

func TestHandleConvert_TwoColumn(t *testing.T) {
	srv := testServer(t, config.Config{})
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, uploadRequest(t, "paper.docx", paperBytes(t), map[string]string{"two_column": "on"}))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "paper_IEEE_two_column.docx") {
		t.Errorf("content disposition = %q, want two-column filename", cd)
	}
	out, err := docxml.Parse(bytes.NewReader(rec.Body.Bytes()), int64(rec.Body.Len()))
	if err != nil {
		t.Fatal(err)
	}
	if out.Body.SectPr.Columns == nil || out.Body.SectPr.Columns.Num != "2" {
		t.Error("two-column layout not applied")
	}
}

func TestHandleConvert_RejectsWrongExtension(t *testing.T) {
	srv := testServer(t, config.Config{})
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, uploadRequest(t, "paper.txt", []byte("not a document"), nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unsupported file type") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestHandleConvert_RejectsOversizedFile(t *testing.T) {
	srv := testServer(t, config.Config{MaxUploadBytes: 64})
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, uploadRequest(t, "paper.docx", paperBytes(t), nil))

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", rec.Code)
	}
}

func TestHandleConvert_RejectsCorruptPayload(t *testing.T) {
	srv := testServer(t, config.Config{})
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, uploadRequest(t, "paper.docx", []byte("zip? no."), nil))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}

func TestHandleConvert_MissingFile(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	mw.WriteField("two_column", "on")
	mw.Close()
	req := httptest.NewRequest(http.MethodPost, "/convert", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	srv := testServer(t, config.Config{})
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	srv := testServer(t, config.Config{})
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		in        string
		twoColumn bool
		want      string
	}{
		{"paper.docx", false, "paper_IEEE.docx"},
		{"paper.docx", true, "paper_IEEE_two_column.docx"},
		{"my thesis.docx", false, "my thesis_IEEE.docx"},
		{"noext", false, "noext_IEEE.docx"},
	}
	for _, tt := range tests {
		if got := OutputName(tt.in, tt.twoColumn); got != tt.want {
			t.Errorf("OutputName(%q, %v) = %q, want %q", tt.in, tt.twoColumn, got, tt.want)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"paper.docx", "paper.docx"},
		{"/etc/passwd", "passwd"},
		{"../../escape.docx", "escape.docx"},
		{"", "unnamed"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
