package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/anshulkummar/ieeeconv/internal/docxml"
	"github.com/anshulkummar/ieeeconv/internal/ieee"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>Word to IEEE Converter</title></head>
<body>
<h1>Word to IEEE Format Converter</h1>
<form action="/convert" method="post" enctype="multipart/form-data">
  <p><input type="file" name="file" accept=".docx" required></p>
  <p><label><input type="checkbox" name="two_column"> Two-column layout</label></p>
  <p><button type="submit">Convert</button></p>
</form>
</body>
</html>
`

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, indexHTML)
}

// handleConvert accepts a .docx upload, runs the conversion, and returns
// the result as an attachment. Each request owns its document exclusively;
// nothing is shared across requests and nothing is kept afterward.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	// Limit total request size, with headroom for form overhead.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(16 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !strings.EqualFold(filepath.Ext(filename), ".docx") {
		jsonError(w, fmt.Sprintf("unsupported file type: %s (only .docx is accepted)", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	twoColumn := r.FormValue("two_column") == "on" || r.FormValue("two_column") == "true"

	doc, err := docxml.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		jsonError(w, "could not parse document: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	ieee.Convert(doc, ieee.Options{TwoColumn: twoColumn})

	var out bytes.Buffer
	if err := doc.SaveTo(&out); err != nil {
		s.log.Error("write converted document", "error", err)
		jsonError(w, "could not write converted document", http.StatusInternalServerError)
		return
	}

	outName := OutputName(filename, twoColumn)
	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", outName))
	w.Header().Set("Content-Length", fmt.Sprint(out.Len()))
	w.Write(out.Bytes())
}

// OutputName derives the download filename: input stem plus the _IEEE
// suffix, with _two_column appended when that layout was requested.
func OutputName(filename string, twoColumn bool) string {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	if twoColumn {
		return stem + "_IEEE_two_column.docx"
	}
	return stem + "_IEEE.docx"
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
