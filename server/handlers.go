package server

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/pdfdeck/pdfdeck/fileset"
	"github.com/pdfdeck/pdfdeck/pagerange"
	"github.com/pdfdeck/pdfdeck/pdfops"
	"github.com/pdfdeck/pdfdeck/session"
	"github.com/pdfdeck/pdfdeck/util"
)

type fileJSON struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type stateJSON struct {
	Files     []fileJSON `json:"files"`
	Mode      string     `json:"mode"`
	PageCount int        `json:"pageCount"`
	Error     string     `json:"error,omitempty"`
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request, cs *clientSession) {
	writeJSON(w, http.StatusOK, stateOf(cs))
}

// handleUpload accepts one or more PDF files in a multipart form under the
// "files" field, stages them in the session directory and adds them to the
// set in form order.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request, cs *clientSession) {
	if err := r.ParseMultipartForm(64 << 20); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "parse form"))
		return
	}

	parts := r.MultipartForm.File["files"]
	if len(parts) == 0 {
		writeError(w, http.StatusBadRequest, errors.New("no files in request"))
		return
	}

	var files []fileset.File
	var staged []string
	discard := func() {
		for _, path := range staged {
			os.Remove(path)
		}
	}
	for _, part := range parts {
		name := filepath.Base(part.Filename)
		if !util.IsPDF(name) {
			discard()
			writeError(w, http.StatusBadRequest, errors.Errorf("%s is not a PDF", name))
			return
		}

		path, err := s.stage(cs, part)
		if err != nil {
			discard()
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		staged = append(staged, path)
		files = append(files, fileset.File{
			ID:   uuid.New().String(),
			Name: name,
			Path: path,
		})
	}

	if err := cs.session.AddFiles(files...); err != nil {
		discard()
		writeError(w, statusFor(err), err)
		return
	}

	// staged copies of duplicates the set skipped have no owner, drop them
	kept := make(map[string]bool)
	for _, f := range cs.session.Files() {
		kept[f.Path] = true
	}
	for _, path := range staged {
		if !kept[path] {
			os.Remove(path)
		}
	}
	writeJSON(w, http.StatusOK, stateOf(cs))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request, cs *clientSession) {
	if err := cs.session.Remove(r.PathValue("id")); err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, stateOf(cs))
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request, cs *clientSession) {
	var req struct {
		Target string `json:"target"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "parse body"))
		return
	}
	cs.session.Reorder(r.PathValue("id"), req.Target)
	writeJSON(w, http.StatusOK, stateOf(cs))
}

func (s *Server) handleMerge(w http.ResponseWriter, r *http.Request, cs *clientSession) {
	res, err := cs.session.Merge()
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	serveDocument(w, res.OutputPath)
}

func (s *Server) handleSplit(w http.ResponseWriter, r *http.Request, cs *clientSession) {
	var req struct {
		Pages string `json:"pages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "parse body"))
		return
	}

	outPath, err := cs.session.Split(req.Pages)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	serveDocument(w, outPath)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request, cs *clientSession) {
	cs.session.Reset()
	os.RemoveAll(cs.dir)
	writeJSON(w, http.StatusOK, stateOf(cs))
}

// stage copies an uploaded part into the session directory under a unique
// name, so two uploads sharing a display name never clobber each other.
func (s *Server) stage(cs *clientSession, part *multipart.FileHeader) (string, error) {
	src, err := part.Open()
	if err != nil {
		return "", errors.Wrap(err, "open upload")
	}
	defer src.Close()

	if err := os.MkdirAll(cs.dir, 0755); err != nil {
		return "", errors.Wrap(err, "create staging directory")
	}

	path := filepath.Join(cs.dir, uuid.New().String()+util.PDFExt)
	dst, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "stage upload")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", errors.Wrap(err, "write upload")
	}
	return path, nil
}

func stateOf(cs *clientSession) stateJSON {
	files := cs.session.Files()
	out := stateJSON{
		Files:     make([]fileJSON, len(files)),
		Mode:      cs.session.Mode().String(),
		PageCount: cs.session.FirstPageCount(),
		Error:     cs.session.Message(),
	}
	for i, f := range files {
		out.Files[i] = fileJSON{ID: f.ID, Name: f.Name}
	}
	return out
}

func serveDocument(w http.ResponseWriter, path string) {
	f, err := os.Open(path)
	if err != nil {
		writeError(w, http.StatusInternalServerError, errors.Wrap(err, "open output"))
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filepath.Base(path)+`"`)
	io.Copy(w, f)
}

// statusFor maps the error taxonomy onto HTTP statuses: user-correctable
// input problems are 4xx, everything else is a 500.
func statusFor(err error) int {
	var dup *fileset.DuplicateFilesError
	var rng *pagerange.InvalidRangeError
	var mode *session.ModeError
	switch {
	case errors.As(err, &mode):
		return http.StatusConflict
	case errors.As(err, &dup),
		errors.As(err, &rng),
		errors.Is(err, session.ErrEmptySelection),
		pdfops.IsEncrypted(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
