package panel

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"decoder/internal/domain"
	"decoder/internal/services/dictionary"
	"decoder/internal/services/page"
)

// maxBody caps request bodies, imports included.
const maxBody = 8 << 20

// Handlers serves the panel actions over a dictionary and page service.
type Handlers struct {
	Dict domain.DictionaryService
	Page domain.PageService
	Log  *zap.Logger
	Now  func() time.Time
}

// NewHandlers returns handlers with defaults filled in.
func NewHandlers(dict domain.DictionaryService, pg domain.PageService, log *zap.Logger) *Handlers {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handlers{Dict: dict, Page: pg, Log: log, Now: time.Now}
}

type listResponse struct {
	Entries []domain.Entry `json:"entries"`
	Total   int            `json:"total"`
	Shown   int            `json:"shown"`
	Status  string         `json:"status"`
}

type statusResponse struct {
	Status string `json:"status"`
	Count  *int   `json:"count,omitempty"`
	Error  string `json:"error,omitempty"`
}

type setRequest struct {
	Decoded string `json:"decoded"`
}

type pageRequest struct {
	Target string `json:"target"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	entries := h.Dict.Search(q)
	if entries == nil {
		entries = []domain.Entry{}
	}
	total := h.Dict.Count()
	writeJSON(w, http.StatusOK, listResponse{
		Entries: entries,
		Total:   total,
		Shown:   len(entries),
		Status:  dictionary.StatusListed(len(entries), total, q != ""),
	})
}

func (h *Handlers) Set(w http.ResponseWriter, r *http.Request) {
	cipher, err := cipherParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, statusResponse{Status: "invalid cipher", Error: err.Error()})
		return
	}
	var req setRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, statusResponse{Status: "invalid body", Error: err.Error()})
		return
	}
	if err := h.Dict.SetEntry(r.Context(), cipher, req.Decoded); err != nil {
		h.writeDictError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "saved"})
}

func (h *Handlers) Remove(w http.ResponseWriter, r *http.Request) {
	cipher, err := cipherParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, statusResponse{Status: "invalid cipher", Error: err.Error()})
		return
	}
	if err := h.Dict.RemoveEntry(r.Context(), cipher); err != nil {
		h.writeDictError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "removed"})
}

func (h *Handlers) Import(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, statusResponse{Status: dictionary.StatusImportFailed, Error: err.Error()})
		return
	}
	raw, err := dictionary.DecodeImport(data)
	if err != nil {
		h.Log.Warn("import rejected", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, statusResponse{Status: dictionary.StatusImportFailed, Error: err.Error()})
		return
	}
	n, err := h.Dict.ImportEntries(r.Context(), raw)
	if err != nil {
		h.writeDictError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: dictionary.StatusImported(n), Count: &n})
}

func (h *Handlers) Export(w http.ResponseWriter, r *http.Request) {
	name := dictionary.ExportFilename(h.Now())
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	if err := h.Dict.Export(w); err != nil {
		h.Log.Error("export failed", zap.Error(err))
	}
}

func (h *Handlers) Apply(w http.ResponseWriter, r *http.Request) {
	h.pageAction(w, r, false)
}

func (h *Handlers) Restore(w http.ResponseWriter, r *http.Request) {
	h.pageAction(w, r, true)
}

func (h *Handlers) pageAction(w http.ResponseWriter, r *http.Request, restore bool) {
	var req pageRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeJSON(w, http.StatusBadRequest, statusResponse{Status: "invalid body", Error: err.Error()})
			return
		}
	}

	var err error
	if restore {
		err = h.Page.Restore(r.Context(), req.Target)
	} else {
		err = h.Page.Apply(r.Context(), req.Target)
	}
	if err != nil && !domain.IsApplyError(err) {
		writeJSON(w, http.StatusInternalServerError, statusResponse{Status: "error", Error: err.Error()})
		return
	}
	resp := statusResponse{Status: page.StatusFor(restore, err)}
	if err != nil {
		resp.Error = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) writeDictError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusBadRequest, statusResponse{Status: "rejected", Error: err.Error()})
		return
	}
	h.Log.Error("dictionary update failed", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, statusResponse{Status: "error", Error: err.Error()})
}

func cipherParam(r *http.Request) (string, error) {
	c := chi.URLParam(r, "cipher")
	if r.URL.RawPath == "" {
		return c, nil
	}
	return url.PathUnescape(c)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}
