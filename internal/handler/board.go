package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/trello-export/internal/filter"
	"github.com/BuzzLyutic/trello-export/internal/loader"
	"github.com/BuzzLyutic/trello-export/internal/repo"
	"github.com/BuzzLyutic/trello-export/internal/service"
	"github.com/BuzzLyutic/trello-export/pkg/respond"
)

const (
	defaultFilename = "trello.csv"
	defaultLinkText = "Export CSV"
)

type BoardHandler struct {
	service   *service.BoardService
	logger    *zap.Logger
	maxUpload int64
}

func NewBoardHandler(srv *service.BoardService, logger *zap.Logger, maxUpload int64) *BoardHandler {
	return &BoardHandler{
		service:   srv,
		logger:    logger,
		maxUpload: maxUpload,
	}
}

// Upload принимает документ сырым JSON в теле или multipart-полем "file".
func (h *BoardHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	data, err := h.readDocument(r)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	if len(data) == 0 {
		respond.Error(w, r, http.StatusBadRequest, "empty request body")
		return
	}

	summary, err := h.service.Upload(r.Context(), data)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	h.logger.Info("board uploaded",
		zap.String("board_id", summary.ID),
		zap.Int("cards", summary.Cards),
		zap.Int("lists", summary.Lists),
	)
	w.Header().Set("Location", fmt.Sprintf("/api/boards/%s", summary.ID))
	respond.JSON(w, r, http.StatusCreated, summary)
}

func (h *BoardHandler) readDocument(r *http.Request) ([]byte, error) {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return io.ReadAll(r.Body)
	}

	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", service.ErrValidation, err)
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("%w: multipart field \"file\" is required", service.ErrValidation)
	}
	defer file.Close()
	return io.ReadAll(file)
}

func (h *BoardHandler) LoadDefault(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.LoadDefault(r.Context())
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/boards/%s", summary.ID))
	respond.JSON(w, r, http.StatusCreated, summary)
}

func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, summary)
}

func (h *BoardHandler) Lists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.service.Lists(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, lists)
}

func (h *BoardHandler) Labels(w http.ResponseWriter, r *http.Request) {
	labels, err := h.service.Labels(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, labels)
}

func (h *BoardHandler) Cards(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.Cards(r.Context(), chi.URLParam(r, "id"), parseQuery(r))
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, rows)
}

func (h *BoardHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	text, err := h.service.ExportCSV(r.Context(), chi.URLParam(r, "id"), parseQuery(r))
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.CSV(w, r, queryOr(r, "filename", defaultFilename), text)
}

func (h *BoardHandler) ExportLink(w http.ResponseWriter, r *http.Request) {
	link, err := h.service.ExportLink(r.Context(), chi.URLParam(r, "id"), parseQuery(r),
		queryOr(r, "filename", defaultFilename),
		queryOr(r, "text", defaultLinkText),
	)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, map[string]string{"link": link})
}

// parseQuery: отсутствие "list" - все открытые списки, "list=" - ни одного.
func parseQuery(r *http.Request) service.Query {
	values := r.URL.Query()

	var q service.Query
	if lists, ok := values["list"]; ok {
		q.Lists = nonEmpty(lists)
	}
	q.Labels = nonEmpty(values["label"])
	return q
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func queryOr(r *http.Request, key, def string) string {
	if v := strings.TrimSpace(r.URL.Query().Get(key)); v != "" {
		return v
	}
	return def
}

func (h *BoardHandler) handleErrors(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, repo.ErrorNotFound):
		respond.Error(w, r, http.StatusNotFound, "board not found")
	case errors.Is(err, loader.ErrMalformedInput):
		respond.Error(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrValidation):
		respond.Error(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, filter.ErrUnknownReference):
		respond.Error(w, r, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &tooLarge):
		respond.Error(w, r, http.StatusRequestEntityTooLarge, "document too large")
	default:
		h.logger.Error("internal error", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
	}
}
