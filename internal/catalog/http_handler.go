package catalog

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"bandcatalog/internal/httpx"

	logger "github.com/Bparsons0904/goLogger"
)

// PageRenderer turns a browse result into an HTML page.
type PageRenderer interface {
	Render(w io.Writer, basePath string, params url.Values, res Result) error
}

type HTTPHandler struct {
	svc          *Service
	renderer     PageRenderer
	readyTimeout time.Duration
	log          logger.Logger
}

func NewHTTPHandler(svc *Service, renderer PageRenderer, readyTimeout time.Duration) *HTTPHandler {
	return &HTTPHandler{
		svc:          svc,
		renderer:     renderer,
		readyTimeout: readyTimeout,
		log:          logger.New("catalog").File("http_handler"),
	}
}

// Page handles GET /
func (h *HTTPHandler) Page(w http.ResponseWriter, r *http.Request) {
	log := h.log.Function("Page")

	res, err := h.svc.Browse(r.Context(), ParseQuery(r.URL.Query()))
	if err != nil {
		log.Er("failed to browse catalog", err, "request_id", httpx.RequestIDFrom(r))
		http.Error(w, "catalog unavailable", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, r.URL.Path, r.URL.Query(), res); err != nil {
		log.Er("failed to render page", err, "request_id", httpx.RequestIDFrom(r))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=UTF-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// ListAlbums handles GET /v1/albums
// @Summary Browse albums
// @Description Filter the flattened album list and return one page of it
// @Tags albums
// @Produce json
// @Param q query string false "Search band name, album title or song title"
// @Param genre query string false "Exact band genre" default(all)
// @Param member query string false "Exact member name" default(all)
// @Param page query int false "Page number, clamped into range" default(1)
// @Success 200 {object} httpx.SuccessResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /v1/albums [get]
func (h *HTTPHandler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Browse(r.Context(), ParseQuery(r.URL.Query()))
	if err != nil {
		h.log.Function("ListAlbums").Er("failed to browse catalog", err, "request_id", httpx.RequestIDFrom(r))
		httpx.JSONError(w, r, http.StatusInternalServerError, "CATALOG_UNAVAILABLE", "Catalog unavailable")
		return
	}

	httpx.JSONSuccess(w, r, res.Albums, map[string]any{
		"page":        res.Page,
		"page_size":   res.PageSize,
		"total":       res.Total,
		"total_pages": res.PageCount,
		"query":       res.Query,
	})
}

// Filters handles GET /v1/filters
// @Summary Filter options
// @Description Distinct genres and member names, in natural order
// @Tags albums
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /v1/filters [get]
func (h *HTTPHandler) Filters(w http.ResponseWriter, r *http.Request) {
	idx, err := h.svc.Filters(r.Context())
	if err != nil {
		h.log.Function("Filters").Er("failed to build filters", err, "request_id", httpx.RequestIDFrom(r))
		httpx.JSONError(w, r, http.StatusInternalServerError, "CATALOG_UNAVAILABLE", "Catalog unavailable")
		return
	}
	httpx.JSONSuccess(w, r, idx, nil)
}

// Ready handles GET /readyz
func (h *HTTPHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.readyTimeout)
	defer cancel()
	if err := h.svc.Ready(ctx); err != nil {
		http.Error(w, "catalog not ready", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
