package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	apperrors "github.com/NVIDIA/version-buddy/pkg/errors"
	"github.com/NVIDIA/version-buddy/pkg/semver"
	"github.com/NVIDIA/version-buddy/pkg/serializer"
	"github.com/NVIDIA/version-buddy/pkg/server"
)

const defaultMaxBatchVersions = 100

// Outcome labels for the parse metric.
const (
	outcomeOK        = "ok"
	outcomeInvalid   = "invalid"
	outcomeNotString = "not_string"
)

var parseTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "vb_parse_total",
		Help: "Total number of version parse attempts by outcome",
	},
	[]string{"outcome"},
)

// HandlerOption customizes the API handler.
type HandlerOption func(*Handler)

// WithMaxBatchVersions caps the number of versions accepted by a single
// check request.
func WithMaxBatchVersions(limit int) HandlerOption {
	return func(h *Handler) {
		if limit > 0 {
			h.maxBatch = limit
		}
	}
}

// Handler serves the version parsing endpoints.
type Handler struct {
	maxBatch int
}

// NewHandler creates an API handler with the given options applied.
func NewHandler(opts ...HandlerOption) *Handler {
	h := &Handler{
		maxBatch: defaultMaxBatchVersions,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type parseRequest struct {
	Version any `json:"version" yaml:"version"`
}

type parseResponse struct {
	Version semver.SemVer `json:"version" yaml:"version"`
}

type checkRequest struct {
	Versions []string `json:"versions" yaml:"versions"`
}

type checkResult struct {
	Input   string         `json:"input" yaml:"input"`
	Valid   bool           `json:"valid" yaml:"valid"`
	Version *semver.SemVer `json:"version,omitempty" yaml:"version,omitempty"`
	Error   string         `json:"error,omitempty" yaml:"error,omitempty"`
	Offset  *int           `json:"offset,omitempty" yaml:"offset,omitempty"`
}

type checkSummary struct {
	Total   int `json:"total" yaml:"total"`
	Valid   int `json:"valid" yaml:"valid"`
	Invalid int `json:"invalid" yaml:"invalid"`
}

type checkResponse struct {
	Results []checkResult `json:"results" yaml:"results"`
	Summary checkSummary  `json:"summary" yaml:"summary"`
}

// HandleParse handles GET and POST /v1/parse.
//
// GET parses the version query parameter. POST parses the version field of
// a JSON or YAML request body; the field must hold a string.
func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleParseQuery(w, r)
	case http.MethodPost:
		h.handleParseBody(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		server.WriteError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
	}
}

func (h *Handler) handleParseQuery(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("version") {
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"Missing version query parameter", false, nil)
		return
	}

	input := query.Get("version")
	v, err := semver.Parse(input)
	if err != nil {
		writeParseFailure(w, r, input, err)
		return
	}

	parseTotal.WithLabelValues(outcomeOK).Inc()
	serializer.RespondJSON(w, http.StatusOK, parseResponse{Version: v})
}

func (h *Handler) handleParseBody(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := decodeBody(r, &req); err != nil {
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"Invalid request body", false, map[string]any{"error": err.Error()})
		return
	}

	v, err := semver.ParseValue(req.Version)
	if err != nil {
		input, _ := req.Version.(string)
		writeParseFailure(w, r, input, err)
		return
	}

	parseTotal.WithLabelValues(outcomeOK).Inc()
	serializer.RespondJSON(w, http.StatusOK, parseResponse{Version: v})
}

// HandleCheck handles POST /v1/check. It validates a batch of version
// strings and reports a per-input verdict plus a summary. Parse failures
// are part of the response, not request errors.
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		server.WriteError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	var req checkRequest
	if err := decodeBody(r, &req); err != nil {
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"Invalid request body", false, map[string]any{"error": err.Error()})
		return
	}

	if len(req.Versions) == 0 {
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"No versions to check", false, nil)
		return
	}

	if len(req.Versions) > h.maxBatch {
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"Too many versions in one request", false, map[string]any{
				"limit": h.maxBatch,
				"count": len(req.Versions),
			})
		return
	}

	resp := checkResponse{
		Results: make([]checkResult, len(req.Versions)),
	}
	resp.Summary.Total = len(req.Versions)

	for i, input := range req.Versions {
		result := checkResult{Input: input}

		v, err := semver.Parse(input)
		if err != nil {
			parseTotal.WithLabelValues(outcomeInvalid).Inc()
			result.Error = err.Error()
			var perr *semver.ParseError
			if errors.As(err, &perr) && perr.Offset >= 0 {
				offset := perr.Offset
				result.Offset = &offset
			}
			resp.Summary.Invalid++
		} else {
			parseTotal.WithLabelValues(outcomeOK).Inc()
			result.Valid = true
			result.Version = &v
			resp.Summary.Valid++
		}

		resp.Results[i] = result
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// decodeBody deserializes a JSON or YAML request body based on Content-Type.
func decodeBody(r *http.Request, v any) error {
	format := serializer.FormatJSON
	if strings.Contains(r.Header.Get("Content-Type"), "yaml") {
		format = serializer.FormatYAML
	}

	reader, err := serializer.NewReader(format, r.Body)
	if err != nil {
		return err
	}
	return reader.Deserialize(v)
}

// writeParseFailure maps a parse failure to the wire contract. Grammar
// violations carry the parser diagnostic verbatim with the failing offset;
// non-string input is a request error, not a version error.
func writeParseFailure(w http.ResponseWriter, r *http.Request, input string, err error) {
	var perr *semver.ParseError
	if errors.As(err, &perr) {
		parseTotal.WithLabelValues(outcomeInvalid).Inc()
		details := map[string]any{"input": input}
		if perr.Offset >= 0 {
			details["offset"] = perr.Offset
		}
		server.WriteError(w, r, http.StatusUnprocessableEntity, apperrors.ErrCodeInvalidVersion,
			perr.Error(), false, details)
		return
	}

	if errors.Is(err, semver.ErrNotString) {
		parseTotal.WithLabelValues(outcomeNotString).Inc()
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"Version must be a string", false, map[string]any{"error": err.Error()})
		return
	}

	server.WriteErrorFromErr(w, r, err, "Failed to parse version", nil)
}
