package handlers

import (
	"net/http"
	"route-resolver-service/internal/api/dto"
	"route-resolver-service/internal/platform/obs"
	"route-resolver-service/internal/ports"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// HistoryHandler exposes the read-only resolution log.
type HistoryHandler struct {
	Log          ports.ResolutionLog
	DefaultLimit int
	Validate     *validator.Validate
	Logger       *zap.Logger
}

func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, h.Logger, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := dto.HistoryQuery{Limit: h.DefaultLimit}
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, h.Logger, http.StatusBadRequest, "limit must be an integer")
			return
		}
		q.Limit = n
	}
	if err := h.Validate.Struct(q); err != nil {
		writeError(w, r, h.Logger, http.StatusBadRequest, "limit must be between 1 and 100")
		return
	}

	recs, err := h.Log.Recent(r.Context(), q.Limit)
	if err != nil {
		h.Logger.Error("list resolution history failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.Error(err),
		)
		writeError(w, r, h.Logger, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListHistoryResponse{
		Records: make([]dto.ResolutionRecordResponse, 0, len(recs)),
	}
	for _, rec := range recs {
		res.Records = append(res.Records, dto.ResolutionRecordResponse{
			ID:          rec.ID,
			Origin:      rec.Origin,
			Destination: rec.Destination,
			Outcome:     rec.Outcome,
			Duration:    rec.DurationText,
			MapLink:     rec.MapLink,
			Endpoint:    rec.Endpoint,
			CreatedAt:   rec.CreatedAt,
		})
	}

	writeJSON(w, r, h.Logger, http.StatusOK, res)
}
