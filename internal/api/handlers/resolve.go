package handlers

import (
	"context"
	"errors"
	"net/http"
	"route-resolver-service/internal/api/dto"
	"route-resolver-service/internal/domain"
	"route-resolver-service/internal/platform/obs"

	"go.uber.org/zap"
)

// RouteResolver is the single operation the resolve endpoint depends on.
type RouteResolver interface {
	Resolve(ctx context.Context, origin, destination string) (*domain.RouteInfo, error)
}

type ResolveHandler struct {
	Resolver RouteResolver
	Logger   *zap.Logger
}

// Resolve answers one route query from the origen and destino query parameters.
func (h *ResolveHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, h.Logger, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// Missing and blank parameters are both left to the resolver, which
	// rejects them as invalid input and records the attempt.
	q := dto.ResolveQuery{
		Origen:  r.URL.Query().Get("origen"),
		Destino: r.URL.Query().Get("destino"),
	}

	info, err := h.Resolver.Resolve(r.Context(), q.Origen, q.Destino)
	if err != nil {
		var re *domain.ResolutionError
		if !errors.As(err, &re) {
			re = domain.NewResolutionError(domain.KindUnknown, err)
		}
		h.Logger.Info("route resolution failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.String("kind", string(re.Kind)),
			zap.Error(err),
		)
		writeResolutionError(w, r, h.Logger, re)
		return
	}

	writeJSON(w, r, h.Logger, http.StatusOK, dto.ResolveResponse{
		Origin:      info.Origin,
		Destination: info.Destination,
		Duration:    info.Fields.DurationText,
		MapLink:     info.Fields.MapLink,
		RawResponse: info.RawPayload,
		Endpoint:    info.Endpoint,
	})
}

// StatusFor maps a failure kind to the HTTP status returned to API callers.
func StatusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindInvalidInput:
		return http.StatusBadRequest
	case domain.KindNetworkUnreachable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

func writeResolutionError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, re *domain.ResolutionError) {
	writeJSON(w, r, logger, StatusFor(re.Kind), dto.ErrorResponse{
		ErrorKind: string(re.Kind),
		Error:     re.Message,
	})
}
