package services

import (
	"context"
	"errors"
	"net"
	"net/http"
	"route-resolver-service/internal/domain"
)

// Classify maps the last candidate's failure onto the user-facing error taxonomy.
func Classify(err error) *domain.ResolutionError {
	return domain.NewResolutionError(classifyKind(err), err)
}

func classifyKind(err error) domain.ErrorKind {
	if err == nil {
		return domain.KindUnknown
	}

	var se *domain.StatusError
	if errors.As(err, &se) {
		switch {
		case se.Code == http.StatusNotFound:
			return domain.KindNotFound
		case se.Code >= 500 && se.Code <= 599:
			return domain.KindServerError
		default:
			return domain.KindUnknown
		}
	}

	// *url.Error satisfies net.Error even when it only wraps a cancellation,
	// so an abandoned query must be checked first.
	if errors.Is(err, context.Canceled) {
		return domain.KindUnknown
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return domain.KindNetworkUnreachable
	}

	return domain.KindUnknown
}
