package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eventara/backend/pkg/errorx"
	"github.com/eventara/backend/pkg/xcontext"
)

type response struct {
	Code  uint64 `json:"code"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func newResponse(data any) response {
	return response{Code: 0, Data: data}
}

func newErrorResponse(err errorx.Error) response {
	return response{Code: err.Code, Error: err.Message}
}

func httpStatus(err errorx.Error) int {
	switch err.Code {
	case uint64(errorx.BadRequest), uint64(errorx.BadResponse):
		return http.StatusBadRequest
	case uint64(errorx.Unauthenticated):
		return http.StatusUnauthorized
	case uint64(errorx.PermissionDenied):
		return http.StatusForbidden
	case uint64(errorx.NotFound):
		return http.StatusNotFound
	case uint64(errorx.AlreadyExists):
		return http.StatusConflict
	case uint64(errorx.TooManyRequests):
		return http.StatusTooManyRequests
	case uint64(errorx.Unavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeResponse(ctx context.Context) {
	w := xcontext.HTTPWriter(ctx)
	w.Header().Set("Content-Type", "application/json")

	var resp response
	status := http.StatusOK
	if err := xcontext.Error(ctx); err != nil {
		var errx errorx.Error
		if !errors.As(err, &errx) {
			errx = errorx.Unknown
		}

		resp = newErrorResponse(errx)
		status = httpStatus(errx)
	} else {
		resp = newResponse(xcontext.Response(ctx))
	}

	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot encode the response: %v", err)
	}
}
