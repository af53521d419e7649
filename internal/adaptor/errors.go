package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"club-booking/internal/usecase"
	"club-booking/pkg/apiclient"
	"club-booking/pkg/errs"
	"club-booking/pkg/utils"

	"go.uber.org/zap"
)

const stackDepth = 10

// decodeJSON membaca body request; body kosong dianggap objek kosong.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Body == nil || r.ContentLength == 0 {
		return true
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

// handleServiceError maps usecase and upstream errors to HTTP responses.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var verr *usecase.ValidationError

	switch {
	case errors.As(err, &verr):
		log.Warn(operation+" validation failed", zap.Any("errors", verr.Fields))
		utils.ResponseBadRequest(w, "Validation failed", verr.Fields)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, usecase.ErrUnauthorized):
		utils.ResponseUnauthorized(w, "Authentication required")

	case errors.Is(err, usecase.ErrStaleAvailability),
		errors.Is(err, usecase.ErrSeatUnavailable),
		errors.Is(err, usecase.ErrConflict):
		log.Info(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, apiclient.ErrUpstreamStatus):
		if se, ok := apiclient.AsStatusError(err); ok && se.ClientError() {
			// 4xx dari backend diteruskan apa adanya (mis. login salah)
			log.Warn(operation+" rejected by upstream", zap.Int("status", se.Status), zap.String("message", se.Message))
			utils.ResponseJSON(w, se.Status, false, se.Message, nil, nil)
			return
		}
		log.Error(operation+" failed - upstream error", zap.Error(err))
		utils.ResponseBadGateway(w, "Club service is unavailable, please try again later")

	case errors.Is(err, apiclient.ErrTransport),
		errors.Is(err, apiclient.ErrDecode):
		log.Error(operation+" failed - upstream unreachable", zap.Error(err), zap.Strings("stack", errs.ExtractStackLines(err, stackDepth)))
		utils.ResponseBadGateway(w, "Club service is unavailable, please try again later")

	default:
		log.Error(operation+" failed", zap.Error(err), zap.Strings("stack", errs.ExtractStackLines(err, stackDepth)))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
