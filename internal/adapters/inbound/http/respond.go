package http

import (
	"encoding/json"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/inbound/http/gen"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err gen.ErrorResp) {
	statusCode := http.StatusInternalServerError
	switch err.Error.Code {
	case gen.BADREQUEST:
		statusCode = http.StatusBadRequest
	case gen.UNAUTHORIZED:
		statusCode = http.StatusUnauthorized
	case gen.FORBIDDEN:
		statusCode = http.StatusForbidden
	case gen.NOTFOUND:
		statusCode = http.StatusNotFound
	case gen.CONFLICT:
		statusCode = http.StatusConflict
	case gen.BADGATEWAY:
		statusCode = http.StatusBadGateway
	}
	respondJSON(w, statusCode, err)
}

func newErrorResp(code gen.ErrorCode, message string) gen.ErrorResp {
	return gen.ErrorResp{Error: gen.Error{Code: code, Message: message}}
}

// respondParamError reports path parameter binding failures of the generated router.
func respondParamError(w http.ResponseWriter, r *http.Request, err error) {
	respondError(w, newErrorResp(gen.BADREQUEST, err.Error()))
}
