package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/inbound/http/gen"
)

// UserIDHeader carries the authenticated owner, set by the upstream auth layer.
const UserIDHeader = "X-User-ID"

// AdminTokenHeader carries the administrator token.
const AdminTokenHeader = "X-Admin-Token"

type ownerKey struct{}

func requireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ownerID := strings.TrimSpace(r.Header.Get(UserIDHeader))
		if ownerID == "" {
			respondError(w, newErrorResp(gen.UNAUTHORIZED, "missing "+UserIDHeader+" header"))
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ownerKey{}, ownerID)))
	})
}

// ownerAuth enforces requireOwner on the operations secured by ownerAuth in openapi.yaml.
func ownerAuth(next http.Handler) http.Handler {
	secured := requireOwner(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Context().Value(gen.OwnerAuthScopes) == nil {
			next.ServeHTTP(w, r)
			return
		}
		secured.ServeHTTP(w, r)
	})
}

func ownerFrom(ctx context.Context) string {
	ownerID, _ := ctx.Value(ownerKey{}).(string)
	return ownerID
}

func ownerFromRequest(r *http.Request) string {
	return ownerFrom(r.Context())
}
