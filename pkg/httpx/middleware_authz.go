package httpx

import (
	"net/http"
	"strings"
)

// RequireAnyRole lets the request through only when the authenticated caller
// holds one of the listed roles. Visibility filtering of collection contents
// happens in the store; this guards endpoints that should not be reachable at
// all for lesser roles.
func RequireAnyRole(required ...string) Middleware {
	want := make(map[string]struct{}, len(required))
	for _, r := range required {
		want[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			if !ok {
				writeBearerError(w, "missing bearer token")
				return
			}

			if _, ok := want[id.Role]; !ok {
				writeRoleError(w, required...)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeRoleError(w http.ResponseWriter, required ...string) {
	w.Header().Set("WWW-Authenticate",
		`Bearer error="insufficient_scope", scope="role:`+strings.Join(required, " role:")+`"`)
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte("insufficient_role"))
}
