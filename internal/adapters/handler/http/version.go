package http

import (
	"context"
	"net/http"
)

// VersionHeader carries the client app version that selects the response
// shape. Anything other than a recognized value falls back to v1.
const VersionHeader = "Mobile-App-Version"

type apiVersion int

const (
	apiV1 apiVersion = iota + 1
	apiV2
)

const versionContextKey contextKey = "apiVersion"

// VersionMiddleware resolves the response version once per request. The
// token only changes the projection, never which data is returned.
func VersionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		version := resolveVersion(r.Header.Get(VersionHeader))
		ctx := context.WithValue(r.Context(), versionContextKey, version)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func resolveVersion(token string) apiVersion {
	switch token {
	case "2.0":
		return apiV2
	default:
		return apiV1
	}
}

func versionFromContext(ctx context.Context) apiVersion {
	version, ok := ctx.Value(versionContextKey).(apiVersion)
	if !ok {
		return apiV1
	}
	return version
}
