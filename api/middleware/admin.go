// ABOUTME: Admin authorization for the history and feedback listings
// ABOUTME: Runs as huma operation middleware so rejections share the API error shape

package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// AdminSecurityScheme is the OpenAPI security scheme name for admin operations
const AdminSecurityScheme = "adminBearer"

// AdminAuth checks "Authorization: Bearer <token>". With no token configured
// the operations are closed entirely.
func AdminAuth(api huma.API, token string) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if token == "" {
			huma.WriteErr(api, ctx, http.StatusForbidden, "Admin access is not configured.")
			return
		}

		scheme, presented, ok := strings.Cut(ctx.Header("Authorization"), " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") ||
			subtle.ConstantTimeCompare([]byte(strings.TrimSpace(presented)), []byte(token)) != 1 {
			ctx.SetHeader("WWW-Authenticate", `Bearer realm="admin"`)
			huma.WriteErr(api, ctx, http.StatusUnauthorized, "Unauthorized")
			return
		}

		next(ctx)
	}
}
