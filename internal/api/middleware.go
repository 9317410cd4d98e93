package api

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/coalportal/internal/pkg/constants"
	"github.com/ougirez/coalportal/internal/pkg/utils"
)

// AdminMiddleware admits requests carrying a government token, either as a
// bearer Authorization header or in the admin cookie.
func (svc *APIService) AdminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if svc.secret == "" {
			return next(ctx)
		}

		raw := bearerToken(ctx.Request().Header.Get(echo.HeaderAuthorization))
		if raw == "" {
			cookie, err := ctx.Cookie(constants.CookieKeyAuthToken)
			if err != nil {
				return constants.ErrMissingAuthToken
			}
			raw = cookie.Value
		}

		claims, err := utils.ParseAdminToken(svc.secret, raw)
		if err != nil {
			return err
		}

		ctx.Set(string(constants.CtxKeyRole), claims.Role)

		return next(ctx)
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
