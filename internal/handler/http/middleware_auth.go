package http

import (
	"net/http"

	"github.com/MKhiriev/webcrm-console/internal/logger"
	"github.com/MKhiriev/webcrm-console/internal/utils"
)

// auth accepts requests carrying a bearer token issued by POST /token and
// stores its subject under [utils.UserNameCtxKey]. Anything else is answered
// with 401, which is what makes the console drop its session.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(err).Send()
			utils.WriteError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		userName, err := utils.ValidateJWTToken(tokenString, h.cfg.TokenSignKey, tokenIssuer)
		if err != nil {
			log.Warn().Err(err).Msg("token rejected")
			utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		log.Debug().Str("user", userName).Msg("authorized")
		next.ServeHTTP(w, r.WithContext(utils.WithUserName(r.Context(), userName)))
	})
}
