package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/webcrm-console/internal/logger"
	"github.com/MKhiriev/webcrm-console/internal/utils"
	"github.com/MKhiriev/webcrm-console/models"
)

type tokenResponse struct {
	models.Credential

	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"`
}

// token implements the password grant. The form carries grant_type=password,
// username and password; the answer is the user's profile with access_token
// set.
func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		fail(w, r, fmt.Errorf("%w: %w", ErrInvalidBody, err))
		return
	}
	if grant := r.PostForm.Get("grant_type"); grant != "password" {
		fail(w, r, fmt.Errorf("%w: %q", ErrUnsupportedGrantType, grant))
		return
	}

	cred, err := h.store.SignIn(r.PostForm.Get("username"), r.PostForm.Get("password"))
	if err != nil {
		fail(w, r, err)
		return
	}

	token, err := utils.GenerateJWTToken(tokenIssuer, cred.UserName, h.cfg.TokenDuration, h.cfg.TokenSignKey)
	if err != nil {
		fail(w, r, err)
		return
	}
	cred.AccessToken = token

	log.Info().Str("user", cred.UserName).Msg("token issued")
	respond(w, r, tokenResponse{
		Credential: cred,
		TokenType:  "bearer",
		ExpiresIn:  int(h.cfg.TokenDuration.Seconds()),
	})
}

type versionResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	respond(w, r, versionResponse{
		Name:    models.AppName + " sandbox",
		Version: h.buildInfo.BuildVersion(),
		Date:    h.buildInfo.BuildDate(),
		Commit:  h.buildInfo.BuildCommit(),
	})
}
