package http

import (
	"golang.org/x/time/rate"

	"github.com/MKhiriev/webcrm-console/internal/config"
	"github.com/MKhiriev/webcrm-console/internal/logger"
	"github.com/MKhiriev/webcrm-console/internal/sandbox"
	"github.com/MKhiriev/webcrm-console/internal/utils"
	"github.com/MKhiriev/webcrm-console/models"
)

// tokenIssuer is the iss claim of every token issued by the sandbox.
const tokenIssuer = "webcrm-sandbox"

type Handler struct {
	store     *sandbox.Store
	cfg       *config.ServerConfig
	buildInfo models.AppBuildInfo

	limiter *rate.Limiter
	ids     *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(store *sandbox.Store, cfg *config.ServerConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}

	logger.Info().Int("rate_limit", cfg.RateLimit).Msg("http handler created")
	return &Handler{
		store:     store,
		cfg:       cfg,
		buildInfo: buildInfo,
		limiter:   rate.NewLimiter(limit, max(cfg.RateLimit, 1)),
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}
}
