package app

import (
	"log/slog"
	"net/http"

	"github.com/pawerflow/question-service/internal/auth"
	"github.com/pawerflow/question-service/internal/config"
	"github.com/pawerflow/question-service/internal/transport/dataloader"
	"github.com/pawerflow/question-service/internal/transport/middleware"
	"github.com/pawerflow/question-service/internal/transport/rest"
)

// newHandler mounts the REST routes behind the middleware chain. The
// returned stop func releases the rate limiter's cleanup goroutine.
func newHandler(cfg *config.Config, log *slog.Logger, c *components) (http.Handler, func()) {
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience, cfg.Auth.AccessTokenTTL)

	mux := http.NewServeMux()
	rest.Handlers{
		Health:    rest.NewHealthHandler(c.storage, cfg.Storage.Driver, BuildVersion()),
		Tags:      rest.NewTagHandler(c.registry, log),
		Questions: rest.NewQuestionHandler(c.questions, log),
	}.Register(mux)

	// Order: outermost first.
	mws := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Recovery(log),
		middleware.CORS(cfg.CORS),
	}

	stop := func() {}
	if cfg.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.CleanupInterval)
		mws = append(mws, rl.Limit())
		stop = rl.Stop
	}

	mws = append(mws,
		middleware.Auth(jwtManager),
		dataloader.Middleware(c.loaderRepos),
	)

	return middleware.Chain(mws...)(mux), stop
}
