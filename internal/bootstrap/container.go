package bootstrap

import (
	"context"
	"path/filepath"
	"time"

	"recruai-web/internal/auth"
	"recruai-web/internal/config"
	"recruai-web/internal/controller"
	"recruai-web/internal/handler"
	"recruai-web/internal/pkg/logger"
	"recruai-web/internal/pkg/mailer"
	"recruai-web/internal/pkg/serverutils"
	"recruai-web/internal/repository/contract"
	"recruai-web/internal/repository/implementation"
	"recruai-web/internal/repository/memory"
	"recruai-web/internal/service"
	"recruai-web/internal/session"
	"recruai-web/internal/upstream"
	"recruai-web/internal/websocket"

	pktNats "recruai-web/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	limiterMemory "github.com/ulule/limiter/v3/drivers/store/memory"
	"gorm.io/gorm"
)

type Container struct {
	Logger logger.ILogger
	Guard  *auth.Guard

	// Controllers
	MarketingController    controller.IMarketingController
	AuthController         controller.IAuthController
	SessionController      controller.ISessionController
	DashboardController    controller.IDashboardController
	InterviewController    controller.IInterviewController
	OrganizationController controller.IOrganizationController
	TeamController         controller.ITeamController
	PipelineController     controller.IPipelineController

	// Live refresh
	RefreshHandler *handler.RefreshHandler
	WebSocketHub   *websocket.Hub
	RefreshRelay   service.IRefreshRelay

	closers []func()
}

// NewContainer wires every dependency. db may be nil, in which case the
// waitlist lives in memory.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	c := &Container{Logger: sysLogger}

	// 2. Infrastructure
	rdb := connectRedis(cfg.App.RedisURL, sysLogger)
	if rdb != nil {
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}

	var store session.Store = session.NewMemoryStore(cfg.Session.TTL)
	if cfg.Session.Driver == "redis" {
		if rdb != nil {
			store = session.NewRedisStore(rdb, cfg.Session.TTL)
		} else {
			sysLogger.Warn("Bootstrap", "SESSION_DRIVER=redis but Redis is unavailable, using memory sessions", nil)
		}
	}

	var events service.EventPublisher = service.NewNoopPublisher()
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			sysLogger.Warn("Bootstrap", "failed to connect to NATS, events are not exported", map[string]interface{}{"error": err.Error()})
		} else {
			events = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// In-process bus for collection changes
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	api := upstream.NewClient(cfg.API.BaseURL, cfg.API.Timeout)

	// 3. Session verification
	verifier := auth.NewVerifier(api, store, sysLogger)
	c.Guard = auth.NewGuard(verifier, cfg.Session.SignInPath, sysLogger)

	// 4. Live refresh
	wsLogger := logger.NewIsolatedLogger(filepath.Join(filepath.Dir(cfg.App.LogFilePath), "refresh.log"))
	c.WebSocketHub = websocket.NewHub(rdb, uuid.NewString(), wsLogger)
	refresh := service.NewRefreshPublisher(pubSub, sysLogger)
	c.RefreshRelay = service.NewRefreshRelay(pubSub, c.WebSocketHub, wsLogger)

	// 5. Services
	authService := service.NewAuthService(api, verifier, store, events, sysLogger)
	interviewService := service.NewInterviewService(api, refresh, sysLogger)
	organizationService := service.NewOrganizationService(api)
	teamService := service.NewTeamService(api, refresh)
	pipelineService := service.NewPipelineService(api, refresh)
	waitlistService := service.NewWaitlistService(waitlistRepository(db, sysLogger), emailService(cfg), events, sysLogger)

	// 6. Controllers
	limit := rateLimit(cfg.RateLimit, sysLogger)
	c.MarketingController = controller.NewMarketingController(waitlistService, c.Guard, limit, sysLogger)
	c.AuthController = controller.NewAuthController(authService, c.Guard, limit, sysLogger)
	c.SessionController = controller.NewSessionController(c.Guard)
	c.DashboardController = controller.NewDashboardController(authService, interviewService, organizationService, sysLogger)
	c.InterviewController = controller.NewInterviewController(authService, interviewService, sysLogger)
	c.OrganizationController = controller.NewOrganizationController(authService, organizationService, sysLogger)
	c.TeamController = controller.NewTeamController(authService, teamService, sysLogger)
	c.PipelineController = controller.NewPipelineController(authService, pipelineService, sysLogger)
	c.RefreshHandler = handler.NewRefreshHandler(c.WebSocketHub, authService, wsLogger)

	return c
}

// Start runs the background workers until ctx is done.
func (c *Container) Start(ctx context.Context) {
	go c.WebSocketHub.Run(ctx)
	go func() {
		if err := c.RefreshRelay.Consume(ctx); err != nil {
			c.Logger.Error("Bootstrap", "refresh relay stopped", map[string]interface{}{"error": err.Error()})
		}
	}()
}

func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}

func connectRedis(url string, log logger.ILogger) *redis.Client {
	if url == "" {
		return nil
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Warn("Bootstrap", "failed to parse Redis URL, using it as an address", map[string]interface{}{"error": err.Error()})
		opt = &redis.Options{Addr: url}
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Warn("Bootstrap", "Redis unavailable, running single-instance", map[string]interface{}{"error": err.Error()})
		_ = rdb.Close()
		return nil
	}
	return rdb
}

func waitlistRepository(db *gorm.DB, log logger.ILogger) contract.WaitlistRepository {
	if db == nil {
		log.Info("Bootstrap", "no database configured, waitlist is kept in memory", nil)
		return memory.NewWaitlistRepository()
	}
	if err := implementation.Migrate(db); err != nil {
		log.Error("Bootstrap", "waitlist migration failed, using memory", map[string]interface{}{"error": err.Error()})
		return memory.NewWaitlistRepository()
	}
	return implementation.NewWaitlistRepository(db)
}

func emailService(cfg *config.Config) mailer.IEmailService {
	if cfg.SMTP.Host == "" {
		return nil
	}
	return mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.App.BaseURL,
	)
}

func rateLimit(cfg config.RateLimitConfig, log logger.ILogger) fiber.Handler {
	if !cfg.Enabled {
		return nil
	}
	rate, err := limiter.NewRateFromFormatted(cfg.Rate)
	if err != nil {
		log.Warn("Bootstrap", "invalid RATE_LIMIT, using 10-M", map[string]interface{}{"rate": cfg.Rate, "error": err.Error()})
		rate = limiter.Rate{Period: time.Minute, Limit: 10}
	}
	return serverutils.RateLimit(limiter.New(limiterMemory.NewStore(), rate), log)
}
