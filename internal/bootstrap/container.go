package bootstrap

import (
	"context"
	"log"
	"time"

	"event-management-be/internal/config"
	"event-management-be/internal/controller"
	"event-management-be/internal/pkg/authtoken"
	"event-management-be/internal/pkg/logger"
	"event-management-be/internal/pkg/mailer"
	"event-management-be/internal/pkg/payment"
	"event-management-be/internal/pkg/serverutils"
	"event-management-be/internal/repository/contract"
	"event-management-be/internal/repository/implementation"
	"event-management-be/internal/repository/memory"
	"event-management-be/internal/repository/unitofwork"
	"event-management-be/internal/service"
	pktNats "event-management-be/pkg/nats"
	"event-management-be/pkg/storage"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ArticleController     controller.IArticleController
	EventController       controller.IEventController
	CustomerController    controller.ICustomerController
	TransactionController controller.ITransactionController
	AuthController        controller.IAuthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	mediaStore := storage.NewLocalMediaStore(cfg.App.StorageRoot)

	c := &Container{Logger: sysLogger}

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		sysLogger,
	)
	if !cfg.SMTP.Enabled() {
		log.Printf("[WARN] SMTP is not configured, payment receipts will fail to send")
	}

	gateway := payment.NewMidtransGateway(cfg.Midtrans.ServerKey, cfg.Midtrans.IsProduction)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// NATS forwarding is optional
	var forwarder service.EventForwarder
	if cfg.Events.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(context.Background(), cfg.Events.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			forwarder = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// 3. Token denylist, Redis when reachable
	denylist := newTokenDenylist(cfg.App.RedisURL, c)
	tokens := authtoken.NewManager(cfg.Auth.JwtSecret, cfg.Auth.TokenTTL)

	// 4. Services
	activityLogger := logger.NewIsolatedLogger(cfg.App.ActivityLogPath)
	publisherService := service.NewPublisherService(cfg.Events.Topic, pubSub)
	c.ConsumerService = service.NewConsumerService(
		pubSub,
		cfg.Events.Topic,
		uowFactory,
		forwarder,
		activityLogger,
	)

	articleService := service.NewArticleService(uowFactory, mediaStore, sysLogger)
	eventService := service.NewEventService(uowFactory, mediaStore, sysLogger)
	customerService := service.NewCustomerService(uowFactory, mediaStore, sysLogger)
	transactionService := service.NewTransactionService(
		uowFactory,
		publisherService,
		emailService,
		gateway,
		sysLogger,
	)
	authService := service.NewAuthService(uowFactory, tokens, denylist)

	// 5. Controllers
	c.ArticleController = controller.NewArticleController(articleService)
	c.EventController = controller.NewEventController(eventService)
	c.CustomerController = controller.NewCustomerController(customerService)
	c.TransactionController = controller.NewTransactionController(transactionService)
	c.AuthController = controller.NewAuthController(authService, serverutils.NewJwtMiddleware(tokens, denylist))

	return c
}

// Close releases the bus, NATS and Redis connections and flushes the logger.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}

func newTokenDenylist(redisURL string, c *Container) contract.TokenDenylist {
	if redisURL == "" {
		return memory.NewTokenDenylist()
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: redisURL,
		}
	}
	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Using in-memory token denylist", err)
		_ = rdb.Close()
		return memory.NewTokenDenylist()
	}

	c.closers = append(c.closers, func() { _ = rdb.Close() })
	return implementation.NewRedisTokenDenylist(rdb)
}
