package bootstrap

import (
	"context"
	"fmt"

	"mentorlink-be/internal/config"
	"mentorlink-be/internal/controller"
	"mentorlink-be/internal/pkg/logger"
	"mentorlink-be/internal/repository/cache"
	"mentorlink-be/internal/repository/contract"
	"mentorlink-be/internal/repository/implementation"
	"mentorlink-be/internal/repository/memory"
	"mentorlink-be/internal/seed"
	"mentorlink-be/internal/service"
	"mentorlink-be/pkg/chatbot"
	"mentorlink-be/pkg/llm/factory"
	pktNats "mentorlink-be/pkg/nats"
	"mentorlink-be/pkg/search"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	Logger logger.ILogger

	// Controllers
	ChatbotController controller.IChatbotController
	SearchController  controller.ISearchController
	ContentController controller.IContentController

	// Background Services (Exposed for main.go to run)
	ConsumerService    service.IConsumerService
	ContentEventBridge service.IContentEventBridge // nil without NATS

	closers []func()
}

// NewContainer wires every dependency. db may be nil when RECORD_STORE=memory.
// NATS and Redis are optional; when unreachable the service runs without them.
func NewContainer(ctx context.Context, cfg *config.Config, db *gorm.DB, sysLogger logger.ILogger) (*Container, error) {
	c := &Container{Logger: sysLogger}

	instanceId := cfg.App.InstanceId
	if instanceId == "" {
		instanceId = uuid.NewString()
	}

	// 1. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		logger.NewWatermillAdapter(sysLogger, "CONTENT_EVENTS", !cfg.IsProduction()),
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	var natsPub *pktNats.Publisher
	var natsSub *pktNats.Subscriber
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL, sysLogger)
		if err != nil {
			sysLogger.Warn("NATS", "Failed to connect NATS publisher", map[string]interface{}{"error": err.Error()})
		} else {
			c.closers = append(c.closers, natsPub.Close)
		}
		natsSub, err = pktNats.NewSubscriber(cfg.App.NatsURL, sysLogger)
		if err != nil {
			sysLogger.Warn("NATS", "Failed to connect NATS subscriber", map[string]interface{}{"error": err.Error()})
		} else {
			c.closers = append(c.closers, natsSub.Close)
		}
	}

	// 2. Record Store
	var base contract.RecordStore
	switch cfg.App.RecordStore {
	case config.RecordStorePostgres:
		if db == nil {
			return nil, fmt.Errorf("record store %q needs a database connection", cfg.App.RecordStore)
		}
		base = implementation.NewRecordStore(db)
	case config.RecordStoreMemory:
		base = memory.NewStaticRecordStore(seed.AssignIds(seed.SampleSnapshot()))
	default:
		return nil, fmt.Errorf("unknown record store %q", cfg.App.RecordStore)
	}

	var caches []service.CacheInvalidator
	store := base
	if rdb := newRedisClient(ctx, cfg.App.RedisURL, sysLogger); rdb != nil {
		c.closers = append(c.closers, func() { _ = rdb.Close() })
		shared := cache.NewRedisRecordStore(store, rdb, cfg.App.RedisSnapshotTTL, sysLogger)
		caches = append(caches, shared)
		store = shared
	}
	local := memory.NewCachedRecordStore(store, cfg.App.SnapshotCacheTTL)
	caches = append(caches, local)

	// 3. Generation Backend
	generator, err := factory.NewGenerator(ctx, factory.Options{
		Provider:      cfg.Ai.LLMProvider,
		Model:         cfg.Ai.LLMModel,
		OpenAIKey:     cfg.Keys.OpenAI,
		OpenAIBaseURL: cfg.Ai.OpenAIBaseURL,
		GeminiKey:     cfg.Keys.GoogleGemini,
		OllamaBaseURL: cfg.Ai.OllamaBaseURL,
		Timeout:       cfg.Ai.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("init generator: %w", err)
	}
	sysLogger.Info("CHATBOT", "Generation backend ready", map[string]interface{}{
		"provider":   cfg.Ai.LLMProvider,
		"model":      cfg.Ai.LLMModel,
		"configured": generator.Configured(),
	})

	// 4. Services
	engine := search.NewEngine(local)
	composer := chatbot.NewComposer(engine, generator, sysLogger, chatbot.Options{
		MaxOutputTokens: cfg.Ai.MaxOutputTokens,
		Temperature:     cfg.Ai.Temperature,
		Timeout:         cfg.Ai.Timeout,
	})

	publisherService := service.NewPublisherService(cfg.App.ContentTopic, pubSub)

	var eventPublisher service.EventPublisher
	if natsPub != nil {
		eventPublisher = natsPub
	}

	chatbotService := service.NewChatbotService(composer, sysLogger)
	searchService := service.NewSearchService(engine)
	contentService := service.NewContentService(instanceId, publisherService, eventPublisher, sysLogger)

	c.ConsumerService = service.NewConsumerService(pubSub, cfg.App.ContentTopic, sysLogger, caches...)
	if natsSub != nil {
		c.ContentEventBridge = service.NewContentEventBridge(instanceId, natsSub, publisherService, sysLogger)
	}

	// 5. Controllers
	c.ChatbotController = controller.NewChatbotController(chatbotService, sysLogger)
	c.SearchController = controller.NewSearchController(searchService)
	c.ContentController = controller.NewContentController(contentService)

	return c, nil
}

// Close releases event bus and cache connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

func newRedisClient(ctx context.Context, url string, sysLogger logger.ILogger) *redis.Client {
	if url == "" {
		return nil
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		sysLogger.Warn("RECORD_STORE", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{"error": err.Error()})
		opt = &redis.Options{
			Addr: url,
		}
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		sysLogger.Warn("RECORD_STORE", "Redis unreachable, shared snapshot cache disabled", map[string]interface{}{"error": err.Error()})
		_ = rdb.Close()
		return nil
	}
	return rdb
}
