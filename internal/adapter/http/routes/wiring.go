package routes

import (
	"context"
	"fmt"

	"reforma_xpto/internal/adapter/events"
	"reforma_xpto/internal/adapter/http/handlers"
	"reforma_xpto/internal/adapter/persistence/counter"
	"reforma_xpto/internal/adapter/persistence/memory"
	"reforma_xpto/internal/adapter/persistence/repository"
	"reforma_xpto/internal/domain/board"
	"reforma_xpto/internal/domain/entities"
	"reforma_xpto/internal/domain/sequence"
	"reforma_xpto/internal/infrastructure/config"
	"reforma_xpto/internal/infrastructure/database"
	"reforma_xpto/internal/infrastructure/logging"
	"reforma_xpto/internal/infrastructure/payments"
	"reforma_xpto/internal/usecase"
	"reforma_xpto/internal/usecase/interfaces"
	"reforma_xpto/pkg/rabbitmq"
)

// App is the wired service and the resources it holds open.
type App struct {
	Handlers Handlers
	closers  []func()
}

func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// Build connects the configured backends and assembles the handlers.
// Optional collaborators (event bus, payment gateway) are skipped with a warning when unavailable.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	app := &App{}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	counters, err := app.buildCounterStore(ctx, cfg, store)
	if err != nil {
		app.Close()
		return nil, err
	}
	registry := sequence.NewRegistry(counters, sequence.WithPrefix(cfg.SequencePrefix))

	publisher := app.buildPublisher(cfg)
	gateway := buildGateway(cfg)

	app.Handlers = NewHandlers(store, registry, publisher, gateway)
	return app, nil
}

// NewHandlers wires the use cases over one shared core.
func NewHandlers(store usecase.Store, registry *sequence.Registry, publisher interfaces.IEventPublisher, gateway interfaces.IPaymentGateway) Handlers {
	core := usecase.NewCore(store, registry, publisher, usecase.WithLogger(logging.Default()))

	clients := usecase.NewClientUseCase(core)
	leads := usecase.NewLeadUseCase(core)
	visits := usecase.NewVisitUseCase(core)
	budgets := usecase.NewBudgetUseCase(core)
	orders := usecase.NewServiceOrderUseCase(core)
	entries := usecase.NewFinancialEntryUseCase(core, gateway)

	return Handlers{
		Clients:          handlers.NewClientHandler(clients),
		Leads:            handlers.NewLeadHandler(leads, clients, visits),
		Board:            handlers.NewBoardHandler(usecase.NewBoardUseCase(core, board.NewSessions())),
		Visits:           handlers.NewVisitHandler(visits, budgets),
		Budgets:          handlers.NewBudgetHandler(budgets),
		ServiceOrders:    handlers.NewServiceOrderHandler(orders),
		FinancialEntries: handlers.NewFinancialEntryHandler(entries),
		Sequences:        handlers.NewSequenceHandler(usecase.NewSequenceUseCase(registry)),
	}
}

// MemoryStore keeps every entity in process memory.
func MemoryStore() usecase.Store {
	return usecase.Store{
		Clients: memory.NewClientRepository(),
		Leads:   memory.NewLeadRepository(),
		Visits:  memory.NewVisitRepository(),
		Budgets: memory.NewBudgetRepository(),
		Orders:  memory.NewServiceOrderRepository(),
		Entries: memory.NewFinancialEntryRepository(),
	}
}

func buildStore(ctx context.Context, cfg config.Config) (usecase.Store, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory, "":
		return MemoryStore(), nil
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{
			Region:          cfg.AWSRegion,
			Endpoint:        cfg.DynamoDBEndpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		})
		if err != nil {
			return usecase.Store{}, err
		}
		return usecase.Store{
			Clients: repository.NewClientDynamoRepository(ddb),
			Leads:   repository.NewLeadDynamoRepository(ddb),
			Visits:  repository.NewVisitDynamoRepository(ddb),
			Budgets: repository.NewBudgetDynamoRepository(ddb),
			Orders:  repository.NewServiceOrderDynamoRepository(ddb),
			Entries: repository.NewFinancialEntryDynamoRepository(ddb),
		}, nil
	}
	return usecase.Store{}, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
}

func (a *App) buildCounterStore(ctx context.Context, cfg config.Config, store usecase.Store) (sequence.CounterStore, error) {
	switch cfg.CounterDriver {
	case config.CounterMemory, "":
		counters := sequence.NewMemoryCounterStore()
		if err := resumeCounters(ctx, store, counters); err != nil {
			return nil, err
		}
		return counters, nil
	case config.CounterRedis:
		rdb, err := database.ConnectRedis(ctx, cfg.RedisAddress)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = rdb.Close() })
		return counter.NewRedisCounterStore(rdb, ""), nil
	case config.CounterPostgres:
		pool, err := database.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, pool.Close)
		store, err := counter.NewPostgresCounterStore(pool)
		if err != nil {
			return nil, err
		}
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return store, nil
	}
	return nil, fmt.Errorf("unknown COUNTER_DRIVER %q", cfg.CounterDriver)
}

// resumeCounters moves in-memory counters past every number already stored, so a restart over
// persistent storage does not mint numbers that exist.
func resumeCounters(ctx context.Context, store usecase.Store, counters *sequence.MemoryCounterStore) error {
	highest := map[entities.DocumentKind]int64{}
	track := func(kind entities.DocumentKind, number string) {
		if n, ok := entities.SequenceValue(number); ok && n > highest[kind] {
			highest[kind] = n
		}
	}

	visits, err := store.Visits.List(ctx)
	if err != nil {
		return fmt.Errorf("resume visit counter: %w", err)
	}
	for _, v := range visits {
		track(entities.DocumentKindVisit, v.VisitNumber)
	}
	budgets, err := store.Budgets.List(ctx)
	if err != nil {
		return fmt.Errorf("resume budget counter: %w", err)
	}
	for _, b := range budgets {
		track(entities.DocumentKindBudget, b.BudgetNumber)
	}
	orders, err := store.Orders.List(ctx)
	if err != nil {
		return fmt.Errorf("resume service order counter: %w", err)
	}
	for _, o := range orders {
		track(entities.DocumentKindServiceOrder, o.ServiceOrderNumber)
	}

	for kind, n := range highest {
		counters.Seed(kind, n+1)
		logging.Default().Infof("[sequence][routes] %s counter resumes at %d", kind, n+1)
	}
	return nil
}

func (a *App) buildPublisher(cfg config.Config) interfaces.IEventPublisher {
	if cfg.RabbitMQURL == "" {
		logging.Default().Info("[events][routes] RABBITMQ_URL not set, lifecycle events are not published")
		return nil
	}
	producer, err := rabbitmq.NewPublisher(rabbitmq.PublisherConfig{
		URL:             cfg.RabbitMQURL,
		ExchangeName:    cfg.RabbitMQExchange,
		ExchangeType:    "topic",
		Durable:         true,
		DeclareExchange: true,
	})
	if err != nil {
		logging.Default().Warnf("[events][routes] RabbitMQ unavailable, lifecycle events are not published: %v", err)
		return nil
	}
	a.closers = append(a.closers, func() { _ = producer.Close() })
	return events.NewDocumentEventPublisher(producer, "")
}

func buildGateway(cfg config.Config) interfaces.IPaymentGateway {
	gateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		logging.Default().Warnf("[ledger][routes] Mercado Pago gateway not configured: %v", err)
		return nil
	}
	return gateway
}
