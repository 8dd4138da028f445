package routes

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	_ "reforma_xpto/docs" // swagger docs
	"reforma_xpto/internal/adapter/http/handlers"
	"reforma_xpto/internal/infrastructure/config"
	"reforma_xpto/internal/infrastructure/logging"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Clients          *handlers.ClientHandler
	Leads            *handlers.LeadHandler
	Board            *handlers.BoardHandler
	Visits           *handlers.VisitHandler
	Budgets          *handlers.BudgetHandler
	ServiceOrders    *handlers.ServiceOrderHandler
	FinancialEntries *handlers.FinancialEntryHandler
	Sequences        *handlers.SequenceHandler
}

// Run will start the server
func Run(ctx context.Context, cfg config.Config) error {
	log := logging.Default()

	app, err := Build(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	router := NewRouter(app.Handlers)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("[http][routes] listening port=%d storage=%s counter=%s", cfg.Port, cfg.StorageDriver, cfg.CounterDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("[http][routes] shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warnf("[http][routes] error during shutdown: %v", err)
	}
	return nil
}

// NewRouter mounts the API on a fresh engine.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addClientRoutes(v1, h.Clients)
	addLeadRoutes(v1, h.Leads)
	addBoardRoutes(v1, h.Board)
	addVisitRoutes(v1, h.Visits)
	addBudgetRoutes(v1, h.Budgets)
	addServiceOrderRoutes(v1, h.ServiceOrders)
	addFinancialEntryRoutes(v1, h.FinancialEntries)
	addSequenceRoutes(v1, h.Sequences)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logging.Default().Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
