package restserver

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/chrissnell/turngeometry/internal/calc"
	"github.com/chrissnell/turngeometry/internal/log"
	"github.com/chrissnell/turngeometry/pkg/config"
	"github.com/chrissnell/turngeometry/pkg/trig"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Controller represents the REST server controller
type Controller struct {
	ctx        context.Context
	wg         *sync.WaitGroup
	restConfig config.RESTServerData
	Server     http.Server
	calculator *calc.Calculator
	logger     *zap.SugaredLogger
	handlers   *Handlers
}

// NewController creates a new REST server controller
func NewController(ctx context.Context, wg *sync.WaitGroup, engine trig.Engine, rc config.RESTServerData, logger *zap.SugaredLogger) (*Controller, error) {
	calculator, err := calc.New(engine)
	if err != nil {
		return nil, fmt.Errorf("REST server engine: %w", err)
	}

	ctrl := &Controller{
		ctx:        ctx,
		wg:         wg,
		calculator: calculator,
		logger:     logger,
	}

	// If a ListenAddr was not provided, listen on all interfaces
	if rc.ListenAddr == "" {
		logger.Info("rest.listen-addr not provided; defaulting to 0.0.0.0 (all interfaces)")
		rc.ListenAddr = "0.0.0.0"
	}

	// Set default HTTP port if not specified
	if rc.Port == 0 {
		logger.Info("rest.port not provided; defaulting to 8080")
		rc.Port = 8080
	}
	ctrl.restConfig = rc

	ctrl.handlers = NewHandlers(ctrl)

	ctrl.Server.Addr = fmt.Sprintf("%v:%v", rc.ListenAddr, rc.Port)
	ctrl.Server.Handler = ctrl.setupRouter()
	ctrl.Server.ReadHeaderTimeout = 10 * time.Second

	return ctrl, nil
}

// StartController starts the REST server
func (c *Controller) StartController() error {
	log.Info("Starting REST server controller...")
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		c.logger.Infof("REST server listening on %s", c.Server.Addr)
		if c.restConfig.Cert != "" && c.restConfig.Key != "" {
			if err := c.Server.ListenAndServeTLS(c.restConfig.Cert, c.restConfig.Key); err != http.ErrServerClosed {
				log.Errorf("REST server error: %v", err)
			}
		} else {
			if err := c.Server.ListenAndServe(); err != http.ErrServerClosed {
				log.Errorf("REST server error: %v", err)
			}
		}
	}()

	go func() {
		<-c.ctx.Done()
		log.Info("Shutting down the REST server...")
		c.Server.Shutdown(context.Background())
	}()

	return nil
}

// setupRouter configures the HTTP router with all endpoints
func (c *Controller) setupRouter() *mux.Router {
	router := mux.NewRouter()
	router.Use(requestIDMiddleware, accessLogMiddleware)

	router.HandleFunc("/constants", c.handlers.GetConstants).Methods(http.MethodGet)
	router.HandleFunc("/operations", c.handlers.GetOperations).Methods(http.MethodGet)
	router.HandleFunc("/angle/{unit:degrees|turn}/{value}", c.handlers.GetAngle).Methods(http.MethodGet)
	router.HandleFunc("/trig/{op}/{value}", c.handlers.GetTrig).Methods(http.MethodGet)

	router.HandleFunc("/shape/circle/circumference/{r}", c.handlers.evaluate("circle-circumference", "r")).Methods(http.MethodGet)
	router.HandleFunc("/shape/circle/area/{r}", c.handlers.GetCircleArea).Methods(http.MethodGet)
	router.HandleFunc("/shape/sphere/volume/{r}", c.handlers.evaluate("sphere-volume", "r")).Methods(http.MethodGet)
	router.HandleFunc("/shape/cone/volume/{r}/{h}", c.handlers.evaluate("cone-volume", "r", "h")).Methods(http.MethodGet)
	router.HandleFunc("/shape/cap/volume/{sphereRadius}/{capRadius}", c.handlers.evaluate("cap-volume", "sphereRadius", "capRadius")).Methods(http.MethodGet)

	router.HandleFunc("/precision", c.handlers.GetPrecision).Methods(http.MethodGet)

	return router
}
