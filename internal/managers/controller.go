package managers

import (
	"context"
	"fmt"
	"sync"

	grpccontroller "github.com/chrissnell/turngeometry/internal/controllers/grpc"
	"github.com/chrissnell/turngeometry/internal/controllers/restserver"
	"github.com/chrissnell/turngeometry/pkg/config"
	"github.com/chrissnell/turngeometry/pkg/trig"
	"go.uber.org/zap"
)

// ControllerManager interface for the controller manager
type ControllerManager interface {
	StartControllers() error
	Count() int
}

// Controller is an interface that provides standard methods for various controller backends
type Controller interface {
	StartController() error
}

// NewControllerManager creates a new controller manager
func NewControllerManager(ctx context.Context, wg *sync.WaitGroup, configProvider config.ConfigProvider, logger *zap.SugaredLogger) (ControllerManager, error) {
	engineData, err := configProvider.GetEngine()
	if err != nil {
		return nil, fmt.Errorf("error loading engine configuration: %v", err)
	}
	engine, err := engineData.TrigEngine()
	if err != nil {
		return nil, fmt.Errorf("invalid engine configuration: %w", err)
	}

	controllerConfigs, err := configProvider.GetControllers()
	if err != nil {
		return nil, fmt.Errorf("error loading controller configurations: %v", err)
	}

	cm := &controllerManager{
		ctx:         ctx,
		wg:          wg,
		engine:      engine,
		logger:      logger,
		controllers: make([]Controller, 0),
	}

	// Create controllers based on configuration
	for _, con := range controllerConfigs {
		controller, err := cm.createController(con)
		if err != nil {
			return nil, fmt.Errorf("error creating controller: %v", err)
		}
		cm.controllers = append(cm.controllers, controller)
	}

	return cm, nil
}

type controllerManager struct {
	ctx         context.Context
	wg          *sync.WaitGroup
	engine      trig.Engine
	logger      *zap.SugaredLogger
	controllers []Controller
}

func (c *controllerManager) StartControllers() error {
	c.logger.Info("Starting controller manager...")

	for _, controller := range c.controllers {
		err := controller.StartController()
		if err != nil {
			return fmt.Errorf("error starting controller: %v", err)
		}
	}

	c.logger.Infof("Started %d controllers successfully", len(c.controllers))
	return nil
}

func (c *controllerManager) Count() int {
	return len(c.controllers)
}

// createController creates a controller based on the controller configuration
func (cm *controllerManager) createController(cc config.ControllerData) (Controller, error) {
	switch cc.Type {
	case "restserver", "rest":
		var rc config.RESTServerData
		if cc.RESTServer != nil {
			rc = *cc.RESTServer
		}
		return restserver.NewController(cm.ctx, cm.wg, cm.engine, rc, cm.logger.Named("rest"))
	case "grpc":
		var gc config.GRPCData
		if cc.GRPC != nil {
			gc = *cc.GRPC
		}
		return grpccontroller.NewController(cm.ctx, cm.wg, cm.engine, gc, cm.logger.Named("grpc"))
	default:
		return nil, fmt.Errorf("unknown controller type: %s", cc.Type)
	}
}
