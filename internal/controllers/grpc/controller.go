// Package grpc serves the turn-based calculator over gRPC.
package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/chrissnell/turngeometry/internal/calc"
	"github.com/chrissnell/turngeometry/internal/log"
	"github.com/chrissnell/turngeometry/pkg/config"
	"github.com/chrissnell/turngeometry/pkg/trig"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/status"
)

// Controller represents the gRPC controller
type Controller struct {
	ctx        context.Context
	wg         *sync.WaitGroup
	Server     *grpc.Server
	GRPCConfig *config.GRPCData
	calculator *calc.Calculator
	logger     *zap.SugaredLogger
}

// NewController creates a new gRPC controller instance
func NewController(ctx context.Context, wg *sync.WaitGroup, engine trig.Engine, grpcConfig config.GRPCData, logger *zap.SugaredLogger) (*Controller, error) {
	calculator, err := calc.New(engine)
	if err != nil {
		return nil, fmt.Errorf("gRPC engine: %w", err)
	}

	if grpcConfig.Port == 0 {
		logger.Info("grpc.port not provided; defaulting to 50051")
		grpcConfig.Port = 50051
	}

	ctrl := &Controller{
		ctx:        ctx,
		wg:         wg,
		GRPCConfig: &grpcConfig,
		calculator: calculator,
		logger:     logger,
	}

	opts := []grpc.ServerOption{grpc.UnaryInterceptor(ctrl.logCalls)}

	// Create gRPC server with optional TLS
	if grpcConfig.Cert != "" && grpcConfig.Key != "" {
		creds, err := credentials.NewServerTLSFromFile(grpcConfig.Cert, grpcConfig.Key)
		if err != nil {
			return nil, fmt.Errorf("could not create TLS server from keypair: %v", err)
		}
		opts = append(opts, grpc.Creds(creds))
	}
	ctrl.Server = grpc.NewServer(opts...)

	RegisterGeometryServer(ctrl.Server, ctrl)

	return ctrl, nil
}

// ListenAddr returns the address the controller listens on
func (c *Controller) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.GRPCConfig.ListenAddr, c.GRPCConfig.Port)
}

// StartController starts the gRPC controller
func (c *Controller) StartController() error {
	log.Info("Starting gRPC controller...")

	l, err := net.Listen("tcp", c.ListenAddr())
	if err != nil {
		return fmt.Errorf("gRPC controller could not create listener: %v", err)
	}
	c.Serve(l)

	go func() {
		<-c.ctx.Done()
		c.StopController()
	}()

	return nil
}

// Serve serves on l in the background until the server is stopped
func (c *Controller) Serve(l net.Listener) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		log.Infof("gRPC controller listening on %s", l.Addr())
		if err := c.Server.Serve(l); err != nil {
			log.Errorf("gRPC controller serve error: %v", err)
		}
	}()
}

// StopController stops the gRPC controller
func (c *Controller) StopController() {
	log.Info("Stopping gRPC controller...")
	if c.Server != nil {
		c.Server.GracefulStop()
	}
}

// Evaluate runs one calculator operation
func (c *Controller) Evaluate(ctx context.Context, req *EvaluateRequest) (*EvaluateResponse, error) {
	args := make([]float64, len(req.Args))
	for i, a := range req.Args {
		args[i] = float64(a)
	}

	res, err := c.calculator.Evaluate(req.Operation, args...)
	if err != nil {
		return nil, status.Error(codeFor(err), err.Error())
	}

	return &EvaluateResponse{
		Operation: res.Operation,
		Value:     res.Value,
		Unit:      res.Unit,
	}, nil
}

func codeFor(err error) codes.Code {
	switch {
	case errors.Is(err, calc.ErrUnknownOperation):
		return codes.Unimplemented
	case errors.Is(err, trig.ErrDomain), errors.Is(err, calc.ErrArity):
		return codes.InvalidArgument
	default:
		return codes.Internal
	}
}

func (c *Controller) logCalls(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	c.logger.Infow("gRPC call",
		"request_id", uuid.NewString(),
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)
	return resp, err
}
