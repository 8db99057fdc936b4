package grpc

import (
	"context"
	"math"
	"net"
	"sync"
	"testing"

	"github.com/chrissnell/turngeometry/internal/log"
	"github.com/chrissnell/turngeometry/pkg/config"
	"github.com/chrissnell/turngeometry/pkg/trig"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	log.Replace(zap.NewNop())

	var wg sync.WaitGroup
	ctrl, err := NewController(context.Background(), &wg, trig.Default(), config.GRPCData{}, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("NewController() error: %v", err)
	}
	if ctrl.GRPCConfig.Port != 50051 {
		t.Errorf("default port = %d, expected 50051", ctrl.GRPCConfig.Port)
	}

	lis := bufconn.Listen(1 << 20)
	ctrl.Serve(lis)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("grpc.NewClient() error: %v", err)
	}

	t.Cleanup(func() {
		conn.Close()
		ctrl.StopController()
		wg.Wait()
	})
	return NewClient(conn)
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		operation string
		args      []float64
		expected  float64
		unit      string
	}{
		{"full-turn", nil, 6.4, "turn-radian"},
		{"cosine", []float64{0}, 1, "ratio"},
		{"arcsine", []float64{1}, 90, "degree"},
		{"arccosine", []float64{-1}, 180, "degree"},
		{"circle-area", []float64{1, 0.5}, 1.6, "area"},
	}

	client := newTestClient(t)
	for _, tt := range tests {
		t.Run(tt.operation, func(t *testing.T) {
			res, err := client.Evaluate(context.Background(), tt.operation, tt.args...)
			if err != nil {
				t.Fatalf("Evaluate() error: %v", err)
			}
			if math.Abs(float64(res.Value)-tt.expected) > 1e-12 {
				t.Errorf("value = %v, expected %v", res.Value, tt.expected)
			}
			if res.Unit != tt.unit || res.Operation != tt.operation {
				t.Errorf("got %s in %s, expected %s in %s", res.Operation, res.Unit, tt.operation, tt.unit)
			}
		})
	}
}

func TestEvaluateNonFinite(t *testing.T) {
	res, err := newTestClient(t).Evaluate(context.Background(), "tangent", math.Inf(1))
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}
	if !math.IsNaN(float64(res.Value)) {
		t.Errorf("tangent(+Inf) = %v, expected NaN", res.Value)
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		operation string
		args      []float64
		code      codes.Code
	}{
		{"arcsine", []float64{2}, codes.InvalidArgument},
		{"cap-volume", []float64{1, 3}, codes.InvalidArgument},
		{"sine", nil, codes.InvalidArgument},
		{"secant", []float64{1}, codes.Unimplemented},
	}

	client := newTestClient(t)
	for _, tt := range tests {
		_, err := client.Evaluate(context.Background(), tt.operation, tt.args...)
		if got := status.Code(err); got != tt.code {
			t.Errorf("%s%v: code = %v, expected %v (%v)", tt.operation, tt.args, got, tt.code, err)
		}
	}
}
