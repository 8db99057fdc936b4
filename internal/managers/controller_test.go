package managers

import (
	"context"
	"sync"
	"testing"

	"github.com/chrissnell/turngeometry/pkg/config"
	"go.uber.org/zap"
)

type staticProvider struct {
	engine      config.EngineData
	controllers []config.ControllerData
}

func (p staticProvider) LoadConfig() (*config.ConfigData, error) {
	return &config.ConfigData{Engine: p.engine, Controllers: p.controllers}, nil
}
func (p staticProvider) GetEngine() (*config.EngineData, error)            { return &p.engine, nil }
func (p staticProvider) GetControllers() ([]config.ControllerData, error) { return p.controllers, nil }
func (p staticProvider) IsReadOnly() bool                                 { return true }
func (p staticProvider) Close() error                                     { return nil }

func TestNewControllerManager(t *testing.T) {
	tests := []struct {
		name     string
		provider staticProvider
		count    int
		wantErr  bool
	}{
		{
			name: "rest and grpc",
			provider: staticProvider{controllers: []config.ControllerData{
				{Type: "rest", RESTServer: &config.RESTServerData{Port: 8081}},
				{Type: "grpc"},
			}},
			count: 2,
		},
		{
			name:     "no controllers",
			provider: staticProvider{engine: config.EngineData{SineTerms: 3}},
			count:    0,
		},
		{
			name:     "unknown type",
			provider: staticProvider{controllers: []config.ControllerData{{Type: "carrier-pigeon"}}},
			wantErr:  true,
		},
		{
			name:     "invalid engine",
			provider: staticProvider{engine: config.EngineData{SineTerms: 500}},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cm, err := NewControllerManager(context.Background(), &sync.WaitGroup{}, tt.provider, zap.NewNop().Sugar())
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewControllerManager() error: %v", err)
			}
			if cm.Count() != tt.count {
				t.Errorf("Count() = %d, expected %d", cm.Count(), tt.count)
			}
		})
	}
}
