package config

import "github.com/chrissnell/turngeometry/pkg/trig"

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get specific configuration sections
	GetEngine() (*EngineData, error)
	GetControllers() ([]ControllerData, error)

	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Engine      EngineData       `json:"engine"`
	Controllers []ControllerData `json:"controllers,omitempty"`
}

// EngineData holds the series term counts for the trig engine. A zero count
// falls back to the engine default, so configuration cannot ask for a series
// with no correction terms; build such a trig.Engine in code instead.
type EngineData struct {
	SineTerms       int `json:"sine_terms,omitempty"`
	CosineTerms     int `json:"cosine_terms,omitempty"`
	ArcsineTerms    int `json:"arcsine_terms,omitempty"`
	ArctangentTerms int `json:"arctangent_terms,omitempty"`
}

// TrigEngine returns the configured engine, validated.
func (e EngineData) TrigEngine() (trig.Engine, error) {
	engine := trig.Default()
	if e.SineTerms != 0 {
		engine.SineTerms = e.SineTerms
	}
	if e.CosineTerms != 0 {
		engine.CosineTerms = e.CosineTerms
	}
	if e.ArcsineTerms != 0 {
		engine.ArcsineTerms = e.ArcsineTerms
	}
	if e.ArctangentTerms != 0 {
		engine.ArctangentTerms = e.ArctangentTerms
	}
	return engine, engine.Validate()
}

// ControllerData holds the configuration for the API controllers
type ControllerData struct {
	Type       string          `json:"type,omitempty"`
	RESTServer *RESTServerData `json:"rest,omitempty"`
	GRPC       *GRPCData       `json:"grpc,omitempty"`
}

type RESTServerData struct {
	Cert       string `json:"cert,omitempty"`
	Key        string `json:"key,omitempty"`
	Port       int    `json:"port,omitempty"`
	ListenAddr string `json:"listen_addr,omitempty"`
}

type GRPCData struct {
	Cert       string `json:"cert,omitempty"`
	Key        string `json:"key,omitempty"`
	Port       int    `json:"port,omitempty"`
	ListenAddr string `json:"listen_addr,omitempty"`
}
