package config

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS engine (
	id               INTEGER PRIMARY KEY CHECK (id = 1),
	sine_terms       INTEGER NOT NULL DEFAULT 0,
	cosine_terms     INTEGER NOT NULL DEFAULT 0,
	arcsine_terms    INTEGER NOT NULL DEFAULT 0,
	arctangent_terms INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS controllers (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	type        TEXT NOT NULL CHECK (type <> ''),
	cert        TEXT,
	key         TEXT,
	listen_addr TEXT,
	port        INTEGER
);
`

// SQLiteProvider implements ConfigProvider for SQLite database configuration
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteProvider creates a new SQLite configuration provider
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	return &SQLiteProvider{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// InitSchema creates the configuration tables if they do not exist
func (s *SQLiteProvider) InitSchema() error {
	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// LoadConfig loads the complete configuration from SQLite database
func (s *SQLiteProvider) LoadConfig() (*ConfigData, error) {
	config := &ConfigData{}

	engine, err := s.GetEngine()
	if err != nil {
		return nil, fmt.Errorf("failed to load engine config: %w", err)
	}
	config.Engine = *engine

	controllers, err := s.GetControllers()
	if err != nil {
		return nil, fmt.Errorf("failed to load controllers: %w", err)
	}
	config.Controllers = controllers

	return config, nil
}

// GetEngine returns the engine row, or a zero EngineData when none is stored
func (s *SQLiteProvider) GetEngine() (*EngineData, error) {
	var engine EngineData
	err := s.db.QueryRow(`
		SELECT sine_terms, cosine_terms, arcsine_terms, arctangent_terms
		FROM engine WHERE id = 1
	`).Scan(&engine.SineTerms, &engine.CosineTerms, &engine.ArcsineTerms, &engine.ArctangentTerms)
	if err == sql.ErrNoRows {
		return &engine, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query engine: %w", err)
	}
	return &engine, nil
}

// GetControllers returns controller configurations from the database
func (s *SQLiteProvider) GetControllers() ([]ControllerData, error) {
	rows, err := s.db.Query(`
		SELECT type, cert, key, listen_addr, port
		FROM controllers
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query controllers: %w", err)
	}
	defer rows.Close()

	var controllers []ControllerData
	for rows.Next() {
		var controllerType string
		var cert, key, listenAddr sql.NullString
		var port sql.NullInt64

		if err := rows.Scan(&controllerType, &cert, &key, &listenAddr, &port); err != nil {
			return nil, fmt.Errorf("failed to scan controller row: %w", err)
		}

		controller := ControllerData{Type: controllerType}
		switch controllerType {
		case "rest", "restserver":
			controller.RESTServer = &RESTServerData{
				Cert:       cert.String,
				Key:        key.String,
				ListenAddr: listenAddr.String,
				Port:       int(port.Int64),
			}
		case "grpc":
			controller.GRPC = &GRPCData{
				Cert:       cert.String,
				Key:        key.String,
				ListenAddr: listenAddr.String,
				Port:       int(port.Int64),
			}
		}
		controllers = append(controllers, controller)
	}

	return controllers, rows.Err()
}

// execer is satisfied by both *sql.DB and *sql.Tx
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// SaveEngine stores the engine term counts, replacing any previous row
func (s *SQLiteProvider) SaveEngine(engine EngineData) error {
	return s.insertEngine(s.db, engine)
}

// AddController appends a controller configuration
func (s *SQLiteProvider) AddController(controller ControllerData) error {
	return s.insertController(s.db, controller)
}

// SaveConfig replaces the stored configuration with configData, creating the
// schema if needed. Nothing is changed if any row fails to insert.
func (s *SQLiteProvider) SaveConfig(configData *ConfigData) error {
	if err := s.InitSchema(); err != nil {
		return err
	}

	// Start transaction
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Clear existing data
	if _, err := tx.Exec(`DELETE FROM controllers`); err != nil {
		return fmt.Errorf("failed to clear controllers: %w", err)
	}

	if err := s.insertEngine(tx, configData.Engine); err != nil {
		return err
	}

	for _, controller := range configData.Controllers {
		if err := s.insertController(tx, controller); err != nil {
			return fmt.Errorf("failed to insert controller %q: %w", controller.Type, err)
		}
	}

	// Commit transaction
	return tx.Commit()
}

func (s *SQLiteProvider) insertEngine(ex execer, engine EngineData) error {
	_, err := ex.Exec(`
		INSERT INTO engine (id, sine_terms, cosine_terms, arcsine_terms, arctangent_terms)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			sine_terms = excluded.sine_terms,
			cosine_terms = excluded.cosine_terms,
			arcsine_terms = excluded.arcsine_terms,
			arctangent_terms = excluded.arctangent_terms
	`, engine.SineTerms, engine.CosineTerms, engine.ArcsineTerms, engine.ArctangentTerms)
	if err != nil {
		return fmt.Errorf("failed to save engine: %w", err)
	}
	return nil
}

func (s *SQLiteProvider) insertController(ex execer, controller ControllerData) error {
	var cert, key, listenAddr string
	var port int

	switch {
	case controller.RESTServer != nil:
		cert, key = controller.RESTServer.Cert, controller.RESTServer.Key
		listenAddr, port = controller.RESTServer.ListenAddr, controller.RESTServer.Port
	case controller.GRPC != nil:
		cert, key = controller.GRPC.Cert, controller.GRPC.Key
		listenAddr, port = controller.GRPC.ListenAddr, controller.GRPC.Port
	}

	_, err := ex.Exec(`
		INSERT INTO controllers (type, cert, key, listen_addr, port)
		VALUES (?, ?, ?, ?, ?)
	`, controller.Type, cert, key, listenAddr, port)
	if err != nil {
		return fmt.Errorf("failed to add controller: %w", err)
	}
	return nil
}

// IsReadOnly returns false since SQLite supports updates
func (s *SQLiteProvider) IsReadOnly() bool {
	return false
}

// Close closes the database connection
func (s *SQLiteProvider) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
