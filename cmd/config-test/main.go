package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chrissnell/turngeometry/pkg/config"
)

func main() {
	var (
		yamlFile   = flag.String("yaml", "", "Path to YAML configuration file")
		sqliteFile = flag.String("sqlite", "", "Path to SQLite configuration file")
	)
	flag.Parse()

	if *yamlFile == "" || *sqliteFile == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -yaml <config.yaml> -sqlite <config.db>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	fmt.Println("Configuration Comparison Test")
	fmt.Println("===========================")

	// Load YAML configuration
	fmt.Printf("Loading YAML configuration: %s\n", *yamlFile)
	yamlConfig, err := config.NewYAMLProvider(*yamlFile).LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading YAML config: %v\n", err)
		os.Exit(1)
	}

	// Load SQLite configuration
	fmt.Printf("Loading SQLite configuration: %s\n", *sqliteFile)
	sqliteProvider, err := config.NewSQLiteProvider(*sqliteFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating SQLite provider: %v\n", err)
		os.Exit(1)
	}
	defer sqliteProvider.Close()

	sqliteConfig, err := sqliteProvider.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading SQLite config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nComparison Results:")
	fmt.Println("==================")

	mismatches := 0

	if yamlConfig.Engine == sqliteConfig.Engine {
		fmt.Println("✓ Engine configuration matches")
	} else {
		fmt.Println("✗ Engine configuration differs")
		fmt.Printf("  YAML:   %+v\n  SQLite: %+v\n", yamlConfig.Engine, sqliteConfig.Engine)
		mismatches++
	}

	// Compare controllers
	fmt.Printf("\nControllers - YAML: %d, SQLite: %d\n", len(yamlConfig.Controllers), len(sqliteConfig.Controllers))
	if len(yamlConfig.Controllers) == len(sqliteConfig.Controllers) {
		fmt.Println("✓ Controller count matches")
		for i, yamlController := range yamlConfig.Controllers {
			if compareControllers(yamlController, sqliteConfig.Controllers[i]) {
				fmt.Printf("✓ Controller %s matches\n", yamlController.Type)
			} else {
				fmt.Printf("✗ Controller %s differs\n", yamlController.Type)
				mismatches++
			}
		}
	} else {
		fmt.Println("✗ Controller count mismatch")
		mismatches++
	}

	if mismatches > 0 {
		fmt.Printf("\nTest completed with %d mismatches\n", mismatches)
		os.Exit(1)
	}
	fmt.Println("\nTest completed!")
}

// compareControllers treats a missing section as its zero value, since SQLite
// always materializes one for known controller types.
func compareControllers(yaml, sqlite config.ControllerData) bool {
	if yaml.Type != sqlite.Type {
		return false
	}
	return restOf(yaml) == restOf(sqlite) && grpcOf(yaml) == grpcOf(sqlite)
}

func restOf(c config.ControllerData) config.RESTServerData {
	if c.RESTServer == nil {
		return config.RESTServerData{}
	}
	return *c.RESTServer
}

func grpcOf(c config.ControllerData) config.GRPCData {
	if c.GRPC == nil {
		return config.GRPCData{}
	}
	return *c.GRPC
}
