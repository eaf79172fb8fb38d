package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pdv3/hybrid-backend/pkg/app"
	"github.com/pdv3/hybrid-backend/pkg/app/api"
	"github.com/pdv3/hybrid-backend/pkg/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadAPIServer(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	var runner app.Runner = api.NewServer(cfg)
	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "PDV API server failed: %v\n", err)
		os.Exit(1)
	}
}
