package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/raushankrgupta/eco-packaging/api"
	"github.com/raushankrgupta/eco-packaging/catalog"
	"github.com/raushankrgupta/eco-packaging/config"
	"github.com/raushankrgupta/eco-packaging/view"
)

func main() {
	config.LoadConfig()

	// The product table is generated once and only read afterwards
	productCatalog := catalog.Build()
	log.Printf("Generated product catalog with %d products", productCatalog.Len())

	sessions := view.NewSessions(productCatalog, config.LoadingDelay, config.SessionTTL)
	if config.SessionTTL > 0 && config.SessionSweepInterval > 0 {
		go sessions.Run(context.Background(), config.SessionSweepInterval)
	}
	handler := api.NewHandler(productCatalog, sessions, config.ChartJSURL)

	port := config.Port
	fmt.Printf("Server starting on port %s...\n", port)
	fmt.Printf("Open http://localhost:%s/ or: curl -X POST \"http://localhost:%s/api/analyze?product=Smartphone\"\n", port, port)
	if err := http.ListenAndServe(":"+port, handler.Routes()); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
