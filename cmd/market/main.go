package main

import (
	"log"

	"github.com/dastodo/market/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ market failed to start: %v", err)
	}
}
