package main

import (
	"log"

	"devconnector_backend/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatalf("application stopped: %v", err)
	}
}
