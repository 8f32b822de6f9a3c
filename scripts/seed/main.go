package main

import (
	"log"

	"github.com/Hariom009/WellPlate-sub000/internal/config"
	"github.com/Hariom009/WellPlate-sub000/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
}
