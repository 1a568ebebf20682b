// clear_db wipes every lead and resets the id counter, so the next
// registration starts again at id 1. Offline maintenance tool.
package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"

	"tyltyhub/internal/config"
	"tyltyhub/internal/database"
	"tyltyhub/internal/repository"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Printf("db connect failed: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("db close error: %v", err)
		}
	}()

	// The table may not exist yet on a fresh database.
	if err := repository.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	leadRepo := repository.NewLeadRepository(db)

	deleted, err := leadRepo.ClearAll(context.Background())
	switch {
	case err == nil:
		log.Printf("leads removidos: %d", deleted)
		log.Println("contador de ID resetado, próximo ID será 1")
	case errors.Is(err, repository.ErrCounterReset):
		// Rows are already gone at this point; only the counter reset failed.
		log.Printf("leads removidos: %d", deleted)
		log.Printf("falha ao resetar contador de ID: %v", err)
	default:
		log.Fatalf("clear failed: %v", err)
	}
}
