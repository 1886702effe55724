package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spacos/spac-os-api/internal/database"
	"github.com/spacos/spac-os-api/internal/models"
	"github.com/spacos/spac-os-api/internal/repository"
	"github.com/spacos/spac-os-api/internal/rules"
	"github.com/spacos/spac-os-api/internal/services"
	"github.com/spacos/spac-os-api/pkg/config"
)

// Recalculates fit scores for every target against every SPAC still looking
// for a deal. Run after bulk target imports or criteria changes so the stored
// scores stay consistent with the current rules.
func main() {
	fmt.Println("🎯 SPAC OS Fit Score Batch")
	fmt.Println("==========================")

	ticker := flag.String("spac", "", "limit the run to one SPAC by ticker")
	batchSize := flag.Int("batch", 100, "targets fetched per page")
	flag.Parse()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.New()

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	repos := repository.NewRepositories(db.DB)
	targetService := services.NewTargetService(repos)

	spacs, err := loadSPACs(repos, *ticker)
	if err != nil {
		log.Fatalf("Failed to load SPACs: %v", err)
	}
	if len(spacs) == 0 {
		fmt.Println("No SPACs in a deal-seeking status, nothing to do")
		return
	}

	start := time.Now()
	scored, failed := 0, 0

	for offset := 0; ; offset += *batchSize {
		targets, err := repos.Target.GetAll(repository.TargetFilters{Limit: *batchSize, Offset: offset})
		if err != nil {
			log.Fatalf("Failed to load targets: %v", err)
		}
		if len(targets) == 0 {
			break
		}

		for _, target := range targets {
			for _, spac := range spacs {
				if _, err := targetService.CalculateFit(target.ID.String(), spac.ID.String()); err != nil {
					log.Printf("score %s vs %s: %v", target.Name, spac.Name, err)
					failed++
					continue
				}
				scored++
			}
		}
	}

	fmt.Printf("\n✅ Batch completed in %v\n", time.Since(start).Round(time.Millisecond))
	fmt.Printf("   • SPACs: %d\n", len(spacs))
	fmt.Printf("   • Pairs scored: %d\n", scored)
	fmt.Printf("   • Pairs failed: %d\n", failed)
}

// loadSPACs returns the SPACs worth scoring against: a single one when a
// ticker is given, otherwise everything still before a definitive agreement.
func loadSPACs(repos *repository.Repositories, ticker string) ([]models.SPAC, error) {
	if ticker != "" {
		spac, err := repos.SPAC.GetByTicker(ticker)
		if err != nil {
			return nil, fmt.Errorf("no SPAC with ticker %s: %w", ticker, err)
		}
		return []models.SPAC{*spac}, nil
	}

	return repos.SPAC.GetAll(repository.SPACFilters{
		Status: []string{rules.SPACSearching, rules.SPACLOISigned},
		Limit:  500,
	})
}
