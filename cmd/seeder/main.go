package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/parsab/daryaban/internal/pkg/config"
	"github.com/parsab/daryaban/internal/pkg/database"
)

// seeder fills the catalog tables with the default entries the registration
// forms rely on. Safe to run repeatedly: existing names are skipped.
func main() {
	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		log.Fatalf("failed to connect to PostgreSQL: %v", err)
	}
	defer postgresClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := postgresClient.GetDB()
	seedBoatTypes(ctx, db)
	seedFishingMethods(ctx, db)
	seedFishingTools(ctx, db)

	log.Println("catalog seeding complete")
}

type boatTypeSeed struct {
	Name    string
	NameEn  string
	MinCrew int
	MaxCrew int
}

func seedBoatTypes(ctx context.Context, db *sqlx.DB) {
	seeds := []boatTypeSeed{
		{"قایق", "Small boat", 1, 4},
		{"لنج صیادی", "Fishing dhow", 4, 15},
		{"لنج باری", "Cargo dhow", 3, 10},
		{"کشتی صیادی", "Fishing vessel", 10, 40},
	}

	for _, s := range seeds {
		_, err := db.ExecContext(ctx, `
			INSERT INTO boat_types (name, name_en, min_crew, max_crew, is_active, approval_status)
			SELECT $1, $2, $3, $4, TRUE, 'approved'
			WHERE NOT EXISTS (SELECT 1 FROM boat_types WHERE name = $1)`,
			s.Name, s.NameEn, s.MinCrew, s.MaxCrew)
		if err != nil {
			log.Fatalf("failed to seed boat type %q: %v", s.NameEn, err)
		}
	}
	log.Printf("seeded %d boat types", len(seeds))
}

type fishingMethodSeed struct {
	Name          string
	NameEn        string
	RequiresTools bool
	MinCrewSize   int
}

func seedFishingMethods(ctx context.Context, db *sqlx.DB) {
	seeds := []fishingMethodSeed{
		{"گرگور", "Trap fishing", true, 2},
		{"تور گوشگیر", "Gillnet", true, 3},
		{"ترال", "Trawling", true, 8},
		{"قلاب", "Hook and line", false, 1},
		{"پرساین", "Purse seine", true, 10},
	}

	for _, s := range seeds {
		_, err := db.ExecContext(ctx, `
			INSERT INTO fishing_methods (name, name_en, requires_tools, min_crew_size, is_active, approval_status)
			SELECT $1, $2, $3, $4, TRUE, 'approved'
			WHERE NOT EXISTS (SELECT 1 FROM fishing_methods WHERE name = $1)`,
			s.Name, s.NameEn, s.RequiresTools, s.MinCrewSize)
		if err != nil {
			log.Fatalf("failed to seed fishing method %q: %v", s.NameEn, err)
		}
	}
	log.Printf("seeded %d fishing methods", len(seeds))
}

func seedFishingTools(ctx context.Context, db *sqlx.DB) {
	seeds := []struct {
		Name     string
		NameEn   string
		Category string
	}{
		{"گرگور", "Fish trap", "trap"},
		{"تور", "Net", "net"},
		{"قلاب", "Hook", "line"},
		{"طناب", "Rope", "rigging"},
	}

	for _, s := range seeds {
		_, err := db.ExecContext(ctx, `
			INSERT INTO fishing_tools (name, name_en, category, is_default, is_active)
			SELECT $1, $2, $3, TRUE, TRUE
			WHERE NOT EXISTS (SELECT 1 FROM fishing_tools WHERE name = $1)`,
			s.Name, s.NameEn, s.Category)
		if err != nil {
			log.Fatalf("failed to seed fishing tool %q: %v", s.NameEn, err)
		}
	}
	log.Printf("seeded %d fishing tools", len(seeds))
}
