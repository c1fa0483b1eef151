package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/parsab/daryaban/internal/pkg/database"
	"github.com/parsab/daryaban/internal/pkg/models"
)

// FleetRepo persists fleet records in Postgres and vessel positions in Redis
type FleetRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewFleetRepo creates a new fleet repository instance
func NewFleetRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *FleetRepo {
	return &FleetRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
