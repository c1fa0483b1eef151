package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/parsab/daryaban/internal/pkg/database"
	"github.com/parsab/daryaban/internal/pkg/models"
)

// AuthRepo persists accounts in Postgres and verification records in Redis
type AuthRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewAuthRepo creates a new auth repository instance
func NewAuthRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *AuthRepo {
	return &AuthRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
