package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/mmcloughlin/geohash"
	"github.com/parsab/daryaban/internal/pkg/constants"
	"github.com/parsab/daryaban/internal/pkg/models"
)

// vesselInfoTTL bounds how long a stale position stays visible. A vessel that
// stops reporting drops out of nearby results once its info record expires.
const vesselInfoTTL = 24 * time.Hour

// SaveVesselLocation upserts a vessel position in the GEO set and refreshes
// its info record.
func (r *FleetRepo) SaveVesselLocation(ctx context.Context, loc *models.VesselLocation) error {
	loc.UpdatedAt = time.Now()
	loc.Geohash = geohash.Encode(loc.Latitude, loc.Longitude)

	if err := r.redisClient.GeoAdd(ctx, constants.KeyVesselGeo, loc.Longitude, loc.Latitude, loc.UserID); err != nil {
		return fmt.Errorf("failed to store vessel position: %w", err)
	}

	info, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("failed to marshal vessel info: %w", err)
	}
	key := fmt.Sprintf(constants.KeyVesselInfo, loc.UserID)
	if err := r.redisClient.Set(ctx, key, info, vesselInfoTTL); err != nil {
		return fmt.Errorf("failed to store vessel info: %w", err)
	}
	return nil
}

// GetNearbyVessels returns vessels within radiusKm of the point, nearest
// first. Members whose info record has expired are skipped.
func (r *FleetRepo) GetNearbyVessels(ctx context.Context, lat, lng, radiusKm float64) ([]*models.VesselLocation, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyVesselGeo, lng, lat, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to search vessel positions: %w", err)
	}

	vessels := make([]*models.VesselLocation, 0, len(locations))
	for _, gl := range locations {
		key := fmt.Sprintf(constants.KeyVesselInfo, gl.Name)
		val, err := r.redisClient.Get(ctx, key)
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to get vessel info: %w", err)
		}

		var v models.VesselLocation
		if err := json.Unmarshal([]byte(val), &v); err != nil {
			return nil, fmt.Errorf("failed to unmarshal vessel info: %w", err)
		}
		v.Latitude = gl.Latitude
		v.Longitude = gl.Longitude
		v.Geohash = geohash.Encode(gl.Latitude, gl.Longitude)
		v.DistanceKm = gl.Dist
		vessels = append(vessels, &v)
	}
	return vessels, nil
}
