package models

import (
	"time"
)

// VesselLocation is a vessel's last reported position. Positions live in a
// Redis GEO set; Geohash and DistanceKm are computed on the way out.
type VesselLocation struct {
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Geohash    string    `json:"geohash,omitempty"`
	DistanceKm float64   `json:"distance_km,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UpdateVesselLocationRequest upserts a vessel position
type UpdateVesselLocationRequest struct {
	UserID    string  `json:"user_id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NearbyVesselsRequest searches for vessels within a radius
type NearbyVesselsRequest struct {
	Latitude  float64 `json:"latitude" query:"latitude"`
	Longitude float64 `json:"longitude" query:"longitude"`
	RadiusKm  float64 `json:"radius_km" query:"radius_km"`
}
