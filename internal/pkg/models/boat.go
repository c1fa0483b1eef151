package models

import (
	"time"

	"github.com/google/uuid"
)

// Boat statuses
const (
	BoatStatusPending  = 0
	BoatStatusActive   = 1
	BoatStatusInactive = 2
)

// Boat represents a registered fishing vessel. A boat code may appear once
// per fishing method, enforced by a unique index on (code, fishing_method_id).
type Boat struct {
	ID               uuid.UUID  `json:"id" db:"id"`
	Name             string     `json:"name" db:"name"`
	Code             string     `json:"code" db:"code"`
	RegistrationDate *string    `json:"registration_date,omitempty" db:"registration_date"`
	Documents        *string    `json:"documents,omitempty" db:"documents"`
	FuelQuota        *string    `json:"fuel_quota,omitempty" db:"fuel_quota"`
	BoatTypeID       *uuid.UUID `json:"boat_type_id,omitempty" db:"boat_type_id"`
	FishingMethodID  *uuid.UUID `json:"fishing_method_id,omitempty" db:"fishing_method_id"`
	Status           int        `json:"status" db:"status"`
	OwnerID          *uuid.UUID `json:"owner_id,omitempty" db:"owner_id"`
	CaptainID        *uuid.UUID `json:"captain_id,omitempty" db:"captain_id"`
	InvoicePeriod    *string    `json:"invoice_period,omitempty" db:"invoice_period"`
	SettlementPeriod *string    `json:"settlement_period,omitempty" db:"settlement_period"`
	MinCrew          *int       `json:"min_crew,omitempty" db:"min_crew"`
	MaxCrew          *int       `json:"max_crew,omitempty" db:"max_crew"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}

// CrewMember assigns a person to a boat with a revenue share. One national
// code may appear once per boat, enforced by a unique index.
type CrewMember struct {
	ID              uuid.UUID `json:"id" db:"id"`
	BoatID          uuid.UUID `json:"boat_id" db:"boat_id"`
	NationalCode    string    `json:"national_code" db:"national_code"`
	Name            string    `json:"name" db:"name"`
	Role            string    `json:"role" db:"role"`
	SharePercentage float64   `json:"share_percentage" db:"share_percentage"`
	AssignmentDate  string    `json:"assignment_date" db:"assignment_date"`
	EndDate         *string   `json:"end_date,omitempty" db:"end_date"`
	IsActive        bool      `json:"is_active" db:"is_active"`
	Notes           *string   `json:"notes,omitempty" db:"notes"`
	OwnerCode       string    `json:"owner_code" db:"owner_code"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
