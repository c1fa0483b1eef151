package models

import (
	"time"

	"github.com/google/uuid"
)

// Catalog approval statuses. Default entries ship approved; owner-submitted
// custom entries start pending.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// BoatType is a catalog entry describing a class of vessel
type BoatType struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	Name           string     `json:"name" db:"name"`
	NameEn         string     `json:"name_en" db:"name_en"`
	Description    *string    `json:"description,omitempty" db:"description"`
	MinCrew        *int       `json:"min_crew,omitempty" db:"min_crew"`
	MaxCrew        *int       `json:"max_crew,omitempty" db:"max_crew"`
	CustomAddedBy  *uuid.UUID `json:"custom_added_by,omitempty" db:"custom_added_by"`
	IsActive       bool       `json:"is_active" db:"is_active"`
	ApprovalStatus string     `json:"approval_status" db:"approval_status"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// FishingMethod is a catalog entry describing how a boat fishes
type FishingMethod struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	Name           string     `json:"name" db:"name"`
	NameEn         string     `json:"name_en" db:"name_en"`
	Description    *string    `json:"description,omitempty" db:"description"`
	RequiresTools  bool       `json:"requires_tools" db:"requires_tools"`
	MinCrewSize    int        `json:"min_crew_size" db:"min_crew_size"`
	MaxCrewSize    *int       `json:"max_crew_size,omitempty" db:"max_crew_size"`
	CustomAddedBy  *uuid.UUID `json:"custom_added_by,omitempty" db:"custom_added_by"`
	IsActive       bool       `json:"is_active" db:"is_active"`
	ApprovalStatus string     `json:"approval_status" db:"approval_status"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// FishingTool is a catalog entry for auxiliary fishing equipment
type FishingTool struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	NameEn      *string    `json:"name_en,omitempty" db:"name_en"`
	Description *string    `json:"description,omitempty" db:"description"`
	Category    *string    `json:"category,omitempty" db:"category"`
	IsDefault   bool       `json:"is_default" db:"is_default"`
	CreatorID   *uuid.UUID `json:"creator_id,omitempty" db:"creator_id"`
	IsActive    bool       `json:"is_active" db:"is_active"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}
