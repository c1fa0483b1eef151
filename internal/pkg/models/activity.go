package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Activity statuses
const (
	ActivityPlanned    = "planned"
	ActivityInProgress = "in_progress"
	ActivityCompleted  = "completed"
	ActivityCancelled  = "cancelled"
)

// Settlement statuses tracked on an activity
const (
	SettlementPending   = "pending"
	SettlementPartial   = "partial"
	SettlementCompleted = "completed"
)

// ActivityCrew records one crew member's participation and revenue share in a
// fishing trip. Keyed by national code so the sailor app can query trips
// without resolving account IDs.
type ActivityCrew struct {
	NationalCode string  `json:"national_code"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	Share        float64 `json:"share"`
	Income       float64 `json:"income"`
}

// CatchResult records one species caught during a trip
type CatchResult struct {
	FishType     string  `json:"fish_type"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	QualityGrade string  `json:"quality_grade,omitempty"`
	MarketPrice  float64 `json:"market_price,omitempty"`
}

// ActivityExpenses breaks down the costs of a trip
type ActivityExpenses struct {
	FuelCost        float64 `json:"fuel_cost,omitempty"`
	CrewWages       float64 `json:"crew_wages,omitempty"`
	ToolMaintenance float64 `json:"tool_maintenance,omitempty"`
	FoodSupplies    float64 `json:"food_supplies,omitempty"`
	OtherCosts      float64 `json:"other_costs,omitempty"`
	TotalCost       float64 `json:"total_cost"`
}

// ActivityRevenue records the sale outcome of a trip
type ActivityRevenue struct {
	TotalSale    float64 `json:"total_sale"`
	SaleDate     string  `json:"sale_date,omitempty"`
	BuyerInfo    string  `json:"buyer_info,omitempty"`
	ProfitMargin float64 `json:"profit_margin,omitempty"`
}

// Dispute is a sailor's objection to a trip's settlement figures
type Dispute struct {
	SailorNationalCode string     `json:"sailor_national_code"`
	Reason             string     `json:"reason"`
	Description        string     `json:"description,omitempty"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
	ResolvedAt         *time.Time `json:"resolved_at,omitempty"`
	Resolution         string     `json:"resolution,omitempty"`
}

// FishingActivity represents one fishing trip of a boat
type FishingActivity struct {
	ID               uuid.UUID        `json:"id" db:"id"`
	BoatID           uuid.UUID        `json:"boat_id" db:"boat_id"`
	FishingMethodID  uuid.UUID        `json:"fishing_method_id" db:"fishing_method_id"`
	StartDate        string           `json:"start_date" db:"start_date"`
	EndDate          *string          `json:"end_date,omitempty" db:"end_date"`
	Status           string           `json:"status" db:"status"`
	Crew             CrewShares       `json:"crew" db:"crew"`
	CatchResults     CatchResults     `json:"catch_results" db:"catch_results"`
	Expenses         ExpensesDoc      `json:"expenses" db:"expenses"`
	Revenue          RevenueDoc       `json:"revenue" db:"revenue"`
	TotalIncome      float64          `json:"total_income" db:"total_income"`
	TotalExpense     float64          `json:"total_expense" db:"total_expense"`
	SettlementStatus string           `json:"settlement_status" db:"settlement_status"`
	Notes            *string          `json:"notes,omitempty" db:"notes"`
	Disputes         Disputes         `json:"disputes,omitempty" db:"disputes"`
	CreatedBy        uuid.UUID        `json:"created_by" db:"created_by"`
	CreatedAt        time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at" db:"updated_at"`
}

// JSONB wrappers so sqlx can scan the document columns directly.

type CrewShares []ActivityCrew

func (c CrewShares) Value() (driver.Value, error)  { return jsonbValue(c) }
func (c *CrewShares) Scan(src interface{}) error   { return jsonbScan(src, c) }

type CatchResults []CatchResult

func (c CatchResults) Value() (driver.Value, error) { return jsonbValue(c) }
func (c *CatchResults) Scan(src interface{}) error  { return jsonbScan(src, c) }

type ExpensesDoc ActivityExpenses

func (e ExpensesDoc) Value() (driver.Value, error) { return jsonbValue(e) }
func (e *ExpensesDoc) Scan(src interface{}) error  { return jsonbScan(src, e) }

type RevenueDoc ActivityRevenue

func (r RevenueDoc) Value() (driver.Value, error) { return jsonbValue(r) }
func (r *RevenueDoc) Scan(src interface{}) error  { return jsonbScan(src, r) }

type Disputes []Dispute

func (d Disputes) Value() (driver.Value, error) { return jsonbValue(d) }
func (d *Disputes) Scan(src interface{}) error  { return jsonbScan(src, d) }

func jsonbValue(v interface{}) (driver.Value, error) {
	return json.Marshal(v)
}

func jsonbScan(src, dst interface{}) error {
	if src == nil {
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		s, ok := src.(string)
		if !ok {
			return fmt.Errorf("unsupported jsonb source type %T", src)
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, dst)
}

// SailorSettlementView is one trip seen through a sailor's revenue share
type SailorSettlementView struct {
	ActivityID   uuid.UUID `json:"activity_id"`
	BoatID       uuid.UUID `json:"boat_id"`
	BoatName     string    `json:"boat_name"`
	Date         string    `json:"date"`
	TotalIncome  float64   `json:"total_income"`
	TotalExpense float64   `json:"total_expense"`
	SailorShare  float64   `json:"sailor_share"`
	SailorIncome float64   `json:"sailor_income"`
	Status       string    `json:"status"`
}

// SailorStats aggregates a sailor's trip history
type SailorStats struct {
	TotalActivities int     `json:"total_activities" db:"total_activities"`
	TotalBoats      int     `json:"total_boats" db:"total_boats"`
	TotalIncome     float64 `json:"total_income" db:"total_income"`
	LastActivity    *string `json:"last_activity,omitempty" db:"-"`
	LastBoatName    *string `json:"last_boat_name,omitempty" db:"-"`
}

// Pagination is the standard list paging envelope
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// ActivityFilter narrows activity listings
type ActivityFilter struct {
	NationalCode string
	BoatID       *uuid.UUID
	StartDate    string
	EndDate      string
	Page         int
	Limit        int
}
