package models

import (
	"time"

	"github.com/google/uuid"
)

// Settlement statuses. Confirmation by both sides precedes payment.
const (
	SettlementStatusPending          = "pending"
	SettlementStatusConfirmedByUser  = "confirmed_by_user"
	SettlementStatusConfirmedByOwner = "confirmed_by_owner"
	SettlementStatusPaid             = "paid"
	SettlementStatusRejected         = "rejected"
)

// Payment methods accepted on settlements
const (
	PaymentCash         = "cash"
	PaymentBankTransfer = "bank_transfer"
	PaymentCheck        = "check"
)

// Settlement is one crew member's revenue-share statement for a period
type Settlement struct {
	ID                 uuid.UUID  `json:"id" db:"id"`
	SettlementNumber   string     `json:"settlement_number" db:"settlement_number"`
	BoatID             uuid.UUID  `json:"boat_id" db:"boat_id"`
	UserNationalCode   string     `json:"user_national_code" db:"user_national_code"`
	UserRole           string     `json:"user_role" db:"user_role"`
	PeriodStart        string     `json:"period_start" db:"period_start"`
	PeriodEnd          string     `json:"period_end" db:"period_end"`
	TotalIncome        float64    `json:"total_income" db:"total_income"`
	SharePercentage    float64    `json:"share_percentage" db:"share_percentage"`
	ShareAmount        float64    `json:"share_amount" db:"share_amount"`
	Expenses           float64    `json:"expenses" db:"expenses"`
	NetAmount          float64    `json:"net_amount" db:"net_amount"`
	Status             string     `json:"status" db:"status"`
	ConfirmedByUserAt  *time.Time `json:"confirmed_by_user_at,omitempty" db:"confirmed_by_user_at"`
	ConfirmedByOwnerAt *time.Time `json:"confirmed_by_owner_at,omitempty" db:"confirmed_by_owner_at"`
	PaymentDate        *string    `json:"payment_date,omitempty" db:"payment_date"`
	PaymentMethod      *string    `json:"payment_method,omitempty" db:"payment_method"`
	PaymentReference   *string    `json:"payment_reference,omitempty" db:"payment_reference"`
	Notes              *string    `json:"notes,omitempty" db:"notes"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at" db:"updated_at"`
}

// SettlementFilter narrows settlement listings
type SettlementFilter struct {
	BoatID       *uuid.UUID
	NationalCode string
	Status       string
	Page         int
	Limit        int
}
