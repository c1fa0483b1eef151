package fleet

import "errors"

// Domain errors for fleet operations
var (
	ErrBoatNotFound       = errors.New("boat not found")
	ErrNotBoatOwner       = errors.New("boat belongs to another owner")
	ErrBoatCodeTaken      = errors.New("boat code already registered for this fishing method")
	ErrCrewMemberNotFound = errors.New("crew member not found")
	ErrCrewMemberOnBoard  = errors.New("national code already assigned to this boat")
	ErrActivityNotFound   = errors.New("fishing activity not found")
	ErrSettlementNotFound = errors.New("settlement not found")
	ErrNotSettlementOwner = errors.New("settlement belongs to another account")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidShareTotal  = errors.New("crew shares must not exceed 100 percent")
)
