package constants

// Redis key formats
const (
	// Verification records, one per (purpose, mobile) pair
	KeyVerification = "verify:%s:%s" // Format: verify:{purpose}:{mobile}

	// Step tokens for the change-mobile flow
	KeyChangeMobileStep = "verify:step:%s" // Format: verify:step:{national_code}

	// Vessel geolocation
	KeyVesselGeo  = "vessel:geo"     // GEO set of all vessel positions
	KeyVesselInfo = "vessel:info:%s" // Format: vessel:info:{user_id}
)
