package domain

// ServiceType identifies one of the fixed service offerings
type ServiceType string

const (
	ServiceStandard ServiceType = "Standard Clean"
	ServiceDeep     ServiceType = "Deep Clean"
	ServiceMove     ServiceType = "Move-in/Move-out"
	ServiceOffice   ServiceType = "Office Clean"
)

// IsOffice returns true if the offering cleans commercial space
func (t ServiceType) IsOffice() bool {
	return t == ServiceOffice
}

// ServiceOffering is immutable reference data, loaded once at startup
type ServiceOffering struct {
	ID               ServiceType
	Title            string
	Description      string
	HourlyRate       float64 // per hour, CAD
	RecommendedHours float64
}

// ServiceCatalog перечень услуг - справочные данные, никогда не мутируются
var ServiceCatalog = []ServiceOffering{
	{
		ID:               ServiceStandard,
		Title:            "Standard Clean",
		Description:      "Regular maintenance cleaning for keeping your home fresh.",
		HourlyRate:       45,
		RecommendedHours: 3,
	},
	{
		ID:               ServiceDeep,
		Title:            "Deep Clean",
		Description:      "Thorough top-to-bottom cleaning for neglected spaces.",
		HourlyRate:       60,
		RecommendedHours: 5,
	},
	{
		ID:               ServiceMove,
		Title:            "Move-in / Move-out",
		Description:      "Empty home cleaning ensuring you get your deposit back.",
		HourlyRate:       65,
		RecommendedHours: 6,
	},
	{
		ID:               ServiceOffice,
		Title:            "Office Space",
		Description:      "Professional cleaning for workspaces and commercial areas.",
		HourlyRate:       50,
		RecommendedHours: 4,
	},
}

// FindOffering looks up an offering by its id
// Returns nil if the id is not part of the catalog
func FindOffering(id ServiceType) *ServiceOffering {
	for i := range ServiceCatalog {
		if ServiceCatalog[i].ID == id {
			return &ServiceCatalog[i]
		}
	}
	return nil
}

// RoomCategory is a single countable room type in the estimator
type RoomCategory string

// Residential categories
const (
	RoomBedroom  RoomCategory = "bedroom"
	RoomBathroom RoomCategory = "bathroom"
	RoomKitchen  RoomCategory = "kitchen"
	RoomLiving   RoomCategory = "living"
)

// Office categories
const (
	RoomOfficeRoom RoomCategory = "room"
	RoomWashroom   RoomCategory = "washroom"
	RoomDesk       RoomCategory = "desk"
	RoomCafeteria  RoomCategory = "cafeteria"
)

// RoomTally maps room categories to non-negative counts.
// Mutated only through Adjust, which clamps at zero.
type RoomTally map[RoomCategory]int

// Adjust increments or decrements a category count, clamping at zero
func (t RoomTally) Adjust(category RoomCategory, delta int) {
	next := t[category] + delta
	if next < 0 {
		next = 0
	}
	t[category] = next
}

// Clone returns an independent copy of the tally
func (t RoomTally) Clone() RoomTally {
	out := make(RoomTally, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// DefaultResidentialTally стартовые значения счетчиков для жилых помещений
func DefaultResidentialTally() RoomTally {
	return RoomTally{
		RoomBedroom:  2,
		RoomBathroom: 1,
		RoomKitchen:  1,
		RoomLiving:   1,
	}
}

// DefaultOfficeTally стартовые значения счетчиков для офисов
func DefaultOfficeTally() RoomTally {
	return RoomTally{
		RoomOfficeRoom: 1,
		RoomCafeteria:  0,
		RoomDesk:       5,
		RoomWashroom:   1,
	}
}
