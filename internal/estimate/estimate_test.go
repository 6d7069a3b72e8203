package estimate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
)

func TestRecommendedHours_Residential(t *testing.T) {
	// 4*0.3 + 2*0.5 + 1*0.75 + 2*0.25 = 3.45 -> 3.5
	tally := domain.RoomTally{
		domain.RoomBedroom:  4,
		domain.RoomBathroom: 2,
		domain.RoomKitchen:  1,
		domain.RoomLiving:   2,
	}
	assert.Equal(t, 3.5, RecommendedHours(tally, domain.ServiceStandard))
}

func TestRecommendedHours_FlooredAtTwoHours(t *testing.T) {
	// 1*0.3 = 0.3 -> ceil-to-half 0.5 -> floor 2.0
	tally := domain.RoomTally{domain.RoomBedroom: 1}
	assert.Equal(t, 2.0, RecommendedHours(tally, domain.ServiceStandard))
}

func TestRecommendedHours_ZeroTally(t *testing.T) {
	assert.Equal(t, 2.0, RecommendedHours(domain.RoomTally{}, domain.ServiceDeep))
}

func TestRecommendedHours_CeilToHalf(t *testing.T) {
	// 2*0.75 + 1*0.3 = 1.8 -> 2.0
	tally := domain.RoomTally{
		domain.RoomKitchen: 2,
		domain.RoomBedroom: 1,
	}
	assert.Equal(t, 2.0, RecommendedHours(tally, domain.ServiceStandard))

	// 3*0.75 = 2.25 -> 2.5
	tally = domain.RoomTally{domain.RoomKitchen: 3}
	assert.Equal(t, 2.5, RecommendedHours(tally, domain.ServiceStandard))
}

func TestRecommendedHours_Office(t *testing.T) {
	// 1*0.6 + 0*1.0 + 5*0.06 + 1*0.5 = 1.4 -> 1.5 -> floor 2.0
	tally := domain.DefaultOfficeTally()
	assert.Equal(t, 2.0, RecommendedHours(tally, domain.ServiceOffice))

	// 3*0.6 + 1*1.0 + 20*0.06 + 2*0.5 = 5.0
	tally = domain.RoomTally{
		domain.RoomOfficeRoom: 3,
		domain.RoomCafeteria:  1,
		domain.RoomDesk:       20,
		domain.RoomWashroom:   2,
	}
	assert.Equal(t, 5.0, RecommendedHours(tally, domain.ServiceOffice))
}

func TestRecommendedHours_AlwaysHalfHourMultiple(t *testing.T) {
	for bedrooms := 0; bedrooms <= 8; bedrooms++ {
		for bathrooms := 0; bathrooms <= 4; bathrooms++ {
			tally := domain.RoomTally{
				domain.RoomBedroom:  bedrooms,
				domain.RoomBathroom: bathrooms,
				domain.RoomKitchen:  1,
			}
			hours := RecommendedHours(tally, domain.ServiceStandard)
			assert.GreaterOrEqual(t, hours, 2.0)
			assert.Zero(t, math.Mod(hours*2, 1), "hours=%v is not a 0.5 multiple", hours)
		}
	}
}

func TestNewQuote(t *testing.T) {
	q := NewQuote(45, 3)

	assert.InDelta(t, 135.0, q.Subtotal, 1e-9)
	assert.InDelta(t, 17.55, q.Tax, 1e-9)
	assert.InDelta(t, 152.55, q.Total, 1e-9)
	assert.InDelta(t, 45.765, q.Deposit, 1e-9)
	assert.InDelta(t, 106.785, q.Remainder, 1e-9)
}

func TestNewQuote_SplitAddsUp(t *testing.T) {
	rates := []float64{45, 50, 60, 65}
	for _, rate := range rates {
		for hours := 2.0; hours <= 10.0; hours += 0.5 {
			q := NewQuote(rate, hours)
			assert.InDelta(t, q.Subtotal*1.13, q.Total, 1e-9)
			assert.InDelta(t, q.Total, q.Deposit+q.Remainder, 1e-9)
		}
	}
}
