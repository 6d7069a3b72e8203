package estimate

import (
	"math"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
)

// Веса длительности уборки по типам помещений (часов на единицу)
var residentialWeights = map[domain.RoomCategory]float64{
	domain.RoomKitchen:  0.75,
	domain.RoomBathroom: 0.5,
	domain.RoomBedroom:  0.3,
	domain.RoomLiving:   0.25,
}

var officeWeights = map[domain.RoomCategory]float64{
	domain.RoomOfficeRoom: 0.6,
	domain.RoomCafeteria:  1.0,
	domain.RoomDesk:       0.06,
	domain.RoomWashroom:   0.5,
}

// RecommendedHours вычисляет рекомендованную длительность уборки по счетчикам
// помещений: взвешенная сумма, округленная ВВЕРХ до получаса, минимум 2 часа
func RecommendedHours(tally domain.RoomTally, service domain.ServiceType) float64 {
	weights := residentialWeights
	if service.IsOffice() {
		weights = officeWeights
	}

	raw := 0.0
	for category, count := range tally {
		raw += weights[category] * float64(count)
	}

	rounded := math.Ceil(raw*2) / 2
	if rounded < domain.MinBookingHours {
		return domain.MinBookingHours
	}
	return rounded
}

// Quote денежная раскладка бронирования
// Внутренние расчеты - в полной плавающей точности, округление только при выводе
type Quote struct {
	Subtotal  float64
	Tax       float64 // HST 13%
	Total     float64
	Deposit   float64 // 30% от Total
	Remainder float64 // 70% от Total
}

// NewQuote считает стоимость по ставке и длительности
func NewQuote(hourlyRate, hours float64) Quote {
	subtotal := hourlyRate * hours
	tax := subtotal * domain.HSTRate
	total := subtotal + tax

	return Quote{
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     total,
		Deposit:   total * domain.DepositShare,
		Remainder: total * domain.RemainderShare,
	}
}
