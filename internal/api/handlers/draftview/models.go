package draftview

import (
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/wizard"
)

// Общее представление черновика для всех эндпоинтов мастера

// ServiceResponse выбранная услуга
type ServiceResponse struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	HourlyRate       float64 `json:"hourlyRate"`
	RecommendedHours float64 `json:"recommendedHours"`
}

// QuoteResponse расчет стоимости
type QuoteResponse struct {
	Subtotal  float64 `json:"subtotal"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
	Deposit   float64 `json:"deposit"`
	Remainder float64 `json:"remainder"`
}

// SlotResponse слот в выдаче
type SlotResponse struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

// ContactResponse контактные данные
type ContactResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Notes     string `json:"notes,omitempty"`
}

// InvoiceResponse счет после оплаты
type InvoiceResponse struct {
	ID              string  `json:"id"`
	Date            string  `json:"date"`
	Service         string  `json:"service"`
	TotalAmount     float64 `json:"totalAmount"`
	DepositAmount   float64 `json:"depositAmount"`
	RemainingAmount float64 `json:"remainingAmount"`
	ClientName      string  `json:"clientName"`
	Status          string  `json:"status"`
}

// DraftResponse состояние черновика мастера
type DraftResponse struct {
	ID            string           `json:"id"`
	Step          int              `json:"step"`
	Service       *ServiceResponse `json:"service,omitempty"`
	Hours         float64          `json:"hours"`
	Date          string           `json:"date,omitempty"`
	TimeSlot      string           `json:"timeSlot,omitempty"`
	Residential   map[string]int   `json:"residentialRooms"`
	Office        map[string]int   `json:"officeRooms"`
	Contact       ContactResponse  `json:"contact"`
	AddressError  string           `json:"addressError,omitempty"`
	PaymentStatus string           `json:"paymentStatus"`
	Quote         *QuoteResponse   `json:"quote,omitempty"`
	Slots         []SlotResponse   `json:"slots"`
	SlotsLoading  bool             `json:"slotsLoading"`
	Invoice       *InvoiceResponse `json:"invoice,omitempty"`
}

// FromSnapshot конвертирует снапшот черновика в DTO
func FromSnapshot(snap wizard.Snapshot) *DraftResponse {
	resp := &DraftResponse{
		ID:            snap.ID,
		Step:          snap.Step,
		Hours:         snap.Hours,
		TimeSlot:      snap.TimeSlot,
		Residential:   tallyMap(snap.Residential),
		Office:        tallyMap(snap.Office),
		AddressError:  snap.AddressError,
		PaymentStatus: string(snap.PaymentStatus),
		SlotsLoading:  snap.SlotsLoading,
		Contact: ContactResponse{
			FirstName: snap.Contact.FirstName,
			LastName:  snap.Contact.LastName,
			Email:     snap.Contact.Email,
			Phone:     snap.Contact.Phone,
			Address:   snap.Contact.Address,
			Notes:     snap.Contact.Notes,
		},
		Slots: make([]SlotResponse, 0, len(snap.Slots)),
	}

	if snap.Date != nil {
		resp.Date = snap.Date.Format(domain.DateFormat)
	}

	if snap.Service != nil {
		resp.Service = &ServiceResponse{
			ID:               string(snap.Service.ID),
			Title:            snap.Service.Title,
			Description:      snap.Service.Description,
			HourlyRate:       snap.Service.HourlyRate,
			RecommendedHours: snap.Service.RecommendedHours,
		}
		resp.Quote = &QuoteResponse{
			Subtotal:  snap.Quote.Subtotal,
			Tax:       snap.Quote.Tax,
			Total:     snap.Quote.Total,
			Deposit:   snap.Quote.Deposit,
			Remainder: snap.Quote.Remainder,
		}
	}

	for _, slot := range snap.Slots {
		resp.Slots = append(resp.Slots, SlotResponse{
			ID:        slot.ID,
			Label:     slot.Label,
			Available: slot.Available,
		})
	}

	if snap.Invoice != nil {
		resp.Invoice = &InvoiceResponse{
			ID:              snap.Invoice.ID,
			Date:            snap.Invoice.Date,
			Service:         snap.Invoice.Service,
			TotalAmount:     snap.Invoice.TotalAmount,
			DepositAmount:   snap.Invoice.DepositAmount,
			RemainingAmount: snap.Invoice.RemainingAmount,
			ClientName:      snap.Invoice.ClientName,
			Status:          string(snap.Invoice.Status),
		}
	}

	return resp
}

func tallyMap(tally domain.RoomTally) map[string]int {
	out := make(map[string]int, len(tally))
	for category, count := range tally {
		out[string(category)] = count
	}
	return out
}
