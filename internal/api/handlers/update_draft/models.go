package update_draft

// Действия над черновиком
const (
	actionSelectService = "select_service"
	actionAdjustRoom    = "adjust_room"
	actionSetHours      = "set_hours"
	actionSetDate       = "set_date"
	actionSelectSlot    = "select_slot"
	actionSetContact    = "set_contact"
)

// UpdateDraftRequest одно действие над черновиком
type UpdateDraftRequest struct {
	Action string `json:"action"`

	// select_service
	ServiceType string `json:"serviceType,omitempty"`

	// adjust_room
	Category string `json:"category,omitempty"`
	Delta    int    `json:"delta,omitempty"`

	// set_hours
	Hours float64 `json:"hours,omitempty"`

	// set_date, YYYY-MM-DD
	Date string `json:"date,omitempty"`

	// select_slot
	SlotLabel string `json:"slotLabel,omitempty"`

	// set_contact
	Contact *ContactPayload `json:"contact,omitempty"`
}

// ContactPayload контактные поля клиента
type ContactPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Notes     string `json:"notes"`
}
