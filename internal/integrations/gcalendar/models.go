package gcalendar

// eventTime момент начала/конца события
// Календарь отдает либо dateTime (RFC3339), либо date (YYYY-MM-DD) для событий на весь день
type eventTime struct {
	DateTime string `json:"dateTime"`
	Date     string `json:"date"`
}

// event событие календаря
type event struct {
	Start  eventTime `json:"start"`
	End    eventTime `json:"end"`
	Status string    `json:"status"`
}

// eventsResponse ответ events API
type eventsResponse struct {
	Items []event `json:"items"`
}
