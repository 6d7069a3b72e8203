package estimate_duration

// EstimateRequest запрос на расчет длительности и стоимости
type EstimateRequest struct {
	ServiceType string         `json:"serviceType"`
	Rooms       map[string]int `json:"rooms"`
}

// EstimateResponse рекомендованная длительность и расчет стоимости
type EstimateResponse struct {
	Hours     float64 `json:"hours"`
	Subtotal  float64 `json:"subtotal"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
	Deposit   float64 `json:"deposit"`
	Remainder float64 `json:"remainder"`
}
