package nominatim

import "strings"

// Suggestion один вариант автодополнения адреса
type Suggestion struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// addressDetails структурированный адрес из reverse-геокодера
type addressDetails struct {
	HouseNumber  string `json:"house_number"`
	Road         string `json:"road"`
	Pedestrian   string `json:"pedestrian"`
	City         string `json:"city"`
	Town         string `json:"town"`
	Village      string `json:"village"`
	Municipality string `json:"municipality"`
	State        string `json:"state"`
	Postcode     string `json:"postcode"`
}

// reverseResponse ответ reverse-геокодера
type reverseResponse struct {
	DisplayName string         `json:"display_name"`
	Address     addressDetails `json:"address"`
}

// Format собирает человекочитаемую адресную строку из структурированных полей
// Пустые компоненты пропускаются
func (a addressDetails) Format() string {
	road := a.Road
	if road == "" {
		road = a.Pedestrian
	}

	street := road
	if a.HouseNumber != "" && road != "" {
		street = a.HouseNumber + " " + road
	}

	city := a.City
	if city == "" {
		city = a.Town
	}
	if city == "" {
		city = a.Village
	}
	if city == "" {
		city = a.Municipality
	}

	parts := make([]string, 0, 4)
	for _, p := range []string{street, city, a.State, a.Postcode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
