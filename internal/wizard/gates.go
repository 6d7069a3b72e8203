package wizard

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Валидация полей клиента. Ошибки валидации никогда не "бросаются" -
// они только блокируют переход на следующий шаг и подсвечивают поле.

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail проверяет адрес на форму local@domain.tld
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPhone проверяет телефон: минимум 7 символов после удаления форматирования
func ValidPhone(phone string) bool {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' || r == '(' || r == ')' || r == '.' {
			return -1
		}
		return r
	}, phone)
	return len(stripped) >= 7
}

// AddressError валидирует адрес в реальном времени (на каждый ввод).
// Пустая строка - не ошибка; результат участвует в гейте шага 4.
func AddressError(address string) string {
	if address == "" {
		return ""
	}
	if len(address) < 5 {
		return "Address is too short"
	}
	if !strings.ContainsAny(address, "0123456789") {
		return "Please include a house/building number"
	}
	return ""
}

// checkGate проверяет гейт перехода вперед с шага step
// Доступ к полям черновика - под уже взятым мьютексом вызывающего
func (d *Draft) checkGate(step int) error {
	switch step {
	case stepService:
		if d.service == nil {
			return fmt.Errorf("%w: select a service", ErrStepIncomplete)
		}
	case stepDuration:
		if d.hours <= 0 {
			return fmt.Errorf("%w: duration must be positive", ErrStepIncomplete)
		}
	case stepSchedule:
		if d.date == nil {
			return fmt.Errorf("%w: pick a date", ErrStepIncomplete)
		}
		if d.timeSlot == "" {
			return fmt.Errorf("%w: pick a time slot", ErrStepIncomplete)
		}
	case stepDetails:
		c := d.contact
		if c.FirstName == "" || c.LastName == "" {
			return fmt.Errorf("%w: first and last name are required", ErrStepIncomplete)
		}
		if c.Email == "" || !ValidEmail(c.Email) {
			return fmt.Errorf("%w: a valid email is required", ErrStepIncomplete)
		}
		if c.Phone == "" || !ValidPhone(c.Phone) {
			return fmt.Errorf("%w: a valid phone number is required", ErrStepIncomplete)
		}
		if c.Address == "" || AddressError(c.Address) != "" {
			return fmt.Errorf("%w: a valid address is required", ErrStepIncomplete)
		}
	}
	return nil
}
