package wizard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/estimate"
	"github.com/dipeshpuri/CleanrCrew-Patched/internal/mailer"
)

// Pay проводит оплату депозита и завершает мастер.
// Оплата однократна: повторный вызов для уже оплаченного черновика и
// параллельный вызов во время обработки отклоняются. После успешной оплаты
// черновик принудительно переводится на терминальный шаг.
func (m *Manager) Pay(ctx context.Context, draft *Draft) (*domain.Invoice, error) {
	snap, err := draft.beginPayment()
	if err != nil {
		return nil, err
	}
	defer draft.endPayment()

	// Имитация обработки платежа провайдером
	if m.paymentDelay > 0 {
		select {
		case <-time.After(m.paymentDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	now := m.timeProvider.Now()
	quote := estimate.NewQuote(snap.Service.HourlyRate, snap.Hours)

	invoice := &domain.Invoice{
		ID:              fmt.Sprintf("INV-%06d", now.UnixMilli()%1000000),
		Date:            now.Format(domain.DateFormat),
		Service:         snap.Service.Title,
		TotalAmount:     quote.Total,
		DepositAmount:   quote.Deposit,
		RemainingAmount: quote.Remainder,
		ClientName:      snap.Contact.FirstName + " " + snap.Contact.LastName,
		Status:          domain.InvoiceDepositPaid,
	}

	// Бронирование сохраняется только для авторизованных пользователей;
	// гостевой проход завершается без записи в историю
	if snap.UserID != "" {
		booking := &domain.Booking{
			ID:           uuid.NewString(),
			UserID:       snap.UserID,
			ServiceType:  snap.Service.ID,
			ServiceTitle: snap.Service.Title,
			Date:         *snap.Date,
			TimeSlot:     snap.TimeSlot,
			Hours:        snap.Hours,
			TotalCost:    quote.Total,
			Address:      snap.Contact.Address,
			Status:       domain.StatusUpcoming,
			CreatedAt:    now,
		}
		if err := m.store.Save(ctx, booking); err != nil {
			// Платеж уже проведен, потеря записи истории не отменяет его
			m.logger.Error("Wizard: failed to persist booking for draft id=%s: %v", draft.id, err)
		} else {
			m.logger.Info("Wizard: persisted booking id=%s for user=%s", booking.ID, booking.UserID)
		}
	}

	m.sendConfirmation(snap, invoice)

	draft.completePayment(invoice)
	m.logger.Info("Wizard: deposit paid for draft id=%s, invoice=%s, amount=%.2f",
		draft.id, invoice.ID, invoice.DepositAmount)
	return invoice, nil
}

// sendConfirmation отправляет письмо с подтверждением бронирования.
// Ошибки рендера и отправки логируются и не влияют на результат оплаты.
func (m *Manager) sendConfirmation(snap Snapshot, invoice *domain.Invoice) {
	if m.templater == nil || m.sender == nil {
		return
	}

	content, err := m.templater.Render(mailer.KindConfirmation, mailer.TemplateData{
		ClientName:   invoice.ClientName,
		ServiceTitle: invoice.Service,
		Date:         snap.Date.Format(domain.DateFormat),
		TimeSlot:     snap.TimeSlot,
		Invoice:      invoice,
	})
	if err != nil {
		m.logger.Error("Wizard: failed to render confirmation email: %v", err)
		return
	}
	if err := m.sender.Send(snap.Contact.Email, content); err != nil {
		m.logger.Error("Wizard: failed to send confirmation email to %s: %v", snap.Contact.Email, err)
	}
}

// beginPayment проверяет предусловия оплаты и помечает черновик как
// находящийся в обработке. Возвращает снапшот состояния для проведения платежа.
func (d *Draft) beginPayment() (Snapshot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.step != stepPayment {
		return Snapshot{}, ErrNotAtPaymentStep
	}
	if d.paying {
		return Snapshot{}, ErrPaymentInFlight
	}
	if d.paymentStatus != PaymentPending {
		return Snapshot{}, ErrAlreadyPaid
	}
	if err := d.checkGate(stepDetails); err != nil {
		return Snapshot{}, err
	}

	d.paying = true

	snap := Snapshot{
		Service:  d.service,
		Hours:    d.hours,
		TimeSlot: d.timeSlot,
		Contact:  d.contact,
	}
	if d.user != nil {
		snap.UserID = d.user.ID
	}
	if d.date != nil {
		dateCopy := *d.date
		snap.Date = &dateCopy
	}
	return snap, nil
}

// completePayment фиксирует счет и переводит черновик на терминальный шаг
func (d *Draft) completePayment(invoice *domain.Invoice) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.invoice = invoice
	d.paymentStatus = PaymentDepositPaid
	d.step = stepSuccess
}

// endPayment снимает флаг обработки платежа
func (d *Draft) endPayment() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.paying = false
}
