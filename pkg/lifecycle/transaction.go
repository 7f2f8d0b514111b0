// Package lifecycle derives the order and payment state of a transaction.
package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"event-management-be/internal/entity"
)

// PaymentDeadlineDays is the payment window, counted in whole days from the transaction date.
const PaymentDeadlineDays = 1

var (
	ErrInvalidPaymentStatus = errors.New("status_payment must be one of: waiting, paid")
	ErrInvalidOrderStatus   = errors.New("status_ordered must be one of: process, finished, cancelled")
)

// Overrides are caller-supplied values that replace the derived defaults.
type Overrides struct {
	StatusOrdered *entity.OrderStatus
	StatusPayment *entity.PaymentStatus
	PaymentDate   *time.Time
}

// State is the set of fields written back to a transaction in one update.
type State struct {
	StatusOrdered entity.OrderStatus
	StatusPayment entity.PaymentStatus
	PaymentDate   *time.Time
	ReturnDate    *time.Time
}

// ElapsedDays counts the whole days between two instants, regardless of order.
func ElapsedDays(from, to time.Time) int {
	d := to.Sub(from)
	if d < 0 {
		d = -d
	}
	return int(d / (24 * time.Hour))
}

// CalendarDate returns midnight of t's calendar day in loc. A date column comes back from
// Postgres as midnight UTC, so the day must be re-anchored before measuring against now.
func CalendarDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DefaultPaymentStatus is waiting inside the payment window and paid once it has passed.
// NOTE: a lapsed window reads as paid. This mirrors the behaviour existing clients see.
func DefaultPaymentStatus(elapsedDays int) entity.PaymentStatus {
	if elapsedDays <= PaymentDeadlineDays {
		return entity.PaymentStatusWaiting
	}
	return entity.PaymentStatusPaid
}

// DefaultOrderStatus derives the order status from the final payment status.
func DefaultOrderStatus(payment entity.PaymentStatus, elapsedDays int) entity.OrderStatus {
	switch {
	case payment == entity.PaymentStatusWaiting && elapsedDays <= PaymentDeadlineDays:
		return entity.OrderStatusCancelled
	case payment == entity.PaymentStatusWaiting:
		return entity.OrderStatusProcess
	default:
		return entity.OrderStatusFinished
	}
}

// Validate checks the override enums.
func (o Overrides) Validate() error {
	if o.StatusPayment != nil {
		switch *o.StatusPayment {
		case entity.PaymentStatusWaiting, entity.PaymentStatusPaid:
		default:
			return fmt.Errorf("%w: got %q", ErrInvalidPaymentStatus, *o.StatusPayment)
		}
	}
	if o.StatusOrdered != nil {
		switch *o.StatusOrdered {
		case entity.OrderStatusProcess, entity.OrderStatusFinished, entity.OrderStatusCancelled:
		default:
			return fmt.Errorf("%w: got %q", ErrInvalidOrderStatus, *o.StatusOrdered)
		}
	}
	return nil
}

// Advance computes the next state of tx at now. It has no side effects, so calling it
// twice with the same arguments yields the same state.
func Advance(tx entity.Transaction, now time.Time, o Overrides) (State, error) {
	if err := o.Validate(); err != nil {
		return State{}, err
	}

	elapsed := ElapsedDays(CalendarDate(tx.TransactionDate, now.Location()), now)

	payment := DefaultPaymentStatus(elapsed)
	if o.StatusPayment != nil {
		payment = *o.StatusPayment
	}

	ordered := DefaultOrderStatus(payment, elapsed)
	if o.StatusOrdered != nil {
		ordered = *o.StatusOrdered
	}

	next := State{
		StatusOrdered: ordered,
		StatusPayment: payment,
	}
	if payment == entity.PaymentStatusPaid {
		settled := now
		next.ReturnDate = &settled
		if o.PaymentDate != nil {
			paid := *o.PaymentDate
			next.PaymentDate = &paid
		}
	}
	return next, nil
}

// Apply writes s onto tx.
func (s State) Apply(tx *entity.Transaction) {
	tx.StatusOrdered = s.StatusOrdered
	tx.StatusPayment = s.StatusPayment
	tx.PaymentDate = s.PaymentDate
	tx.ReturnDate = s.ReturnDate
}
