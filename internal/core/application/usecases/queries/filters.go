package queries

import (
	"fmt"
	"time"

	"foodorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// StatusFilter is a lifecycle filter value accepted by the order listings.
type StatusFilter string

const (
	StatusFilterPending   StatusFilter = "pending"
	StatusFilterInProcess StatusFilter = "in process"
	StatusFilterSent      StatusFilter = "sent"
	StatusFilterDelivered StatusFilter = "delivered"
)

// ParseStatusFilter validates a raw status filter value.
func ParseStatusFilter(raw string) (StatusFilter, error) {
	switch StatusFilter(raw) {
	case StatusFilterPending, StatusFilterInProcess, StatusFilterSent, StatusFilterDelivered:
		return StatusFilter(raw), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a known status filter", raw))
	}
}

// OrderFilter narrows order listings by lifecycle status and creation date.
// DateFrom and DateTo are calendar dates (midnight-normalized); DateTo is
// inclusive through end of day.
type OrderFilter struct {
	Status   *StatusFilter
	DateFrom *time.Time
	DateTo   *time.Time
}

// Apply translates the filter into query predicates.
//
// The "delivered" filter is keyed on sent_at, not delivered_at; "sent"
// additionally requires delivered_at to be unset. The date upper bound is
// made inclusive by advancing it one day and comparing with strict
// less-than.
func (f OrderFilter) Apply(db *gorm.DB) *gorm.DB {
	if f.Status != nil {
		switch *f.Status {
		case StatusFilterPending:
			db = db.Where("started_at IS NULL")
		case StatusFilterInProcess:
			db = db.Where("started_at IS NOT NULL AND sent_at IS NULL AND delivered_at IS NULL")
		case StatusFilterSent:
			db = db.Where("sent_at IS NOT NULL AND delivered_at IS NULL")
		case StatusFilterDelivered:
			db = db.Where("sent_at IS NOT NULL")
		}
	}

	if f.DateFrom != nil {
		db = db.Where("created_at >= ?", *f.DateFrom)
	}

	if f.DateTo != nil {
		db = db.Where("created_at < ?", f.DateTo.AddDate(0, 0, 1))
	}

	return db
}
