package booking

import (
	"strings"
	"time"

	"restaurant-crm/internal/pkg/errs"
)

const DateLayout = "2006-01-02"

// Date is a calendar day without time-of-day or zone.
type Date struct {
	t time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, errs.Mark(err, errs.ErrInvalidDate)
	}
	return Date{t: t}, nil
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

type ClientName struct {
	value string
}

func NewClientName(name string) (ClientName, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ClientName{}, errs.ErrInvalidClientName
	}
	return ClientName{value: trimmed}, nil
}

func (c ClientName) Value() string {
	return c.value
}

type GuestCount struct {
	value *int32
}

func NewGuestCount(n *int32) (GuestCount, error) {
	if n == nil {
		return GuestCount{}, nil
	}
	if *n < 1 {
		return GuestCount{}, errs.ErrInvalidGuestCount
	}
	v := *n
	return GuestCount{value: &v}, nil
}

func (g GuestCount) Value() *int32 {
	return g.value
}

// Tags keeps caller order and drops blank entries.
type Tags []string

func NewTags(raw []string) Tags {
	if len(raw) == 0 {
		return nil
	}
	out := make(Tags, 0, len(raw))
	for _, t := range raw {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
