package restaurant

import (
	"strings"

	"restaurant-crm/internal/pkg/errs"
)

type Restaurant struct {
	id         int64
	name       string
	tableCount int32
}

func NewRestaurant(id int64, name string, tableCount int32) (*Restaurant, error) {
	if id < 1 {
		return nil, errs.ErrInvalidRestaurant
	}
	if tableCount < 0 {
		return nil, errs.ErrInvalidTableCount
	}
	return &Restaurant{
		id:         id,
		name:       strings.TrimSpace(name),
		tableCount: tableCount,
	}, nil
}

func (r *Restaurant) ID() int64 {
	return r.id
}

func (r *Restaurant) Name() string {
	return r.name
}

// Capacity is the uniform number of tables offered in every time slot.
func (r *Restaurant) Capacity() int {
	return int(r.tableCount)
}

func (r *Restaurant) HasRoom(booked int) bool {
	return booked < r.Capacity()
}
