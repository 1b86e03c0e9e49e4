// Package store provides Store implementations.
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/warp/shift-engine/schedule"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu     sync.RWMutex
	shifts map[schedule.ShiftID]schedule.Shift
	nextID int
}

func NewMemory() *Memory {
	return &Memory{shifts: make(map[schedule.ShiftID]schedule.Shift)}
}

// Insert assigns the ID and stores the shift.
func (m *Memory) Insert(_ context.Context, shift schedule.Shift) (schedule.Shift, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	shift.ID = schedule.ShiftID(fmt.Sprintf("shift-%d", m.nextID))
	m.shifts[shift.ID] = shift
	return shift, nil
}

func (m *Memory) Replace(_ context.Context, shift schedule.Shift) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.shifts[shift.ID]; !ok {
		return schedule.ErrShiftNotFound
	}
	m.shifts[shift.ID] = shift
	return nil
}

func (m *Memory) Remove(_ context.Context, id schedule.ShiftID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.shifts[id]; !ok {
		return schedule.ErrShiftNotFound
	}
	delete(m.shifts, id)
	return nil
}

func (m *Memory) Get(_ context.Context, id schedule.ShiftID) (*schedule.Shift, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	shift, ok := m.shifts[id]
	if !ok {
		return nil, schedule.ErrShiftNotFound
	}
	return &shift, nil
}

func (m *Memory) FindByEmployeeAndDate(
	_ context.Context,
	employeeID schedule.EmployeeID,
	date schedule.Date,
	excludeID schedule.ShiftID,
) ([]schedule.Shift, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []schedule.Shift
	for _, shift := range m.shifts {
		if shift.EmployeeID != employeeID || !shift.Date.Equal(date) {
			continue
		}
		if excludeID != "" && shift.ID == excludeID {
			continue
		}
		result = append(result, shift)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Start < result[j].Start
	})
	return result, nil
}

func (m *Memory) List(_ context.Context, filter schedule.ShiftFilter) ([]schedule.Shift, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []schedule.Shift
	for _, shift := range m.shifts {
		if filter.EmployeeID != "" && shift.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Date != nil && !shift.Date.Equal(*filter.Date) {
			continue
		}
		if filter.From != nil && shift.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && shift.Date.After(*filter.To) {
			continue
		}
		result = append(result, shift)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].Start < result[j].Start
	})
	return result, nil
}
