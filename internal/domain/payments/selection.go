package payments

import (
	"github.com/shopspring/decimal"

	"payroll/internal/domain/employees"
)

// Selection tracks the employees picked for a salary disbursement. The
// total is kept in step with every change.
type Selection struct {
	candidates []employees.Summary
	index      map[int64]decimal.Decimal
	selected   map[int64]struct{}
	total      decimal.Decimal
}

// NewSelection restricts candidates to the employees eligible for pay.
func NewSelection(candidates []employees.Summary) *Selection {
	eligible := employees.FilterEligible(candidates)
	s := &Selection{
		candidates: eligible,
		index:      make(map[int64]decimal.Decimal, len(eligible)),
		selected:   make(map[int64]struct{}),
		total:      decimal.Zero,
	}
	for _, e := range eligible {
		s.index[e.ID] = e.CurrentSalary.Decimal
	}
	return s
}

func (s *Selection) Candidates() []employees.Summary {
	return s.candidates
}

// Toggle adds id when absent and removes it when present.
func (s *Selection) Toggle(id int64) error {
	amount, ok := s.index[id]
	if !ok {
		return ErrNotCandidate
	}
	if _, picked := s.selected[id]; picked {
		delete(s.selected, id)
		s.total = s.total.Sub(amount)
		return nil
	}
	s.selected[id] = struct{}{}
	s.total = s.total.Add(amount)
	return nil
}

// ToggleAll selects every candidate, or clears the selection when all of
// them are already selected.
func (s *Selection) ToggleAll() {
	if len(s.candidates) > 0 && len(s.selected) == len(s.candidates) {
		s.Clear()
		return
	}
	for id, amount := range s.index {
		if _, picked := s.selected[id]; !picked {
			s.selected[id] = struct{}{}
			s.total = s.total.Add(amount)
		}
	}
}

func (s *Selection) Clear() {
	s.selected = make(map[int64]struct{})
	s.total = decimal.Zero
}

func (s *Selection) Selected(id int64) bool {
	_, ok := s.selected[id]
	return ok
}

func (s *Selection) Count() int {
	return len(s.selected)
}

func (s *Selection) Total() decimal.Decimal {
	return s.total
}

// IDs lists the selected employees in candidate order.
func (s *Selection) IDs() []int64 {
	out := make([]int64, 0, len(s.selected))
	for _, e := range s.candidates {
		if _, ok := s.selected[e.ID]; ok {
			out = append(out, e.ID)
		}
	}
	return out
}
