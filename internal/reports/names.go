// Package reports derives filtered views and summary statistics from
// the transaction ledgers. Every function is pure over its inputs: the
// ledgers are never mutated and identical inputs produce identical
// output.
package reports

import (
	"strings"

	"schoolledger/internal/models"
)

// Placeholder names rendered for dangling references. Referential
// integrity is not enforced at write time, so lookups must degrade
// gracefully instead of failing.
const (
	UnknownParent  = "Unknown Parent"
	UnknownStudent = "Unknown Student"
	Unassigned     = "Unassigned"
)

// Resolver maps entity references to display names for search, sorting,
// and export. Build one from a store snapshot before filtering.
type Resolver struct {
	parents     map[string]string
	students    map[string]string
	costCenters map[string]string
}

// NewResolver builds lookup tables from collection snapshots.
func NewResolver(parents []models.Parent, students []models.Student, costCenters []models.CostCenter) Resolver {
	r := Resolver{
		parents:     make(map[string]string, len(parents)),
		students:    make(map[string]string, len(students)),
		costCenters: make(map[string]string, len(costCenters)),
	}
	for _, p := range parents {
		r.parents[p.ID] = p.FullName()
	}
	for _, s := range students {
		r.students[s.ID] = s.FullName()
	}
	for _, c := range costCenters {
		r.costCenters[c.ID] = c.Name
	}
	return r
}

// ParentName resolves a parent reference, falling back to a placeholder.
func (r Resolver) ParentName(parentID string) string {
	if name, ok := r.parents[parentID]; ok {
		return name
	}
	return UnknownParent
}

// StudentNames resolves student references in order, substituting a
// placeholder for each dangling id.
func (r Resolver) StudentNames(studentIDs []string) []string {
	names := make([]string, len(studentIDs))
	for i, id := range studentIDs {
		if name, ok := r.students[id]; ok {
			names[i] = name
		} else {
			names[i] = UnknownStudent
		}
	}
	return names
}

// CostCenterName resolves a cost center reference, falling back to a
// placeholder.
func (r Resolver) CostCenterName(costCenterID string) string {
	if name, ok := r.costCenters[costCenterID]; ok {
		return name
	}
	return Unassigned
}

// studentNamesJoined is the comma-joined form used for search matching
// and export rows.
func (r Resolver) studentNamesJoined(studentIDs []string) string {
	return strings.Join(r.StudentNames(studentIDs), ", ")
}
