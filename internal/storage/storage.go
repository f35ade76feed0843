// Package storage provides the persistence collaborator: a key to
// JSON-serialized-collection store. The entity store calls Set after
// every mutation (overwrite-whole-collection semantics) and Get at
// startup to hydrate state. Backends are selected at construction time
// from configuration: a per-key JSON file store or a GORM-backed
// relational store (sqlite or postgres).
package storage

// Collection keys. Each key names one persisted collection.
const (
	KeyParents             = "parents"
	KeyStudents            = "students"
	KeyIncomeItems         = "income_items"
	KeyIncomeTransactions  = "income_transactions"
	KeyExpenseTransactions = "expense_transactions"
	KeyCostCenters         = "cost_centers"
	KeyTeachers            = "teachers"
	KeySections            = "sections"
	KeyUsers               = "users"
	KeyRoles               = "roles"
)

// Store is the persistence contract. Get unmarshals the collection
// stored under key into dest and reports whether the key was present.
// Set replaces the stored collection for key with value. Both calls are
// synchronous; a failed Set must be surfaced to the caller, never
// swallowed.
type Store interface {
	Get(key string, dest any) (bool, error)
	Set(key string, value any) error
}
