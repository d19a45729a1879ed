package schedule

// Resolver maps an employee identifier to its effective schedule. It never
// fails and must be deterministic.
type Resolver interface {
	Resolve(employeeID string) EmployeeSchedule

	// Placements lists every pinned block in the override table so employees
	// outside the regular block scan can still be discovered.
	Placements() []Placement
}
