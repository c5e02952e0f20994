package domain

// EmployeeRecord is the domain model for a single employee row.
// ID is assigned by the store on create and immutable afterwards;
// every other field is replaced wholesale on update.
type EmployeeRecord struct {
	ID      int64
	Name    string
	Address string
	Salary  float64
}
