package dto

// EmployeeForm carries the create/update form fields. Salary arrives
// as text so a malformed number can be reported as a validation
// failure instead of a parse panic.
type EmployeeForm struct {
	Name    string `form:"name"`
	Address string `form:"address"`
	Salary  string `form:"salary"`
}
