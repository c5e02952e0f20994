package ui

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/spec-kit/employee-portal/internal/domain"
)

// EmployeeListPage renders all records with per-record action links.
// Record fields pass through Text nodes, so markup-significant
// characters in stored names or addresses come out escaped.
func EmployeeListPage(username string, records []domain.EmployeeRecord) Node {
	var table Node
	if len(records) == 0 {
		table = P(Class("lead"), Em(Text("No records were found.")))
	} else {
		rows := make([]Node, 0, len(records))
		for _, record := range records {
			base := "/employees/" + formatID(record.ID)
			rows = append(rows, Tr(
				Td(Text(formatID(record.ID))),
				Td(Text(record.Name)),
				Td(Text(record.Address)),
				Td(Text(formatSalary(record.Salary))),
				Td(
					A(Href(base), Text("View")),
					Text(" "),
					A(Href(base+"/edit"), Text("Update")),
					Text(" "),
					Form(
						Method("post"),
						Action(base+"/delete"),
						StyleAttr("display:inline"),
						Button(Type("submit"), Class("btn btn-link btn-xs"), Text("Delete")),
					),
				),
			))
		}
		table = Table(
			Class("table table-bordered table-striped"),
			THead(Tr(
				Th(Text("#")),
				Th(Text("Name")),
				Th(Text("Address")),
				Th(Text("Salary")),
				Th(Text("Action")),
			)),
			TBody(rows...),
		)
	}

	return portalPage("Dashboard", username,
		A(Href("/employees/new"), Class("btn btn-success"), Text("Add New Employee")),
		table,
	)
}

// EmployeeDetailPage renders a single record.
func EmployeeDetailPage(username string, record domain.EmployeeRecord) Node {
	return portalPage("View Record", username,
		H3(Text("Employee #"+formatID(record.ID))),
		Dl(
			Class("dl-horizontal"),
			Dt(Text("Name")), Dd(Text(record.Name)),
			Dt(Text("Address")), Dd(Text(record.Address)),
			Dt(Text("Salary")), Dd(Text(formatSalary(record.Salary))),
		),
		A(Href("/employees"), Text("Back to listing")),
	)
}

// EmployeeFormValues carries previously submitted values back into a
// re-rendered form.
type EmployeeFormValues struct {
	Name    string
	Address string
	Salary  string
}

// EmployeeFormPage renders the create or edit form. action is the POST
// target; errMsg re-displays a validation failure above the form.
func EmployeeFormPage(username, title, action string, values EmployeeFormValues, errMsg string) Node {
	content := []Node{
		H3(Text(title)),
		Form(
			Method("post"),
			Action(action),
			Div(Class("form-group"),
				Label(Text("Name")),
				Input(Type("text"), Name("name"), Class("form-control"), Value(values.Name)),
			),
			Div(Class("form-group"),
				Label(Text("Address")),
				Input(Type("text"), Name("address"), Class("form-control"), Value(values.Address)),
			),
			Div(Class("form-group"),
				Label(Text("Salary")),
				Input(Type("text"), Name("salary"), Class("form-control"), Value(values.Salary)),
			),
			Button(Type("submit"), Class("btn btn-primary"), Text("Submit")),
			Text(" "),
			A(Href("/employees"), Class("btn btn-default"), Text("Cancel")),
		),
	}
	if errMsg != "" {
		content = append([]Node{P(Class("text-danger"), Text(errMsg))}, content...)
	}

	return portalPage(title, username, Group(content))
}
