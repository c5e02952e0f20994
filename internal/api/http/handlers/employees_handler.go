package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-portal/internal/api/dto"
	"github.com/spec-kit/employee-portal/internal/auth"
	"github.com/spec-kit/employee-portal/internal/service"
	"github.com/spec-kit/employee-portal/internal/ui"
	apperrors "github.com/spec-kit/employee-portal/pkg/util"
)

// EmployeesHandler exposes the record CRUD surfaces. Every route sits
// behind the session middleware, which guarantees a principal in
// request locals.
type EmployeesHandler struct {
	employees *service.EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employees *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{employees: employees}
}

func principal(c *fiber.Ctx) (auth.Principal, error) {
	p, ok := auth.PrincipalFromContext(c)
	if !ok {
		return auth.Principal{}, apperrors.NewUnauthorized("authentication required")
	}
	return p, nil
}

func recordID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewNotFound("employee", nil)
	}
	return id, nil
}

// parseForm turns the submitted form into a service input. A salary
// that does not parse as a number is a validation failure, reported
// the same way as a negative one.
func parseForm(c *fiber.Ctx) (service.EmployeeInput, dto.EmployeeForm, error) {
	var form dto.EmployeeForm
	if err := c.BodyParser(&form); err != nil {
		return service.EmployeeInput{}, form, apperrors.NewValidationError("invalid form payload", nil)
	}

	salary, err := strconv.ParseFloat(form.Salary, 64)
	if err != nil {
		return service.EmployeeInput{}, form, apperrors.NewValidationError("salary must be a number", nil)
	}

	return service.EmployeeInput{
		Name:    form.Name,
		Address: form.Address,
		Salary:  salary,
	}, form, nil
}

// List handles GET /employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	records, err := h.employees.List(c.UserContext(), p)
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, ui.EmployeeListPage(p.Username, records))
}

// NewForm handles GET /employees/new.
func (h *EmployeesHandler) NewForm(c *fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, ui.EmployeeFormPage(p.Username, "Add New Employee", "/employees", ui.EmployeeFormValues{}, ""))
}

// Create handles POST /employees. Validation failures re-render the
// form with the submitted values intact.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	input, form, err := parseForm(c)
	if err == nil {
		_, err = h.employees.Create(c.UserContext(), p, input)
	}
	if err != nil {
		if domainErr := apperrors.ToDomainError(err); domainErr.Code == "VALIDATION_FAILED" {
			values := ui.EmployeeFormValues{Name: form.Name, Address: form.Address, Salary: form.Salary}
			return render(c, http.StatusBadRequest, ui.EmployeeFormPage(p.Username, "Add New Employee", "/employees", values, domainErr.Message))
		}
		return err
	}
	return c.Redirect("/employees", fiber.StatusSeeOther)
}

// Show handles GET /employees/:id.
func (h *EmployeesHandler) Show(c *fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := recordID(c)
	if err != nil {
		return err
	}

	record, err := h.employees.Get(c.UserContext(), p, id)
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, ui.EmployeeDetailPage(p.Username, *record))
}

// EditForm handles GET /employees/:id/edit, pre-filled with the
// current field values.
func (h *EmployeesHandler) EditForm(c *fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := recordID(c)
	if err != nil {
		return err
	}

	record, err := h.employees.Get(c.UserContext(), p, id)
	if err != nil {
		return err
	}

	values := ui.EmployeeFormValues{
		Name:    record.Name,
		Address: record.Address,
		Salary:  strconv.FormatFloat(record.Salary, 'f', 2, 64),
	}
	action := "/employees/" + strconv.FormatInt(id, 10)
	return render(c, http.StatusOK, ui.EmployeeFormPage(p.Username, "Update Employee", action, values, ""))
}

// Update handles POST /employees/:id as a full-record replace.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := recordID(c)
	if err != nil {
		return err
	}

	input, form, err := parseForm(c)
	if err == nil {
		_, err = h.employees.Update(c.UserContext(), p, id, input)
	}
	if err != nil {
		if domainErr := apperrors.ToDomainError(err); domainErr.Code == "VALIDATION_FAILED" {
			values := ui.EmployeeFormValues{Name: form.Name, Address: form.Address, Salary: form.Salary}
			action := "/employees/" + strconv.FormatInt(id, 10)
			return render(c, http.StatusBadRequest, ui.EmployeeFormPage(p.Username, "Update Employee", action, values, domainErr.Message))
		}
		return err
	}
	return c.Redirect("/employees", fiber.StatusSeeOther)
}

// Delete handles POST /employees/:id/delete.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := recordID(c)
	if err != nil {
		return err
	}

	if err := h.employees.Delete(c.UserContext(), p, id); err != nil {
		return err
	}
	return c.Redirect("/employees", fiber.StatusSeeOther)
}
