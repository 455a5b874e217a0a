package httpapi

import (
	"errors"
	"net/http"

	"facility-monitor/internal/domain"
	"facility-monitor/internal/repository"
	"facility-monitor/internal/service"
)

type employeeFormPage struct {
	Title    string
	Error    string
	Employee *domain.Employee
	Zones    []*domain.Zone
}

func (h *PanelHandler) employeeRequestFromForm(r *http.Request) service.EmployeeRequest {
	return service.EmployeeRequest{
		FirstName: r.PostFormValue("nombre"),
		Surname1:  r.PostFormValue("apellido1"),
		RoleTitle: r.PostFormValue("cargo"),
		Active:    formBool(r, "activo"),
		ZoneID:    r.PostFormValue("zona_asignada"),
	}
}

func (h *PanelHandler) renderEmployeeForm(w http.ResponseWriter, r *http.Request, page employeeFormPage) {
	zones, err := h.zones.ListZones(r.Context())
	if err != nil {
		h.fail(w, "Failed to list zones", err)
		return
	}
	page.Zones = zones
	render(w, http.StatusOK, "employee_form.html", page)
}

func (h *PanelHandler) AddEmployee(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.renderEmployeeForm(w, r, employeeFormPage{Title: "Add employee"})
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if _, err := h.employees.AddEmployee(r.Context(), h.employeeRequestFromForm(r)); err != nil {
			if errors.Is(err, service.ErrMissingFields) {
				h.renderEmployeeForm(w, r, employeeFormPage{Title: "Add employee", Error: "All required fields must be filled in"})
				return
			}
			h.fail(w, "Failed to add employee", err)
			return
		}
		redirectPanel(w, r, "Employee added")
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// EditEmployee is a full replace, same as EditZone and EditClient.
func (h *PanelHandler) EditEmployee(w http.ResponseWriter, r *http.Request) {
	id := pathID(r.URL.Path, "/panel/empleados/editar/")
	if id == "" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		employee, err := h.employees.GetEmployee(r.Context(), id)
		if err != nil {
			h.notFoundOrFail(w, "Failed to load employee", err)
			return
		}
		h.renderEmployeeForm(w, r, employeeFormPage{Title: "Edit employee", Employee: employee})
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		err := h.employees.EditEmployee(r.Context(), id, h.employeeRequestFromForm(r))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrMissingFields):
				employee, gerr := h.employees.GetEmployee(r.Context(), id)
				if gerr != nil {
					h.notFoundOrFail(w, "Failed to load employee", gerr)
					return
				}
				h.renderEmployeeForm(w, r, employeeFormPage{Title: "Edit employee", Employee: employee, Error: "All required fields must be filled in"})
			case repository.IsNotFound(err):
				http.NotFound(w, r)
			default:
				h.fail(w, "Failed to edit employee", err)
			}
			return
		}
		redirectPanel(w, r, "Employee updated")
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// DeleteEmployee deletes over GET, matching the panel links.
func (h *PanelHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := pathID(r.URL.Path, "/panel/empleados/eliminar/")
	if id == "" {
		http.NotFound(w, r)
		return
	}
	if err := h.employees.DeleteEmployee(r.Context(), id); err != nil {
		h.notFoundOrFail(w, "Failed to delete employee", err)
		return
	}
	redirectPanel(w, r, "Employee deleted")
}
