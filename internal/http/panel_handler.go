package httpapi

import (
	"net/http"

	"facility-monitor/internal/domain"
	"facility-monitor/internal/service"

	"go.uber.org/zap"
)

// PanelHandler the superuser-only CRUD surface over zones, clients,
// contacts and employees.
type PanelHandler struct {
	zones     service.ZoneService
	clients   service.ClientService
	employees service.EmployeeService
	logger    *zap.Logger
}

func NewPanelHandler(
	zones service.ZoneService,
	clients service.ClientService,
	employees service.EmployeeService,
	logger *zap.Logger,
) *PanelHandler {
	return &PanelHandler{zones: zones, clients: clients, employees: employees, logger: logger}
}

type panelPage struct {
	Notice         string
	Zones          []*domain.Zone
	Clients        []*domain.Client
	Employees      []*domain.Employee
	TotalZones     int
	TotalClients   int
	TotalEmployees int
}

// Panel lists every zone, client and employee plus totals.
func (h *PanelHandler) Panel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	zones, err := h.zones.ListZones(ctx)
	if err != nil {
		h.fail(w, "Failed to list zones", err)
		return
	}
	clients, err := h.clients.ListClients(ctx)
	if err != nil {
		h.fail(w, "Failed to list clients", err)
		return
	}
	employees, err := h.employees.ListEmployees(ctx)
	if err != nil {
		h.fail(w, "Failed to list employees", err)
		return
	}

	render(w, http.StatusOK, "panel.html", panelPage{
		Notice:         r.URL.Query().Get("notice"),
		Zones:          zones,
		Clients:        clients,
		Employees:      employees,
		TotalZones:     len(zones),
		TotalClients:   len(clients),
		TotalEmployees: len(employees),
	})
}

func (h *PanelHandler) fail(w http.ResponseWriter, msg string, err error) {
	h.logger.Error(msg, zap.Error(err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}

// redirectPanel sends the post-mutation redirect with a success notice.
func redirectPanel(w http.ResponseWriter, r *http.Request, notice string) {
	target := "/panel/"
	if notice != "" {
		target += "?notice=" + urlQueryEscape(notice)
	}
	http.Redirect(w, r, target, http.StatusFound)
}
