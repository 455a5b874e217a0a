package httpapi

import (
	"errors"
	"net/http"

	"facility-monitor/internal/domain"
	"facility-monitor/internal/repository"
	"facility-monitor/internal/service"

	"go.uber.org/zap"
)

type zoneFormPage struct {
	Title     string
	Error     string
	Zone      *domain.Zone
	Zones     []*domain.Zone
	ZoneTypes []Option
}

func (h *PanelHandler) zoneRequestFromForm(r *http.Request) service.ZoneRequest {
	return service.ZoneRequest{
		ZoneName:     r.PostFormValue("nombre"),
		ZoneType:     parseInt(r.PostFormValue("tipo"), 0),
		ParentZoneID: r.PostFormValue("zona_padre"),
		Locked:       formBool(r, "bloqueada"),
		TotalBeds:    parseInt(r.PostFormValue("total_camas"), 0),
		OccupiedBeds: parseInt(r.PostFormValue("camas_ocupadas"), 0),
	}
}

func (h *PanelHandler) renderZoneForm(w http.ResponseWriter, r *http.Request, page zoneFormPage) {
	zones, err := h.zones.ListZones(r.Context())
	if err != nil {
		h.fail(w, "Failed to list zones", err)
		return
	}
	page.Zones = zones
	page.ZoneTypes = zoneTypeOptions()
	render(w, http.StatusOK, "zone_form.html", page)
}

// AddZone GET renders the empty form; POST validates and persists.
func (h *PanelHandler) AddZone(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.renderZoneForm(w, r, zoneFormPage{Title: "Add zone"})
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if _, err := h.zones.AddZone(r.Context(), h.zoneRequestFromForm(r)); err != nil {
			if errors.Is(err, service.ErrMissingFields) {
				h.renderZoneForm(w, r, zoneFormPage{Title: "Add zone", Error: "All required fields must be filled in"})
				return
			}
			h.fail(w, "Failed to add zone", err)
			return
		}
		redirectPanel(w, r, "Zone added")
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// EditZone GET returns current values plus the selectable zone list;
// POST is a full replace of every field.
func (h *PanelHandler) EditZone(w http.ResponseWriter, r *http.Request) {
	id := pathID(r.URL.Path, "/panel/zonas/editar/")
	if id == "" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		zone, err := h.zones.GetZone(r.Context(), id)
		if err != nil {
			h.notFoundOrFail(w, "Failed to load zone", err)
			return
		}
		h.renderZoneForm(w, r, zoneFormPage{Title: "Edit zone", Zone: zone})
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		err := h.zones.EditZone(r.Context(), id, h.zoneRequestFromForm(r))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrMissingFields), errors.Is(err, service.ErrSelfParent):
				zone, gerr := h.zones.GetZone(r.Context(), id)
				if gerr != nil {
					h.notFoundOrFail(w, "Failed to load zone", gerr)
					return
				}
				h.renderZoneForm(w, r, zoneFormPage{Title: "Edit zone", Zone: zone, Error: err.Error()})
			case repository.IsNotFound(err):
				http.NotFound(w, r)
			default:
				h.fail(w, "Failed to edit zone", err)
			}
			return
		}
		redirectPanel(w, r, "Zone updated")
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// DeleteZone deletes over GET, matching the existing panel links, and
// redirects to the panel. References from clients/employees are nulled.
func (h *PanelHandler) DeleteZone(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := pathID(r.URL.Path, "/panel/zonas/eliminar/")
	if id == "" {
		http.NotFound(w, r)
		return
	}
	if err := h.zones.DeleteZone(r.Context(), id); err != nil {
		h.notFoundOrFail(w, "Failed to delete zone", err)
		return
	}
	redirectPanel(w, r, "Zone deleted")
}

func (h *PanelHandler) notFoundOrFail(w http.ResponseWriter, msg string, err error) {
	if repository.IsNotFound(err) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	h.logger.Error(msg, zap.Error(err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}
