package httpapi

import (
	"errors"
	"net/http"

	"facility-monitor/internal/domain"
	"facility-monitor/internal/repository"
	"facility-monitor/internal/service"
)

type clientFormPage struct {
	Title         string
	Error         string
	Client        *domain.Client
	Contacts      []*domain.Contact
	Zones         []*domain.Zone
	Illnesses     []string
	Relationships []Option
}

func (h *PanelHandler) clientRequestFromForm(r *http.Request) service.ClientRequest {
	return service.ClientRequest{
		FirstName:    r.PostFormValue("nombre"),
		Surname1:     r.PostFormValue("apellido1"),
		Surname2:     r.PostFormValue("apellido2"),
		Document:     r.PostFormValue("documento"),
		DocumentType: parseDocumentType(r.PostFormValue("tipo_documento")),
		Phone:        r.PostFormValue("telefono"),
		Email:        r.PostFormValue("correo"),
		BirthDate:    r.PostFormValue("fecha_nacimiento"),
		Active:       formBool(r, "alta"),
		Illness:      r.PostFormValue("tipo_enfermedad"),
		ZoneID:       r.PostFormValue("zona_asignada"),
	}
}

func (h *PanelHandler) renderClientForm(w http.ResponseWriter, r *http.Request, page clientFormPage) {
	zones, err := h.zones.ListZones(r.Context())
	if err != nil {
		h.fail(w, "Failed to list zones", err)
		return
	}
	if page.Client != nil {
		contacts, err := h.clients.ListContacts(r.Context(), page.Client.ClientID)
		if err != nil {
			h.fail(w, "Failed to list contacts", err)
			return
		}
		page.Contacts = contacts
	}
	page.Zones = zones
	page.Illnesses = domain.IllnessValues
	page.Relationships = relationshipOptions()
	render(w, http.StatusOK, "client_form.html", page)
}

// AddClient GET renders the empty form; POST validates and persists.
func (h *PanelHandler) AddClient(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.renderClientForm(w, r, clientFormPage{Title: "Add client"})
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if _, err := h.clients.AddClient(r.Context(), h.clientRequestFromForm(r)); err != nil {
			if errors.Is(err, service.ErrMissingFields) {
				h.renderClientForm(w, r, clientFormPage{Title: "Add client", Error: "All required fields must be filled in"})
				return
			}
			h.fail(w, "Failed to add client", err)
			return
		}
		redirectPanel(w, r, "Client added")
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// EditClient GET returns current values, the contact list and the
// selectable zones; POST is a full replace of every field.
func (h *PanelHandler) EditClient(w http.ResponseWriter, r *http.Request) {
	id := pathID(r.URL.Path, "/panel/clientes/editar/")
	if id == "" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		client, err := h.clients.GetClient(r.Context(), id)
		if err != nil {
			h.notFoundOrFail(w, "Failed to load client", err)
			return
		}
		h.renderClientForm(w, r, clientFormPage{Title: "Edit client", Client: client})
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		err := h.clients.EditClient(r.Context(), id, h.clientRequestFromForm(r))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrMissingFields):
				client, gerr := h.clients.GetClient(r.Context(), id)
				if gerr != nil {
					h.notFoundOrFail(w, "Failed to load client", gerr)
					return
				}
				h.renderClientForm(w, r, clientFormPage{Title: "Edit client", Client: client, Error: "All required fields must be filled in"})
			case repository.IsNotFound(err):
				http.NotFound(w, r)
			default:
				h.fail(w, "Failed to edit client", err)
			}
			return
		}
		redirectPanel(w, r, "Client updated")
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// DeleteClient deletes over GET, matching the panel links; owned
// contacts go with the client.
func (h *PanelHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := pathID(r.URL.Path, "/panel/clientes/eliminar/")
	if id == "" {
		http.NotFound(w, r)
		return
	}
	if err := h.clients.DeleteClient(r.Context(), id); err != nil {
		h.notFoundOrFail(w, "Failed to delete client", err)
		return
	}
	redirectPanel(w, r, "Client deleted")
}

// AddContact creates an emergency contact against an existing client.
func (h *PanelHandler) AddContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	req := service.ContactRequest{
		ClientID:     r.PostFormValue("cliente"),
		FirstName:    r.PostFormValue("nombre"),
		Surname1:     r.PostFormValue("apellido1"),
		Surname2:     r.PostFormValue("apellido2"),
		Relationship: parseInt(r.PostFormValue("relacion"), domain.RelationshipOther),
		Phone:        r.PostFormValue("telefono"),
		Email:        r.PostFormValue("correo"),
	}
	if _, err := h.clients.AddContact(r.Context(), req); err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			client, gerr := h.clients.GetClient(r.Context(), req.ClientID)
			if gerr != nil {
				h.notFoundOrFail(w, "Failed to load client", gerr)
				return
			}
			h.renderClientForm(w, r, clientFormPage{Title: "Edit client", Client: client, Error: "All required fields must be filled in"})
			return
		}
		h.notFoundOrFail(w, "Failed to add contact", err)
		return
	}
	redirectPanel(w, r, "Contact added")
}

// DeleteContact deletes over GET, matching the panel links.
func (h *PanelHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := pathID(r.URL.Path, "/panel/contactos/eliminar/")
	if id == "" {
		http.NotFound(w, r)
		return
	}
	if err := h.clients.DeleteContact(r.Context(), id); err != nil {
		h.notFoundOrFail(w, "Failed to delete contact", err)
		return
	}
	redirectPanel(w, r, "Contact deleted")
}
