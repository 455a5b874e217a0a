package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

// Router wraps the standard library http.ServeMux. The route surface is
// small and fixed, so a third-party router buys nothing here.
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterAuthRoutes mounts login, register and logout. Login owns "/"
// and 404s any other unmatched path itself.
func (r *Router) RegisterAuthRoutes(a *AuthHandler) {
	r.Handle("/", a.Login)
	r.Handle("/register/", a.Register)
	r.Handle("/logout/", a.Logout)
}

// RegisterReportRoutes mounts the pages any signed-in account can see.
func (r *Router) RegisterReportRoutes(sessions *Sessions, h *ReportHandler) {
	r.Handle("/main/", sessions.RequireSession(h.Main))
	r.Handle("/analisis/", sessions.RequireSession(h.Analysis))
}

// RegisterPanelRoutes mounts the superuser CRUD surface. Every route
// goes through RequireSuperuser; deletes stay on GET.
func (r *Router) RegisterPanelRoutes(sessions *Sessions, h *PanelHandler) {
	guard := func(next http.HandlerFunc) http.HandlerFunc {
		return sessions.RequireSuperuser(next)
	}

	r.Handle("/panel/", guard(h.Panel))
	r.Handle("/panel/export/", guard(h.PanelExport))

	r.Handle("/panel/zonas/agregar/", guard(h.AddZone))
	r.Handle("/panel/zonas/editar/", guard(h.EditZone))
	r.Handle("/panel/zonas/eliminar/", guard(h.DeleteZone))

	r.Handle("/panel/clientes/agregar/", guard(h.AddClient))
	r.Handle("/panel/clientes/editar/", guard(h.EditClient))
	r.Handle("/panel/clientes/eliminar/", guard(h.DeleteClient))

	r.Handle("/panel/contactos/agregar/", guard(h.AddContact))
	r.Handle("/panel/contactos/eliminar/", guard(h.DeleteContact))

	r.Handle("/panel/empleados/agregar/", guard(h.AddEmployee))
	r.Handle("/panel/empleados/editar/", guard(h.EditEmployee))
	r.Handle("/panel/empleados/eliminar/", guard(h.DeleteEmployee))
}
