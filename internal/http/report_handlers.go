package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"facility-monitor/internal/service"
)

// ReportHandler serves the landing page and the aggregate analysis view.
type ReportHandler struct {
	reports service.ReportService
	logger  *zap.Logger
}

func NewReportHandler(reports service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, logger: logger}
}

// Main is the post-login landing page. The panel link only shows for
// superusers but access control lives in the middleware, not here.
func (h *ReportHandler) Main(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	p, ok := PrincipalFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	render(w, http.StatusOK, "main.html", struct {
		Username    string
		IsSuperuser bool
	}{Username: p.Username, IsSuperuser: p.IsSuperuser})
}

// Analysis renders the aggregate counts, open to any signed-in account.
func (h *ReportHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	overview, err := h.reports.Overview(r.Context())
	if err != nil {
		h.logger.Error("Failed to build report overview", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	render(w, http.StatusOK, "analisis.html", struct {
		Overview *service.ReportOverview
	}{Overview: overview})
}
