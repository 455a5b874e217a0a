package httpapi

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"facility-monitor/internal/domain"
)

var (
	zoneExportHeader = []string{
		"Identifier", "Name", "Type", "Parent zone", "Locked", "Total beds", "Occupied beds",
	}
	clientExportHeader = []string{
		"Identifier", "First name", "Surname 1", "Surname 2", "Document", "Document type",
		"Phone", "Email", "Birth date", "Active", "Illness", "Zone",
	}
	employeeExportHeader = []string{
		"Identifier", "First name", "Surname 1", "Role", "Active", "Zone",
	}
)

// PanelExport downloads the full facility inventory as a three-sheet
// workbook, one sheet per entity.
func (h *PanelHandler) PanelExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	zones, err := h.zones.ListZones(r.Context())
	if err != nil {
		h.fail(w, "Failed to list zones", err)
		return
	}
	clients, err := h.clients.ListClients(r.Context())
	if err != nil {
		h.fail(w, "Failed to list clients", err)
		return
	}
	employees, err := h.employees.ListEmployees(r.Context())
	if err != nil {
		h.fail(w, "Failed to list employees", err)
		return
	}

	data, err := generatePanelExcel(zones, clients, employees)
	if err != nil {
		h.fail(w, "Failed to generate export", err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=facility-export.xlsx")
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.Write(data)
}

func generatePanelExcel(zones []*domain.Zone, clients []*domain.Client, employees []*domain.Employee) ([]byte, error) {
	f := excelize.NewFile()
	// WriteTo needs the file open, so no deferred Close on success.

	zoneNames := make(map[string]string, len(zones))
	for _, z := range zones {
		zoneNames[z.ZoneID] = z.ZoneName
	}
	zoneLabel := func(id string) string {
		if name, ok := zoneNames[id]; ok {
			return name
		}
		return ""
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	addSheet := func(name string, headers []string, rows [][]any) error {
		index, err := f.NewSheet(name)
		if err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
		f.SetActiveSheet(index)
		for col, header := range headers {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(name, cell, header); err != nil {
				return fmt.Errorf("failed to set header cell %s: %w", cell, err)
			}
			if err := f.SetCellStyle(name, cell, cell, headerStyle); err != nil {
				return fmt.Errorf("failed to set header style: %w", err)
			}
		}
		for i, row := range rows {
			for col, value := range row {
				cell, err := excelize.CoordinatesToCellName(col+1, i+2)
				if err != nil {
					return fmt.Errorf("failed to convert coordinates: %w", err)
				}
				if err := f.SetCellValue(name, cell, value); err != nil {
					return fmt.Errorf("failed to set cell %s: %w", cell, err)
				}
			}
		}
		return nil
	}

	zoneRows := make([][]any, 0, len(zones))
	for _, z := range zones {
		zoneRows = append(zoneRows, []any{
			z.Identifier, z.ZoneName, z.TypeLabel(), zoneLabel(z.ParentZoneID.String),
			z.Locked, z.TotalBeds, z.OccupiedBeds,
		})
	}
	if err := addSheet("Zones", zoneExportHeader, zoneRows); err != nil {
		f.Close()
		return nil, err
	}

	clientRows := make([][]any, 0, len(clients))
	for _, c := range clients {
		birth := ""
		if c.BirthDate.Valid {
			birth = c.BirthDate.Time.Format("2006-01-02")
		}
		clientRows = append(clientRows, []any{
			c.Identifier, c.FirstName, c.Surname1, c.Surname2.String,
			c.Document, domain.DocumentTypeLabels[c.DocumentType],
			c.Phone.String, c.Email.String, birth, c.Active, c.Illness,
			zoneLabel(c.ZoneID.String),
		})
	}
	if err := addSheet("Clients", clientExportHeader, clientRows); err != nil {
		f.Close()
		return nil, err
	}

	employeeRows := make([][]any, 0, len(employees))
	for _, e := range employees {
		employeeRows = append(employeeRows, []any{
			e.Identifier, e.FirstName, e.Surname1, e.RoleTitle,
			e.Active, zoneLabel(e.ZoneID.String),
		})
	}
	if err := addSheet("Employees", employeeExportHeader, employeeRows); err != nil {
		f.Close()
		return nil, err
	}

	f.DeleteSheet("Sheet1")

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write excel data: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close excel file: %w", err)
	}
	return buf.Bytes(), nil
}
