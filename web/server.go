// Package web serves the import API consumed by the surrounding system:
// it accepts decoded tabular payloads or raw files and returns the import
// result summary.
package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"shiftsync/config"
	"shiftsync/ingest"
	"shiftsync/internal/timeutil"
	"shiftsync/reconcile"
	"shiftsync/schedule"
	"shiftsync/storage"
)

type Server struct {
	store   *storage.SQLiteStore
	cfg     config.Config
	aliases *ingest.AliasSet
	mux     *http.ServeMux
}

// importPayload is the already-decoded invocation contract: a header row
// plus data rows with cells of mixed type.
type importPayload struct {
	ImportID string  `json:"import_id"`
	Sheet    string  `json:"sheet"`
	Rows     [][]any `json:"rows"`
}

type importResponse struct {
	Success      bool   `json:"success"`
	ImportID     string `json:"import_id"`
	Sheet        string `json:"sheet"`
	TotalRecords int    `json:"total_records"`
	Inserted     int    `json:"inserted"`
	Updated      int    `json:"updated"`
	Deduped      int    `json:"deduped"`
	Skipped      int    `json:"skipped"`
	ErrorsCount  int    `json:"errors_count"`
	DurationMS   int64  `json:"duration_ms"`
	Error        string `json:"error,omitempty"`
}

type storeCreateRequest struct {
	StoreNumber int    `json:"store_number"`
	Name        string `json:"name"`
	Region      string `json:"region"`
}

func NewServer(store *storage.SQLiteStore, cfg config.Config) (http.Handler, error) {
	aliases, err := cfg.AliasSet()
	if err != nil {
		return nil, err
	}

	server := &Server{store: store, cfg: cfg, aliases: aliases}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/import", server.handleAPIImport)
	mux.HandleFunc("GET /api/shifts", server.handleAPIShifts)
	mux.HandleFunc("GET /api/stores", server.handleAPIStores)
	mux.HandleFunc("POST /api/stores", server.handleAPIStoreCreate)
	server.mux = mux

	return server, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleAPIImport(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")

	var (
		table    ingest.Table
		importID string
		err      error
	)
	if strings.HasPrefix(contentType, "multipart/form-data") {
		table, importID, err = s.tableFromUpload(r)
	} else {
		table, importID, err = tableFromJSON(r)
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, importResponse{
			Success:  false,
			ImportID: importID,
			Error:    err.Error(),
		})
		return
	}

	outcome, err := reconcile.Run(s.store, table, importID, reconcile.Options{
		MaxRows:          s.cfg.Import.MaxRows,
		Aliases:          s.aliases,
		DefaultPublished: s.cfg.Import.DefaultPublished,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, reconcile.ErrNoSheet) || errors.Is(err, reconcile.ErrNoDataRows) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, importResponse{
			Success:  false,
			ImportID: importID,
			Sheet:    table.Sheet,
			Error:    err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, importResponse{
		Success:      true,
		ImportID:     outcome.ImportID,
		Sheet:        outcome.Sheet,
		TotalRecords: outcome.Total(),
		Inserted:     outcome.Inserted,
		Updated:      outcome.Updated,
		Deduped:      outcome.Updated,
		Skipped:      outcome.Skipped,
		ErrorsCount:  len(outcome.Errors),
		DurationMS:   outcome.Duration.Milliseconds(),
	})
}

func (s *Server) tableFromUpload(r *http.Request) (ingest.Table, string, error) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return ingest.Table{}, "", fmt.Errorf("parse multipart form: %w", err)
	}

	importID := resolveImportID(r.FormValue("import_id"))

	file, header, err := r.FormFile("file")
	if err != nil {
		return ingest.Table{}, importID, fmt.Errorf("missing file upload")
	}
	defer file.Close()

	tmp, err := os.CreateTemp("", tempUploadPattern(header.Filename))
	if err != nil {
		return ingest.Table{}, importID, fmt.Errorf("create temp upload: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, file); err != nil {
		_ = tmp.Close()
		return ingest.Table{}, importID, fmt.Errorf("save upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return ingest.Table{}, importID, fmt.Errorf("close upload temp file: %w", err)
	}

	format, err := ingest.InferFormat(header.Filename, r.FormValue("format"))
	if err != nil {
		return ingest.Table{}, importID, err
	}
	reader, err := ingest.ReaderForFormat(format)
	if err != nil {
		return ingest.Table{}, importID, err
	}
	if excel, ok := reader.(*ingest.ExcelReader); ok {
		excel.Sheet = strings.TrimSpace(r.FormValue("sheet"))
	}

	table, err := reader.Read(tmpPath)
	if err != nil {
		return ingest.Table{}, importID, err
	}
	return table, importID, nil
}

func tableFromJSON(r *http.Request) (ingest.Table, string, error) {
	var payload importPayload
	if err := decodeJSON(r, &payload); err != nil {
		return ingest.Table{}, "", err
	}

	importID := resolveImportID(payload.ImportID)
	return ingest.Table{Sheet: payload.Sheet, Rows: payload.Rows}, importID, nil
}

func (s *Server) handleAPIShifts(w http.ResponseWriter, r *http.Request) {
	var filter storage.ShiftFilter

	if raw := strings.TrimSpace(r.URL.Query().Get("store")); raw != "" {
		storeNumber, err := strconv.Atoi(raw)
		if err != nil || storeNumber <= 0 {
			http.Error(w, "invalid store number", http.StatusBadRequest)
			return
		}
		filter.StoreNumber = storeNumber
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("date")); raw != "" {
		day, err := timeutil.ParseDay(raw)
		if err != nil {
			http.Error(w, "invalid date format (expected YYYY-MM-DD)", http.StatusBadRequest)
			return
		}
		filter.Day = day
	}

	shifts, err := s.store.ListShifts(filter)
	if err != nil {
		http.Error(w, fmt.Sprintf("list shifts: %v", err), http.StatusInternalServerError)
		return
	}

	views := make([]shiftView, 0, len(shifts))
	for _, shift := range shifts {
		views = append(views, newShiftView(shift))
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleAPIStores(w http.ResponseWriter, r *http.Request) {
	stores, err := s.store.ListStores()
	if err != nil {
		http.Error(w, fmt.Sprintf("list stores: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stores)
}

func (s *Server) handleAPIStoreCreate(w http.ResponseWriter, r *http.Request) {
	var body storeCreateRequest
	if err := decodeJSON(r, &body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if body.StoreNumber <= 0 {
		http.Error(w, "store_number must be > 0", http.StatusBadRequest)
		return
	}

	if err := s.store.AddStore(body.StoreNumber, body.Name, body.Region); err != nil {
		http.Error(w, fmt.Sprintf("add store: %v", err), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

type shiftView struct {
	ID             int64   `json:"id"`
	StoreNumber    int     `json:"store_number"`
	Date           string  `json:"date"`
	EmployeeName   string  `json:"employee_name"`
	ShiftTime      string  `json:"shift_time"`
	EmployeeID     string  `json:"employee_id,omitempty"`
	Role           string  `json:"role,omitempty"`
	EmployeeType   string  `json:"employee_type,omitempty"`
	ScheduledHours float64 `json:"scheduled_hours,omitempty"`
	Region         string  `json:"region,omitempty"`
	StartTime      string  `json:"start_time,omitempty"`
	EndTime        string  `json:"end_time,omitempty"`
	Notes          string  `json:"notes,omitempty"`
	Published      bool    `json:"published"`
}

func newShiftView(shift schedule.Shift) shiftView {
	return shiftView{
		ID:             shift.ID,
		StoreNumber:    shift.StoreNumber,
		Date:           timeutil.FormatDay(shift.Date),
		EmployeeName:   shift.EmployeeName,
		ShiftTime:      shift.ShiftTime,
		EmployeeID:     shift.EmployeeID,
		Role:           shift.Role,
		EmployeeType:   shift.EmployeeType,
		ScheduledHours: shift.ScheduledHours,
		Region:         shift.Region,
		StartTime:      shift.StartTime,
		EndTime:        shift.EndTime,
		Notes:          shift.Notes,
		Published:      shift.Published,
	}
}

func resolveImportID(raw string) string {
	if trimmed := strings.TrimSpace(raw); trimmed != "" {
		return trimmed
	}
	return "import-" + time.Now().UTC().Format("20060102T150405.000000000")
}

func decodeJSON(r *http.Request, out any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		return err
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("request body must contain a single JSON object")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func tempUploadPattern(filename string) string {
	base := filepath.Base(strings.TrimSpace(filename))
	if base == "" || base == "." {
		return "upload-*"
	}

	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		stem = "upload"
	}
	if ext == "" {
		return stem + "-*"
	}
	return stem + "-*" + ext
}
