package server

import (
	"net/http"
	"strings"

	"github.com/paasa/advisor/internal/common"
	"github.com/paasa/advisor/internal/interfaces"
)

// GenerateReportRequest is the POST /api/reports request body.
type GenerateReportRequest struct {
	QuizText    string `json:"quiz_text"`
	PortfolioID int    `json:"portfolio_id,omitempty"`
	SkipOutput  bool   `json:"skip_output,omitempty"`
}

// handleHealth responds to GET/HEAD /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleVersion responds to GET/HEAD /api/version.
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

// routeReports dispatches /api/reports by method: POST generates, GET lists.
func (s *Server) routeReports(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleGenerateReport(w, r)
	case http.MethodGet:
		s.handleListReports(w, r)
	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}

// handleGenerateReport handles POST /api/reports.
func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	var req GenerateReportRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.QuizText) == "" {
		WriteError(w, http.StatusBadRequest, "quiz_text is required")
		return
	}

	record, err := s.app.ReportService.Generate(r.Context(), req.QuizText, interfaces.GenerateOptions{
		PortfolioID: req.PortfolioID,
		SkipOutput:  req.SkipOutput,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("Report generation failed")
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	WriteJSON(w, http.StatusCreated, record)
}

// handleListReports handles GET /api/reports.
func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	ids, err := s.app.ReportService.ListReports(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("Report listing failed")
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(ids),
		"reports": ids,
	})
}

// handleReportByID handles GET /api/reports/{id}.
func (s *Server) handleReportByID(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/reports/")
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, http.StatusNotFound, "Report not found")
		return
	}

	record, err := s.app.ReportService.GetReport(r.Context(), id)
	if err != nil {
		WriteError(w, http.StatusNotFound, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, record)
}
