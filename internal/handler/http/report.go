package http

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/cmlabs-hris/attendance-insights/internal/domain/report"
	"github.com/cmlabs-hris/attendance-insights/internal/handler/http/response"
	"github.com/cmlabs-hris/attendance-insights/internal/service/export"
)

type ReportHandler interface {
	// Generate handles POST /reports
	Generate(w http.ResponseWriter, r *http.Request)

	// Export handles POST /reports/export?format=csv|xlsx|pdf
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService  report.ReportService
	maxUploadBytes int64
}

func NewReportHandler(reportService report.ReportService, maxUploadBytes int64) ReportHandler {
	return &reportHandlerImpl{
		reportService:  reportService,
		maxUploadBytes: maxUploadBytes,
	}
}

// Generate implements ReportHandler.
func (h *reportHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	req, file, ok := h.readUpload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	result, err := h.reportService.GenerateFromUpload(r.Context(), req)
	if err != nil {
		slog.Error("Failed to generate report", "file", req.FileName, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Export implements ReportHandler.
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")

	upload, file, ok := h.readUpload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	req := report.ExportRequest{GenerateReportRequest: upload, Format: format}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	exporter, err := export.ForFormat(req.Format)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.GenerateFromUpload(r.Context(), req.GenerateReportRequest)
	if err != nil {
		slog.Error("Failed to generate report", "file", req.FileName, "error", err)
		response.HandleError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := exporter.Export(&buf, result); err != nil {
		slog.Error("Failed to export report", "format", req.Format, "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", exporter.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFileName(req.FileName, result.RunID, exporter.Extension())))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("Failed to write export", "error", err)
	}
}

// readUpload pulls the multipart "file" field into a request. The caller
// closes the returned file.
func (h *reportHandlerImpl) readUpload(w http.ResponseWriter, r *http.Request) (report.GenerateReportRequest, multipart.File, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+(1<<20))

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.ValidationError(w, map[string]string{"file": "attendance workbook is too large"})
			return report.GenerateReportRequest{}, nil, false
		}
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return report.GenerateReportRequest{}, nil, false
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			response.ValidationError(w, map[string]string{"file": "attendance workbook is required"})
			return report.GenerateReportRequest{}, nil, false
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return report.GenerateReportRequest{}, nil, false
	}

	return report.GenerateReportRequest{
		FileName: fileHeader.Filename,
		Size:     fileHeader.Size,
		MaxSize:  h.maxUploadBytes,
		Content:  file,
	}, file, true
}

// exportFileName turns "marzo.xlsx" into "marzo-1a2b3c4d.pdf".
func exportFileName(source, runID, ext string) string {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	if base == "" || base == "." {
		base = "asistencia"
	}
	if len(runID) > 8 {
		runID = runID[:8]
	}
	return fmt.Sprintf("%s-%s%s", base, runID, ext)
}
