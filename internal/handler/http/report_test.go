package http

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-insights/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-insights/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-insights/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-insights/internal/pkg/jwt"
	attendanceService "github.com/cmlabs-hris/attendance-insights/internal/service/attendance"
	"github.com/cmlabs-hris/attendance-insights/internal/service/export"
	reportService "github.com/cmlabs-hris/attendance-insights/internal/service/report"
	scheduleService "github.com/cmlabs-hris/attendance-insights/internal/service/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const handlerTestSecret = "test-secret-key-for-jwt"

func ptr[T any](v T) *T { return &v }

func newTestRouter(t *testing.T, jwtService jwt.Service, maxUpload int64) http.Handler {
	t.Helper()
	resolver := scheduleService.NewResolver([]schedule.Override{
		{Key: "ana ruiz", Start: ptr(clock.New(8, 0))},
	})
	svc := reportService.NewReportService(
		resolver,
		attendanceService.NewClassifier(attendanceService.DefaultPolicy()),
		reportService.NewAggregator(),
		attendance.DefaultLayout(),
		nil,
	)
	return NewRouter(
		RouterOptions{JWTService: jwtService, Logger: NewLogger(io.Discard, 0, "test")},
		NewReportHandler(svc, maxUpload),
		NewScheduleHandler(resolver),
	)
}

func workbookBytes(t *testing.T, withSummary bool) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if withSummary {
		require.NoError(t, f.SetSheetName("Sheet1", "Summary"))
		require.NoError(t, f.SetCellValue("Summary", "B4", "Ana Ruiz"))
		require.NoError(t, f.SetCellValue("Summary", "C4", "Finance"))
	}
	_, err := f.NewSheet("Exceptional")
	require.NoError(t, err)
	cells := map[string]string{
		"J3": "Ana Ruiz", "A12": "01 Mo", "B12": "08:15", "D12": "12:30", "G12": "12:50", "I12": "17:10",
	}
	for ref, v := range cells {
		require.NoError(t, f.SetCellValue("Exceptional", ref, v))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func uploadRequest(t *testing.T, target, fileName string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if fileName != "" {
		part, err := mw.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestGenerateReport(t *testing.T) {
	router := newTestRouter(t, nil, 32<<20)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, uploadRequest(t, "/api/v1/reports", "marzo.xlsx", workbookBytes(t, true)))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env := decode(t, rec)
	assert.True(t, env.Success)

	var data struct {
		SourceName string `json:"source_name"`
		Employees  []struct {
			Employee     string `json:"employee"`
			Department   string `json:"department"`
			LateArrivals struct {
				Count   int `json:"count"`
				Minutes int `json:"minutes"`
			} `json:"late_arrivals"`
		} `json:"employees"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "marzo.xlsx", data.SourceName)
	require.Len(t, data.Employees, 1)
	assert.Equal(t, "Finance", data.Employees[0].Department)
	assert.Equal(t, 15, data.Employees[0].LateArrivals.Minutes)
}

func TestGenerateReport_MissingSummarySheet(t *testing.T) {
	router := newTestRouter(t, nil, 32<<20)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, uploadRequest(t, "/api/v1/reports", "marzo.xlsx", workbookBytes(t, false)))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "MISSING_SHEET", env.Error.Code)
	assert.Contains(t, env.Error.Message, `"Summary"`)
}

func TestGenerateReport_BadUploads(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		content  []byte
		status   int
	}{
		{"missing file", "", nil, http.StatusUnprocessableEntity},
		{"wrong extension", "marzo.csv", []byte("a,b"), http.StatusUnprocessableEntity},
		{"not a workbook", "marzo.xlsx", []byte("garbage"), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, nil, 32<<20)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, uploadRequest(t, "/api/v1/reports", tt.fileName, tt.content))
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.False(t, decode(t, rec).Success)
		})
	}
}

func TestGenerateReport_TooLarge(t *testing.T) {
	router := newTestRouter(t, nil, 64)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, uploadRequest(t, "/api/v1/reports", "marzo.xlsx", workbookBytes(t, true)))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Details["file"], "too large")
}

func TestExportReport(t *testing.T) {
	router := newTestRouter(t, nil, 32<<20)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, uploadRequest(t, "/api/v1/reports/export?format=csv", "marzo.xlsx", workbookBytes(t, true)))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `filename="marzo-`)

	stats, err := export.ParseCSV(rec.Body)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "Ana Ruiz", stats[0].Employee)
	assert.Equal(t, 1, stats[0].LateArrivals.Count)
}

func TestExportReport_UnknownFormat(t *testing.T) {
	router := newTestRouter(t, nil, 32<<20)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, uploadRequest(t, "/api/v1/reports/export?format=docx", "marzo.xlsx", workbookBytes(t, true)))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Details, "format")
}

func TestResolveSchedule(t *testing.T) {
	router := newTestRouter(t, nil, 32<<20)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rules/schedule?employee=Luis%20PPP", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Category string `json:"category"`
		Schedule struct {
			Start string `json:"start_time"`
			End   string `json:"end_time"`
		} `json:"schedule"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
	assert.Equal(t, "ppp", data.Category)
	assert.Equal(t, "08:00", data.Schedule.Start)
	assert.Equal(t, "12:00", data.Schedule.End)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rules/schedule", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAuth(t *testing.T) {
	jwtService := jwt.NewJWTService(handlerTestSecret, time.Hour)
	router := newTestRouter(t, jwtService, 32<<20)
	target := "/api/v1/rules/schedule?employee=Ana%20Ruiz"

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, _, err := jwtService.GenerateAccessToken("dashboard")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	other, _, err := jwt.NewJWTService("another-secret", time.Hour).GenerateAccessToken("dashboard")
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Authorization", "Bearer "+other)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHeartbeat(t *testing.T) {
	router := newTestRouter(t, jwt.NewJWTService(handlerTestSecret, time.Hour), 32<<20)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
