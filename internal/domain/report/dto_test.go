package report

import (
	"strings"
	"testing"

	"github.com/cmlabs-hris/attendance-insights/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReportRequest_Validate(t *testing.T) {
	ok := GenerateReportRequest{FileName: "march.xlsx", Size: 10, MaxSize: 100, Content: strings.NewReader("x")}
	assert.NoError(t, ok.Validate())

	missing := GenerateReportRequest{}
	err := missing.Validate()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "attendance workbook is required", errs.ToMap()["file"])

	wrongType := GenerateReportRequest{FileName: "march.pdf", Content: strings.NewReader("x")}
	assert.Error(t, wrongType.Validate())

	tooBig := GenerateReportRequest{FileName: "march.xlsx", Size: 101, MaxSize: 100, Content: strings.NewReader("x")}
	assert.Error(t, tooBig.Validate())
}

func TestExportRequest_Validate(t *testing.T) {
	req := ExportRequest{
		GenerateReportRequest: GenerateReportRequest{FileName: "march.xlsx", Content: strings.NewReader("x")},
		Format:                "docx",
	}
	err := req.Validate()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "format")
	assert.NotContains(t, errs.ToMap(), "file")

	req.Format = "pdf"
	assert.NoError(t, req.Validate())
}
