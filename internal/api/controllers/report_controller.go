package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

const reportFileName = "Trip_Report.pdf"

type ReportController struct {
	reportService services.ReportServiceInterface
}

func NewReportController(reportService services.ReportServiceInterface) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// GetReport godoc
// @Summary Trip summary
// @Description Trip details, selected plans and the total estimated cost
// @Tags Report
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /report [get]
func (r *ReportController) GetReport(c *gin.Context) {
	state, ok := currentSession(c)
	if !ok {
		return
	}

	report, err := r.reportService.BuildReport(c.Request.Context(), state)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "")
}

// DownloadPDF godoc
// @Summary Download the trip report
// @Tags Report
// @Produce application/pdf
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 409 {object} utils.APIResponse
// @Router /report/pdf [get]
func (r *ReportController) DownloadPDF(c *gin.Context) {
	state, ok := currentSession(c)
	if !ok {
		return
	}

	data, report, err := r.reportService.RenderPDF(c.Request.Context(), state)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	for _, w := range report.Warnings {
		c.Writer.Header().Add("X-Report-Warning", w)
	}
	c.Header("Content-Disposition", "attachment; filename="+reportFileName)
	c.Data(http.StatusOK, "application/pdf", data)
}

// ConfirmTrip godoc
// @Summary Confirm and finish
// @Description Finalises the trip; at least one plan must be selected
// @Tags Report
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /confirm [post]
func (r *ReportController) ConfirmTrip(c *gin.Context) {
	state, ok := currentSession(c)
	if !ok {
		return
	}

	report, err := r.reportService.ConfirmTrip(c.Request.Context(), state)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Trip confirmed. Have a great trip!")
}
