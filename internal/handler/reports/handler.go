package reports

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yogahom/studio-api/internal/service/report"
	apperrors "github.com/yogahom/studio-api/pkg/errors"
	"github.com/yogahom/studio-api/pkg/httputil"
	"github.com/yogahom/studio-api/pkg/metrics"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service *report.Service
	metrics *metrics.Metrics
}

func NewHandler(service *report.Service, m *metrics.Metrics) *Handler {
	return &Handler{service: service, metrics: m}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	reports := r.Group("/reports")
	{
		reports.GET("/packageSales", h.PackageSales)
		reports.GET("/packageSales/export", h.ExportPackageSales)
		reports.GET("/instructorPerformance", h.InstructorPerformance)
		reports.GET("/customerPackages", h.CustomerPackages)
		reports.GET("/teacherPayments", h.TeacherPayments)
	}
}

func (h *Handler) PackageSales(c *gin.Context) {
	result, err := h.service.PackageSales(c.Request.Context(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		httputil.Error(c, err)
		return
	}
	h.metrics.ReportRuns.WithLabelValues("package_sales").Inc()
	c.JSON(http.StatusOK, result)
}

func (h *Handler) ExportPackageSales(c *gin.Context) {
	buf, err := h.service.ExportPackageSales(c.Request.Context(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		httputil.Error(c, err)
		return
	}
	h.metrics.ReportRuns.WithLabelValues("package_sales_export").Inc()

	filename := fmt.Sprintf("package-sales-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *Handler) InstructorPerformance(c *gin.Context) {
	result, err := h.service.InstructorPerformance(c.Request.Context(), c.Query("month"), c.Query("year"))
	if err != nil {
		httputil.Error(c, err)
		return
	}
	h.metrics.ReportRuns.WithLabelValues("instructor_performance").Inc()
	c.JSON(http.StatusOK, result)
}

func (h *Handler) CustomerPackages(c *gin.Context) {
	result, err := h.service.CustomerPackages(c.Request.Context())
	if err != nil {
		httputil.Error(c, err)
		return
	}
	h.metrics.ReportRuns.WithLabelValues("customer_packages").Inc()
	c.JSON(http.StatusOK, result)
}

func (h *Handler) TeacherPayments(c *gin.Context) {
	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	if v := c.Query("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			httputil.Error(c, apperrors.Validation("month must be numeric"))
			return
		}
		month = parsed
	}
	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			httputil.Error(c, apperrors.Validation("year must be numeric"))
			return
		}
		year = parsed
	}

	result, err := h.service.TeacherPayments(c.Request.Context(), month, year)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	h.metrics.ReportRuns.WithLabelValues("teacher_payments").Inc()
	c.JSON(http.StatusOK, result)
}
