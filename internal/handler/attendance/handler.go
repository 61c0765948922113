package attendance

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yogahom/studio-api/internal/model"
	"github.com/yogahom/studio-api/internal/service/attendance"
	apperrors "github.com/yogahom/studio-api/pkg/errors"
	"github.com/yogahom/studio-api/pkg/httputil"
	"github.com/yogahom/studio-api/pkg/metrics"
)

type Handler struct {
	service *attendance.Service
	metrics *metrics.Metrics
}

func NewHandler(service *attendance.Service, m *metrics.Metrics) *Handler {
	return &Handler{service: service, metrics: m}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	att := r.Group("/attendance")
	{
		att.POST("/recordAttendance", h.Record)
		att.GET("/getAttendanceHistory", h.History)
		att.GET("/getClassesByInstructor", h.ClassesByInstructor)
		att.DELETE("/deleteAttendance", h.Delete)
		att.GET("/getAttendanceStats", h.Stats)
	}
}

func (h *Handler) Record(c *gin.Context) {
	var req model.RecordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Message(c, http.StatusBadRequest, "Class ID and customer IDs are required")
		return
	}

	result, err := h.service.Record(c.Request.Context(), &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	h.metrics.CheckIns.Add(float64(len(result.Successful)))
	h.metrics.CheckInErrors.Add(float64(len(result.Errors)))

	c.JSON(http.StatusCreated, result)
}

func (h *Handler) History(c *gin.Context) {
	records, err := h.service.History(c.Request.Context(), c.Query("customerId"))
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) ClassesByInstructor(c *gin.Context) {
	classes, err := h.service.ClassesByInstructor(c.Request.Context(), c.Query("instructorId"))
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

func (h *Handler) Delete(c *gin.Context) {
	checkinIDStr := c.Query("checkinId")
	checkinID, err := strconv.Atoi(checkinIDStr)
	if err != nil {
		httputil.Error(c, apperrors.Validation("checkinId must be numeric"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), checkinID); err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Attendance record deleted", "checkinId": checkinIDStr})
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context(), c.Query("classId"), c.Query("instructorId"))
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
