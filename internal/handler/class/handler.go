package class

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yogahom/studio-api/internal/model"
	"github.com/yogahom/studio-api/internal/service/class"
	apperrors "github.com/yogahom/studio-api/pkg/errors"
	"github.com/yogahom/studio-api/pkg/httputil"
	"github.com/yogahom/studio-api/pkg/metrics"
)

type Handler struct {
	service *class.Service
	metrics *metrics.Metrics
}

func NewHandler(service *class.Service, m *metrics.Metrics) *Handler {
	return &Handler{service: service, metrics: m}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	classes := r.Group("/class")
	{
		classes.GET("/getClass", h.Get)
		classes.GET("/getAllClasses", h.List)
		classes.GET("/getNextId", h.NextID)
		classes.GET("/checkConflict", h.CheckConflict)
		classes.POST("/add", h.Add)
		classes.DELETE("/deleteClass", h.Delete)
	}
}

func (h *Handler) Get(c *gin.Context) {
	result, err := h.service.Get(c.Request.Context(), c.Query("classId"))
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) List(c *gin.Context) {
	classes, err := h.service.List(c.Request.Context())
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

func (h *Handler) NextID(c *gin.Context) {
	nextID, err := h.service.NextID(c.Request.Context())
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"nextId": nextID})
}

func (h *Handler) CheckConflict(c *gin.Context) {
	day := c.Query("day")
	timeStr := c.Query("time")
	if day == "" || timeStr == "" {
		httputil.Message(c, http.StatusBadRequest, "Day and time are required")
		return
	}

	duration, _ := strconv.Atoi(c.Query("duration"))
	slot := model.ScheduleSlot{Day: day, Time: timeStr, Duration: duration}

	result, err := h.service.CheckConflict(c.Request.Context(), slot)
	if err != nil {
		h.metrics.ConflictChecks.WithLabelValues("error").Inc()
		httputil.Error(c, err)
		return
	}

	if result.HasConflict {
		h.metrics.ConflictChecks.WithLabelValues("conflict").Inc()
	} else {
		h.metrics.ConflictChecks.WithLabelValues("clear").Inc()
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) Add(c *gin.Context) {
	var req model.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Message(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	result, conflict, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		var appErr *apperrors.AppError
		if conflict != nil && errors.As(err, &appErr) && appErr.Code == apperrors.ErrConflict {
			h.metrics.ConflictChecks.WithLabelValues("conflict").Inc()
			httputil.ErrorWithDetail(c, err, "conflict", conflict)
			return
		}
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Class added successfully. New class id is %s.", result.ClassID),
		"class":   result,
	})
}

func (h *Handler) Delete(c *gin.Context) {
	classID := c.Query("classId")
	if err := h.service.Delete(c.Request.Context(), classID); err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Class deleted", "classId": classID})
}
