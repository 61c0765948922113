package instructor

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yogahom/studio-api/internal/model"
	"github.com/yogahom/studio-api/internal/service/instructor"
	apperrors "github.com/yogahom/studio-api/pkg/errors"
	"github.com/yogahom/studio-api/pkg/httputil"
)

type Handler struct {
	service *instructor.Service
}

func NewHandler(service *instructor.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	instructors := r.Group("/instructor")
	{
		instructors.GET("/search", h.Search)
		instructors.GET("/getInstructor", h.Get)
		instructors.GET("/getInstructorIds", h.ListIDs)
		instructors.GET("/getNextId", h.NextID)
		instructors.POST("/add", h.Add)
		instructors.DELETE("/deleteInstructor", h.Delete)
	}
}

func (h *Handler) Search(c *gin.Context) {
	firstName := c.Query("firstName")
	lastName := c.Query("lastName")
	if firstName == "" && lastName == "" {
		httputil.Error(c, apperrors.Validation("firstName or lastName is required"))
		return
	}

	result, err := h.service.Search(c.Request.Context(), firstName, lastName)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) Get(c *gin.Context) {
	result, err := h.service.Get(c.Request.Context(), c.Query("instructorId"))
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) ListIDs(c *gin.Context) {
	refs, err := h.service.ListRefs(c.Request.Context())
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, refs)
}

func (h *Handler) NextID(c *gin.Context) {
	nextID, err := h.service.NextID(c.Request.Context())
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"nextId": nextID})
}

func (h *Handler) Add(c *gin.Context) {
	var req model.CreateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Message(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	result, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    fmt.Sprintf("Instructor added successfully. Welcome to Yoga'Hom! Your instructor id is %s.", result.InstructorID),
		"instructor": result,
	})
}

func (h *Handler) Delete(c *gin.Context) {
	instructorID := c.Query("instructorId")
	if err := h.service.Delete(c.Request.Context(), instructorID); err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Instructor deleted", "instructorId": instructorID})
}
