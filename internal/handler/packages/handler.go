package packages

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yogahom/studio-api/internal/model"
	"github.com/yogahom/studio-api/internal/service/packages"
	apperrors "github.com/yogahom/studio-api/pkg/errors"
	"github.com/yogahom/studio-api/pkg/httputil"
)

type Handler struct {
	service *packages.Service
}

func NewHandler(service *packages.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	pkgs := r.Group("/package")
	{
		pkgs.GET("/search", h.Search)
		pkgs.GET("/getPackage", h.Get)
		pkgs.GET("/getPackageIds", h.ListIDs)
		pkgs.GET("/getNextId", h.NextID)
		pkgs.POST("/add", h.Add)
		pkgs.DELETE("/deletePackage", h.Delete)
	}
}

func (h *Handler) Search(c *gin.Context) {
	name := c.Query("packageName")
	if name == "" {
		httputil.Error(c, apperrors.Validation("packageName is required"))
		return
	}

	results, err := h.service.Search(c.Request.Context(), name)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *Handler) Get(c *gin.Context) {
	result, err := h.service.Get(c.Request.Context(), c.Query("packageId"))
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
	var req model.CreatePackageRequest
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
		"message": fmt.Sprintf("Package %s added successfully.", result.PackageID),
		"package": result,
	})
}

func (h *Handler) Delete(c *gin.Context) {
	packageID := c.Query("packageId")
	if err := h.service.Delete(c.Request.Context(), packageID); err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Package deleted", "packageId": packageID})
}
