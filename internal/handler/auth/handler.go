package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yogahom/studio-api/internal/model"
	"github.com/yogahom/studio-api/internal/service/auth"
	"github.com/yogahom/studio-api/pkg/httputil"
)

type Handler struct {
	service *auth.Service
}

func NewHandler(service *auth.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/create-default-user", h.CreateDefaultUser)
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Message(c, http.StatusBadRequest, "Username and password required")
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) CreateDefaultUser(c *gin.Context) {
	created, err := h.service.EnsureDefaultUser(c.Request.Context())
	if err != nil {
		httputil.Error(c, err)
		return
	}

	if !created {
		httputil.Message(c, http.StatusOK, "Default user already exists")
		return
	}
	httputil.Message(c, http.StatusOK, "Default user created: username='manager', password='password123'")
}
