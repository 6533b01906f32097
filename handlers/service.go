package handlers

import (
	"errors"
	"net/http"

	"salao/services/catalog"
	"salao/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceHandler exposes salon service catalog endpoints.
type ServiceHandler struct {
	CatalogService catalog.CatalogService
}

// NewServiceHandler builds a ServiceHandler.
func NewServiceHandler(svc catalog.CatalogService) *ServiceHandler {
	return &ServiceHandler{CatalogService: svc}
}

// CreateServiceHandler handles POST /api/services.
func (h *ServiceHandler) CreateServiceHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var in catalog.ServiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := h.CatalogService.CreateService(in)
	if err != nil {
		if errors.Is(err, catalog.ErrNameTaken) || errors.Is(err, catalog.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Service creation failed", zap.String("name", in.Name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// GetServicesHandler handles GET /api/services.
func (h *ServiceHandler) GetServicesHandler(c *gin.Context) {
	services, err := h.CatalogService.ListServices()
	if err != nil {
		utils.GetLogger().Error("Failed to list services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetServiceByIDHandler handles GET /api/services/:id.
func (h *ServiceHandler) GetServiceByIDHandler(c *gin.Context) {
	id := c.Param("id")
	svc, err := h.CatalogService.GetService(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// UpdateServiceHandler handles PUT /api/services/:id.
func (h *ServiceHandler) UpdateServiceHandler(c *gin.Context) {
	id := c.Param("id")

	var in catalog.ServiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := h.CatalogService.UpdateService(id, in)
	if err != nil {
		if errors.Is(err, catalog.ErrNameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Service update failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteServiceHandler handles DELETE /api/services/:id.
func (h *ServiceHandler) DeleteServiceHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.CatalogService.DeleteService(id); err != nil {
		utils.GetLogger().Error("Service delete failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}
