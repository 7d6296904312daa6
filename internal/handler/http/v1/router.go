package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	emergencies := api.Group("/emergencies")
	{
		emergencies.POST("/dispatch", h.dispatch)
		emergencies.GET("/:request_id/response", h.getResponse)
	}

	hospitals := api.Group("/hospitals")
	{
		hospitals.POST("", h.registerHospital)
		hospitals.GET("", h.listHospitals)
		hospitals.GET("/nearest", h.nearestHospitals)
		hospitals.GET("/:id/ambulances/available", h.availableAmbulances)
	}

	api.POST("/ambulances", h.registerAmbulance)

	// Узел реестра: другие диспетчеры пишут и читают блоки через эти маршруты
	blocks := api.Group("/ledger/blocks")
	{
		blocks.POST("", h.anchorRecord)
		blocks.GET("/:anchor_id", h.getLedgerBlock)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
