package handlers

import (
	"errors"
	"net/http"

	response "tukangku/internal/adapter/http/dto/response"
	"tukangku/internal/usecase"
	"tukangku/pkg"

	"github.com/gin-gonic/gin"
)

// ServiceHandler serves the bookable service catalog.

type ServiceHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewServiceHandler(uc usecase.ICatalogUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

func (h *ServiceHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.ListApprovedServices(c.Request.Context())
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK("services fetched", response.FromServices(services)))
}

func (h *ServiceHandler) GetService(c *gin.Context) {
	svc, err := h.usecase.GetServiceByID(c.Request.Context(), c.Param("serviceId"))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK("service fetched", response.FromService(svc)))
}

func mapServiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal server error", http.StatusInternalServerError)
	}
}
