package usecase

import (
	"context"
	"strings"

	"tukangku/internal/domain/entities"
	"tukangku/internal/usecase/interfaces"
)

// ICatalogUseCase exposes the bookable service catalog.

type ICatalogUseCase interface {
	GetServiceByID(ctx context.Context, serviceID string) (entities.Service, error)
	ListApprovedServices(ctx context.Context) ([]entities.Service, error)
}

type CatalogUseCase struct {
	services interfaces.IServiceRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(services interfaces.IServiceRepository) *CatalogUseCase {
	return &CatalogUseCase{services: services}
}

func (u *CatalogUseCase) GetServiceByID(ctx context.Context, serviceID string) (entities.Service, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	svc, err := u.services.GetByID(ctx, serviceID)
	if err != nil {
		return entities.Service{}, err
	}
	if svc.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return svc, nil
}

func (u *CatalogUseCase) ListApprovedServices(ctx context.Context) ([]entities.Service, error) {
	return u.services.ListApproved(ctx)
}
