package service

import (
	"fmt"

	"github.com/fsdevblog/study-market/internal/service/cache"
	"github.com/fsdevblog/study-market/internal/service/psswd"
	"github.com/fsdevblog/study-market/pkg/uow"
)

type AppServices struct {
	UserService       *UserService
	CatalogService    *CatalogService
	ModerationService *ModerationService
	CartService       *CartService
	PurchaseService   *PurchaseService
}

func Factory(unitOfWork uow.UOW, jwtSecret []byte, c *cache.Cache) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, jwtSecret, psswd.PasswordHash(""))
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	catalogService, catalogServiceErr := NewCatalogService(unitOfWork, c)
	if catalogServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", catalogServiceErr.Error())
	}

	moderationService, moderationServiceErr := NewModerationService(unitOfWork, c)
	if moderationServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", moderationServiceErr.Error())
	}

	cartService, cartServiceErr := NewCartService(unitOfWork)
	if cartServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", cartServiceErr.Error())
	}

	purchaseService, purchaseServiceErr := NewPurchaseService(unitOfWork)
	if purchaseServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", purchaseServiceErr.Error())
	}

	return &AppServices{
		UserService:       userService,
		CatalogService:    catalogService,
		ModerationService: moderationService,
		CartService:       cartService,
		PurchaseService:   purchaseService,
	}, nil
}
