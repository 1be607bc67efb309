package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/study-market/internal/domain"
	"github.com/fsdevblog/study-market/internal/repository/repoargs"
	"github.com/fsdevblog/study-market/pkg/uow"
)

type CartService struct {
	uow      uow.UOW
	cartRepo CartRepository
}

func NewCartService(u uow.UOW) (*CartService, error) {
	cartRepo, cartRepoErr := uow.GetRepositoryAs[CartRepository](u, uow.RepositoryName(repoargs.CartRepoName))
	if cartRepoErr != nil {
		return nil, cartRepoErr
	}
	return &CartService{
		uow:      u,
		cartRepo: cartRepo,
	}, nil
}

// Items возвращает содержимое корзины юзера. Отсутствие корзины равносильно пустой корзине.
func (s *CartService) Items(ctx context.Context, userID int64) ([]repoargs.CartItemDetail, error) {
	cart, cartErr := s.cartRepo.FindByUserID(ctx, userID)
	if cartErr != nil {
		if errors.Is(cartErr, domain.ErrRecordNotFound) {
			return []repoargs.CartItemDetail{}, nil
		}
		return nil, fmt.Errorf("getting cart items: %w", cartErr)
	}

	items, itemsErr := s.cartRepo.GetItemsDetailed(ctx, cart.ID)
	if itemsErr != nil {
		return nil, fmt.Errorf("getting cart items: %w", itemsErr)
	}
	return items, nil
}

// AddItem кладет запись каталога в корзину юзера. Корзина создается лениво, атомарным
// get-or-create; повторное добавление той же записи увеличивает количество на 1.
// Несуществующая запись каталога - domain.ErrRecordNotFound.
func (s *CartService) AddItem(ctx context.Context, userID, guideID int64) (*domain.CartItem, error) {
	var item *domain.CartItem
	txErr := s.uow.DoSerializable(ctx, func(c context.Context, tx uow.TX) error {
		guideRepo, guideRepoErr := uow.GetAs[GuideRepository](tx, uow.RepositoryName(repoargs.GuideRepoName))
		if guideRepoErr != nil {
			return guideRepoErr //nolint:wrapcheck
		}
		cartRepo, cartRepoErr := uow.GetAs[CartRepository](tx, uow.RepositoryName(repoargs.CartRepoName))
		if cartRepoErr != nil {
			return cartRepoErr //nolint:wrapcheck
		}

		if _, guideErr := guideRepo.FindByID(c, guideID); guideErr != nil {
			return guideErr //nolint:wrapcheck
		}

		cart, cartErr := cartRepo.GetOrCreate(c, userID)
		if cartErr != nil {
			return cartErr //nolint:wrapcheck
		}

		var itemErr error
		item, itemErr = cartRepo.UpsertItem(c, cart.ID, guideID)
		return itemErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("adding guide %d to cart: %w", guideID, txErr)
	}
	return item, nil
}

// RemoveItem удаляет позицию корзины. Если позиция принадлежит корзине другого юзера,
// возвращает domain.ErrOwnerConflict и ничего не меняет.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID int64) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		cartRepo, cartRepoErr := uow.GetAs[CartRepository](tx, uow.RepositoryName(repoargs.CartRepoName))
		if cartRepoErr != nil {
			return cartRepoErr //nolint:wrapcheck
		}

		item, itemErr := cartRepo.FindItemOwned(c, itemID)
		if itemErr != nil {
			return itemErr //nolint:wrapcheck
		}
		if item.OwnerID != userID {
			return domain.ErrOwnerConflict
		}

		return cartRepo.DeleteItem(c, itemID) //nolint:wrapcheck
	})

	if txErr != nil {
		return fmt.Errorf("removing cart item %d: %w", itemID, txErr)
	}
	return nil
}
