package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/study-market/internal/domain"
	"github.com/fsdevblog/study-market/internal/repository/repoargs"
	"github.com/fsdevblog/study-market/pkg/uow"
)

// PurchaseService движок покупок: превращает корзину в инвентарь и переводы между кошельками.
type PurchaseService struct {
	uow           uow.UOW
	inventoryRepo InventoryRepository
}

func NewPurchaseService(u uow.UOW) (*PurchaseService, error) {
	inventoryRepo, inventoryRepoErr :=
		uow.GetRepositoryAs[InventoryRepository](u, uow.RepositoryName(repoargs.InventoryRepoName))
	if inventoryRepoErr != nil {
		return nil, inventoryRepoErr
	}
	return &PurchaseService{
		uow:           u,
		inventoryRepo: inventoryRepo,
	}, nil
}

// Inventory возвращает инвентарь юзера, по строке на каждую купленную единицу.
func (s *PurchaseService) Inventory(ctx context.Context, userID int64) ([]repoargs.InventoryItemDetail, error) {
	items, err := s.inventoryRepo.GetByUserIDDetailed(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return items, nil
}

type ReceiptItem struct {
	GuideID  int64
	Subject  string
	Topic    string
	Price    int64
	Quantity int64
}

// Receipt итог успешной покупки: купленные позиции, списанная сумма и новый баланс покупателя.
type Receipt struct {
	Items   []ReceiptItem
	Total   int64
	Balance int64
}

// Finalize выполняет покупку всего содержимого корзины юзера одной сериализуемой транзакцией:
//
//  1. Загружает корзину с позициями; отсутствие корзины или позиций - domain.ErrEmptyCart.
//  2. Считает total = Σ price × quantity.
//  3. Читает покупателя с блокировкой строки; wallet < total - domain.ErrNotEnoughBalance,
//     состояние не меняется.
//  4. Для каждой позиции начисляет price × quantity создателю (поиск по юзернейму; исчезнувший
//     создатель молча пропускается - поведение исходной системы, решение зафиксировано
//     в DESIGN.md) и вставляет quantity строк инвентаря покупателю.
//  5. Списывает total с покупателя, удаляет позиции и саму корзину.
//
// Самопокупка не выделяется в отдельный случай: если покупатель и есть создатель, начисление
// и списание лягут на одну строку.
func (s *PurchaseService) Finalize(ctx context.Context, userID int64) (*Receipt, error) {
	var receipt *Receipt
	txErr := s.uow.DoSerializable(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		cartRepo, cartRepoErr := uow.GetAs[CartRepository](tx, uow.RepositoryName(repoargs.CartRepoName))
		if cartRepoErr != nil {
			return cartRepoErr //nolint:wrapcheck
		}
		inventoryRepo, inventoryRepoErr :=
			uow.GetAs[InventoryRepository](tx, uow.RepositoryName(repoargs.InventoryRepoName))
		if inventoryRepoErr != nil {
			return inventoryRepoErr //nolint:wrapcheck
		}

		cart, cartErr := cartRepo.FindByUserID(c, userID)
		if cartErr != nil {
			if errors.Is(cartErr, domain.ErrRecordNotFound) {
				return domain.ErrEmptyCart
			}
			return cartErr //nolint:wrapcheck
		}

		items, itemsErr := cartRepo.GetItemsDetailed(c, cart.ID)
		if itemsErr != nil {
			return itemsErr //nolint:wrapcheck
		}
		if len(items) == 0 {
			return domain.ErrEmptyCart
		}

		var total int64
		for _, item := range items {
			total += item.Price * item.Quantity
		}

		buyer, buyerErr := userRepo.LockUserByID(c, userID)
		if buyerErr != nil {
			return buyerErr //nolint:wrapcheck
		}
		if buyer.Wallet < total {
			return domain.ErrNotEnoughBalance
		}

		if err := s.payOutAndFill(c, userRepo, inventoryRepo, userID, items); err != nil {
			return err
		}

		debited, debitErr := userRepo.AddToWallet(c, userID, -total)
		if debitErr != nil {
			return debitErr //nolint:wrapcheck
		}

		if err := cartRepo.DeleteItemsByCartID(c, cart.ID); err != nil {
			return err //nolint:wrapcheck
		}
		if err := cartRepo.DeleteCart(c, cart.ID); err != nil {
			return err //nolint:wrapcheck
		}

		receipt = buildReceipt(items, total, debited.Wallet)
		return nil
	})

	if txErr != nil {
		return nil, fmt.Errorf("finalizing purchase: %w", txErr)
	}
	return receipt, nil
}

// payOutAndFill начисляет выручку создателям и наполняет инвентарь покупателя.
func (s *PurchaseService) payOutAndFill(
	ctx context.Context,
	userRepo UserRepository,
	inventoryRepo InventoryRepository,
	buyerID int64,
	items []repoargs.CartItemDetail,
) error {
	var inventoryItems []repoargs.CreateInventoryItem

	for _, item := range items {
		_, creditErr := userRepo.AddToWalletByUsername(ctx, item.Creator, item.Price*item.Quantity)
		if creditErr != nil && !errors.Is(creditErr, domain.ErrRecordNotFound) {
			return creditErr //nolint:wrapcheck
		}

		for i := int64(0); i < item.Quantity; i++ {
			inventoryItems = append(inventoryItems, repoargs.CreateInventoryItem{
				UserID:  buyerID,
				GuideID: item.GuideID,
			})
		}
	}

	var batchErr error
	inventoryRepo.CreateBatch(ctx, inventoryItems, func(_ int, err error) {
		if err != nil {
			batchErr = err
		}
	})
	return batchErr
}

func buildReceipt(items []repoargs.CartItemDetail, total, balance int64) *Receipt {
	receiptItems := make([]ReceiptItem, len(items))
	for i, item := range items {
		receiptItems[i] = ReceiptItem{
			GuideID:  item.GuideID,
			Subject:  item.Subject,
			Topic:    item.Topic,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}
	return &Receipt{
		Items:   receiptItems,
		Total:   total,
		Balance: balance,
	}
}
