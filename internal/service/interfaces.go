package service

import (
	"context"

	"github.com/fsdevblog/study-market/internal/domain"
	"github.com/fsdevblog/study-market/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)
	LockUserByID(ctx context.Context, id int64) (*domain.User, error)
	AddToWallet(ctx context.Context, id int64, delta int64) (*domain.User, error)
	AddToWalletByUsername(ctx context.Context, username string, delta int64) (*domain.User, error)
}

type GuideRepository interface {
	CreateGuide(ctx context.Context, args repoargs.CreateGuide) (*domain.Guide, error)
	GetAll(ctx context.Context, opts repoargs.GuideListOptions) ([]domain.Guide, error)
	Search(ctx context.Context, term string) ([]domain.Guide, error)
	FindByID(ctx context.Context, id int64) (*domain.Guide, error)
}

type PendingGuideRepository interface {
	Create(ctx context.Context, args repoargs.CreateGuide) (*domain.PendingGuide, error)
	GetAll(ctx context.Context) ([]domain.PendingGuide, error)
	FindByID(ctx context.Context, id int64) (*domain.PendingGuide, error)
	Delete(ctx context.Context, id int64) error
}

type CartRepository interface {
	GetOrCreate(ctx context.Context, userID int64) (*domain.Cart, error)
	FindByUserID(ctx context.Context, userID int64) (*domain.Cart, error)
	UpsertItem(ctx context.Context, cartID, guideID int64) (*domain.CartItem, error)
	GetItemsDetailed(ctx context.Context, cartID int64) ([]repoargs.CartItemDetail, error)
	FindItemOwned(ctx context.Context, itemID int64) (*repoargs.CartItemOwned, error)
	DeleteItem(ctx context.Context, itemID int64) error
	DeleteItemsByCartID(ctx context.Context, cartID int64) error
	DeleteCart(ctx context.Context, cartID int64) error
}

type InventoryRepository interface {
	CreateBatch(ctx context.Context, items []repoargs.CreateInventoryItem, fn repoargs.BatchExecQueryRow)
	GetByUserIDDetailed(ctx context.Context, userID int64) ([]repoargs.InventoryItemDetail, error)
}
