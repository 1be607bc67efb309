package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/study-market/internal/domain"
	"github.com/fsdevblog/study-market/internal/repository/repoargs"
	"github.com/fsdevblog/study-market/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type CatalogServicer interface {
	List(ctx context.Context, orderByPrice bool) ([]domain.Guide, error)
	Search(ctx context.Context, term string) ([]domain.Guide, error)
	GetByID(ctx context.Context, id int64) (*domain.Guide, error)
	Share(ctx context.Context, userID int64, args service.ShareGuideArgs) (*domain.PendingGuide, error)
}

type ModerationServicer interface {
	Pending(ctx context.Context, requesterID int64) ([]domain.PendingGuide, error)
	Approve(ctx context.Context, requesterID, pendingID int64) (*domain.Guide, error)
	Reject(ctx context.Context, requesterID, pendingID int64) error
}

type CartServicer interface {
	Items(ctx context.Context, userID int64) ([]repoargs.CartItemDetail, error)
	AddItem(ctx context.Context, userID, guideID int64) (*domain.CartItem, error)
	RemoveItem(ctx context.Context, userID, itemID int64) error
}

type PurchaseServicer interface {
	Finalize(ctx context.Context, userID int64) (*service.Receipt, error)
	Inventory(ctx context.Context, userID int64) ([]repoargs.InventoryItemDetail, error)
}
