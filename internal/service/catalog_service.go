package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/study-market/internal/domain"
	"github.com/fsdevblog/study-market/internal/repository/repoargs"
	"github.com/fsdevblog/study-market/internal/service/cache"
	"github.com/fsdevblog/study-market/pkg/uow"
)

const (
	// MaxGuidePrice верхняя граница цены, проверяется только при подаче заявки.
	MaxGuidePrice = 1000

	guidesCacheKey = "guides:all"
	guidesCacheTTL = time.Minute
)

type CatalogService struct {
	guideRepo   GuideRepository
	pendingRepo PendingGuideRepository
	userRepo    UserRepository
	cache       *cache.Cache
}

func NewCatalogService(u uow.UOW, c *cache.Cache) (*CatalogService, error) {
	guideRepo, guideRepoErr := uow.GetRepositoryAs[GuideRepository](u, uow.RepositoryName(repoargs.GuideRepoName))
	if guideRepoErr != nil {
		return nil, guideRepoErr
	}
	pendingRepo, pendingRepoErr :=
		uow.GetRepositoryAs[PendingGuideRepository](u, uow.RepositoryName(repoargs.PendingGuideRepoName))
	if pendingRepoErr != nil {
		return nil, pendingRepoErr
	}
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &CatalogService{
		guideRepo:   guideRepo,
		pendingRepo: pendingRepo,
		userRepo:    userRepo,
		cache:       c,
	}, nil
}

// List возвращает все записи каталога. Невзведенный orderByPrice сохраняет порядок вставки.
// Выборка без сортировки кешируется на guidesCacheTTL, кеш сбрасывается при одобрении заявки.
func (s *CatalogService) List(ctx context.Context, orderByPrice bool) ([]domain.Guide, error) {
	if !orderByPrice {
		var cached []domain.Guide
		if ok, _ := s.cache.Get(ctx, guidesCacheKey, &cached); ok {
			return cached, nil
		}
	}

	guides, err := s.guideRepo.GetAll(ctx, repoargs.GuideListOptions{OrderByPrice: orderByPrice})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if !orderByPrice {
		// ошибки кеша не критичны для выдачи, игнорируем.
		_ = s.cache.Set(ctx, guidesCacheKey, guides, guidesCacheTTL)
	}
	return guides, nil
}

// Search ищет по подстроке без учета регистра в полях subject, topic и creator (логическое ИЛИ).
// Пустой запрос возвращает пустую выдачу, как в исходной форме поиска.
func (s *CatalogService) Search(ctx context.Context, term string) ([]domain.Guide, error) {
	if term == "" {
		return []domain.Guide{}, nil
	}
	guides, err := s.guideRepo.Search(ctx, term)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return guides, nil
}

// GetByID возвращает запись каталога или domain.ErrRecordNotFound.
func (s *CatalogService) GetByID(ctx context.Context, id int64) (*domain.Guide, error) {
	guide, err := s.guideRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return guide, nil
}

type ShareGuideArgs struct {
	Subject string
	Topic   string
	Price   int64
	Link    string
}

// Share создает заявку на публикацию от имени юзера userID. Поле creator заполняется
// юзернеймом подающего, цена проверяется на попадание в [0, MaxGuidePrice].
func (s *CatalogService) Share(ctx context.Context, userID int64, args ShareGuideArgs) (*domain.PendingGuide, error) {
	if args.Price < 0 || args.Price > MaxGuidePrice {
		return nil, fmt.Errorf("sharing guide: price %d is out of range [0, %d]", args.Price, MaxGuidePrice)
	}

	user, userErr := s.userRepo.FindUserByID(ctx, userID)
	if userErr != nil {
		return nil, fmt.Errorf("sharing guide: %w", userErr)
	}

	pending, createErr := s.pendingRepo.Create(ctx, repoargs.CreateGuide{
		Subject: args.Subject,
		Topic:   args.Topic,
		Price:   args.Price,
		Creator: user.Username,
		Link:    args.Link,
	})
	if createErr != nil {
		return nil, fmt.Errorf("sharing guide: %w", createErr)
	}
	return pending, nil
}
