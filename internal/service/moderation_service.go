package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/study-market/internal/domain"
	"github.com/fsdevblog/study-market/internal/repository/repoargs"
	"github.com/fsdevblog/study-market/internal/service/cache"
	"github.com/fsdevblog/study-market/pkg/uow"
)

// ModerationService воркфлоу модерации заявок: Pending -> {Approved, Rejected}, оба состояния
// терминальные. Проверка admin-права выполняется один раз на входе каждой операции,
// по свежему чтению юзера из БД.
type ModerationService struct {
	uow         uow.UOW
	pendingRepo PendingGuideRepository
	userRepo    UserRepository
	cache       *cache.Cache
}

func NewModerationService(u uow.UOW, c *cache.Cache) (*ModerationService, error) {
	pendingRepo, pendingRepoErr :=
		uow.GetRepositoryAs[PendingGuideRepository](u, uow.RepositoryName(repoargs.PendingGuideRepoName))
	if pendingRepoErr != nil {
		return nil, pendingRepoErr
	}
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &ModerationService{
		uow:         u,
		pendingRepo: pendingRepo,
		userRepo:    userRepo,
		cache:       c,
	}, nil
}

// Pending возвращает очередь заявок на модерацию. Доступно только админу.
func (s *ModerationService) Pending(ctx context.Context, requesterID int64) ([]domain.PendingGuide, error) {
	if err := s.requireAdmin(ctx, requesterID); err != nil {
		return nil, err
	}
	pendings, err := s.pendingRepo.GetAll(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return pendings, nil
}

// Approve переносит заявку в каталог: копирует все поля в новую запись каталога и удаляет заявку,
// единой транзакцией. Отсутствующая заявка - domain.ErrRecordNotFound, ничего не меняется.
func (s *ModerationService) Approve(ctx context.Context, requesterID, pendingID int64) (*domain.Guide, error) {
	if err := s.requireAdmin(ctx, requesterID); err != nil {
		return nil, err
	}

	var guide *domain.Guide
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		pendingRepo, pendingRepoErr :=
			uow.GetAs[PendingGuideRepository](tx, uow.RepositoryName(repoargs.PendingGuideRepoName))
		if pendingRepoErr != nil {
			return pendingRepoErr //nolint:wrapcheck
		}
		guideRepo, guideRepoErr := uow.GetAs[GuideRepository](tx, uow.RepositoryName(repoargs.GuideRepoName))
		if guideRepoErr != nil {
			return guideRepoErr //nolint:wrapcheck
		}

		pending, pendingErr := pendingRepo.FindByID(c, pendingID)
		if pendingErr != nil {
			return pendingErr //nolint:wrapcheck
		}

		var createErr error
		guide, createErr = guideRepo.CreateGuide(c, repoargs.CreateGuide{
			Subject: pending.Subject,
			Topic:   pending.Topic,
			Price:   pending.Price,
			Creator: pending.Creator,
			Link:    pending.Link,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		return pendingRepo.Delete(c, pendingID) //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("approving pending guide %d: %w", pendingID, txErr)
	}

	// каталог изменился, сбрасываем кеш выдачи. Ошибки кеша не критичны.
	_ = s.cache.Delete(ctx, "guides:all")

	return guide, nil
}

// Reject удаляет заявку без переноса в каталог. Отсутствующая заявка - domain.ErrRecordNotFound.
func (s *ModerationService) Reject(ctx context.Context, requesterID, pendingID int64) error {
	if err := s.requireAdmin(ctx, requesterID); err != nil {
		return err
	}
	if err := s.pendingRepo.Delete(ctx, pendingID); err != nil {
		return fmt.Errorf("rejecting pending guide %d: %w", pendingID, err)
	}
	return nil
}

func (s *ModerationService) requireAdmin(ctx context.Context, requesterID int64) error {
	requester, err := s.userRepo.FindUserByID(ctx, requesterID)
	if err != nil {
		return fmt.Errorf("checking admin capability: %w", err)
	}
	if !requester.Admin {
		return fmt.Errorf("checking admin capability: %w", domain.ErrNotAdmin)
	}
	return nil
}
