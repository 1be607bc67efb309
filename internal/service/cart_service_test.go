package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/study-market/internal/domain"
	"github.com/fsdevblog/study-market/internal/repository/repoargs"
	"github.com/fsdevblog/study-market/internal/service/mocks"
	"github.com/fsdevblog/study-market/pkg/uow"
	uowmocks "github.com/fsdevblog/study-market/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type CartServiceTestSuite struct {
	suite.Suite
	mockUOW       *uowmocks.MockUOW
	mockTX        *uowmocks.MockTX
	mockCartRepo  *mocks.MockCartRepository
	mockGuideRepo *mocks.MockGuideRepository
	cartService   *CartService
}

func TestCartServiceSuite(t *testing.T) {
	suite.Run(t, new(CartServiceTestSuite))
}

func (s *CartServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockCartRepo = mocks.NewMockCartRepository(mockCtrl)
	s.mockGuideRepo = mocks.NewMockGuideRepository(mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.CartRepoName)).
		Return(s.mockCartRepo, nil).AnyTimes()

	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.CartRepoName)).
		Return(s.mockCartRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.GuideRepoName)).
		Return(s.mockGuideRepo, nil).AnyTimes()

	// Мок uow: транзакции выполняются на mockTX.
	runTX := func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
		return fn(ctx, s.mockTX)
	}
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(runTX).AnyTimes()
	s.mockUOW.EXPECT().DoSerializable(gomock.Any(), gomock.Any()).DoAndReturn(runTX).AnyTimes()

	cartService, servErr := NewCartService(s.mockUOW)
	s.Require().NoError(servErr)
	s.cartService = cartService
}

func (s *CartServiceTestSuite) TestItems() {
	userWithCartID := int64(1)
	userWithoutCartID := int64(2)

	cart := domain.Cart{ID: 10, UserID: userWithCartID}
	items := []repoargs.CartItemDetail{
		{ID: 100, CartID: cart.ID, GuideID: 7, Quantity: 2, Subject: "math", Topic: "limits", Price: 30, Creator: "alice"},
	}

	s.mockCartRepo.EXPECT().FindByUserID(gomock.Any(), userWithCartID).Return(&cart, nil)
	s.mockCartRepo.EXPECT().GetItemsDetailed(gomock.Any(), cart.ID).Return(items, nil)

	s.mockCartRepo.EXPECT().FindByUserID(gomock.Any(), userWithoutCartID).
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name      string
		userID    int64
		wantItems []repoargs.CartItemDetail
	}{
		{name: "with cart", userID: userWithCartID, wantItems: items},
		{name: "no cart means empty cart", userID: userWithoutCartID, wantItems: []repoargs.CartItemDetail{}},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			got, err := s.cartService.Items(context.Background(), t.userID)
			s.Require().NoError(err)
			s.Equal(t.wantItems, got)
		})
	}
}

func (s *CartServiceTestSuite) TestAddItem() {
	userID := int64(1)
	guideID := int64(7)

	guide := domain.Guide{ID: guideID, Subject: "math", Topic: "limits", Price: 30, Creator: "alice"}
	cart := domain.Cart{ID: 10, UserID: userID}
	item := domain.CartItem{ID: 100, CartID: cart.ID, GuideID: guideID, Quantity: 1}

	s.mockGuideRepo.EXPECT().FindByID(gomock.Any(), guideID).Return(&guide, nil)
	s.mockCartRepo.EXPECT().GetOrCreate(gomock.Any(), userID).Return(&cart, nil)
	s.mockCartRepo.EXPECT().UpsertItem(gomock.Any(), cart.ID, guideID).Return(&item, nil)

	got, err := s.cartService.AddItem(context.Background(), userID, guideID)
	s.Require().NoError(err)
	s.Equal(&item, got)
}

// TestAddItemDuplicate повторное добавление той же записи не плодит вторую позицию,
// а увеличивает количество существующей.
func (s *CartServiceTestSuite) TestAddItemDuplicate() {
	userID := int64(1)
	guideID := int64(7)

	guide := domain.Guide{ID: guideID, Subject: "math", Topic: "limits", Price: 30, Creator: "alice"}
	cart := domain.Cart{ID: 10, UserID: userID}
	first := domain.CartItem{ID: 100, CartID: cart.ID, GuideID: guideID, Quantity: 1}
	second := domain.CartItem{ID: 100, CartID: cart.ID, GuideID: guideID, Quantity: 2}

	s.mockGuideRepo.EXPECT().FindByID(gomock.Any(), guideID).Return(&guide, nil).Times(2)
	s.mockCartRepo.EXPECT().GetOrCreate(gomock.Any(), userID).Return(&cart, nil).Times(2)

	gomock.InOrder(
		s.mockCartRepo.EXPECT().UpsertItem(gomock.Any(), cart.ID, guideID).Return(&first, nil),
		s.mockCartRepo.EXPECT().UpsertItem(gomock.Any(), cart.ID, guideID).Return(&second, nil),
	)

	got1, err1 := s.cartService.AddItem(context.Background(), userID, guideID)
	s.Require().NoError(err1)
	s.EqualValues(1, got1.Quantity)

	got2, err2 := s.cartService.AddItem(context.Background(), userID, guideID)
	s.Require().NoError(err2)
	s.Equal(got1.ID, got2.ID)
	s.EqualValues(2, got2.Quantity)
}

func (s *CartServiceTestSuite) TestAddItemUnknownGuide() {
	userID := int64(1)
	unknownGuideID := int64(404)

	s.mockGuideRepo.EXPECT().FindByID(gomock.Any(), unknownGuideID).
		Return(nil, domain.ErrRecordNotFound)
	s.mockCartRepo.EXPECT().GetOrCreate(gomock.Any(), gomock.Any()).Times(0)
	s.mockCartRepo.EXPECT().UpsertItem(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	got, err := s.cartService.AddItem(context.Background(), userID, unknownGuideID)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
	s.Nil(got)
}

func (s *CartServiceTestSuite) TestRemoveItem() {
	ownerID := int64(1)
	strangerID := int64(2)
	itemID := int64(100)

	owned := repoargs.CartItemOwned{ID: itemID, CartID: 10, OwnerID: ownerID}

	s.mockCartRepo.EXPECT().FindItemOwned(gomock.Any(), itemID).Return(&owned, nil).Times(2)
	s.mockCartRepo.EXPECT().FindItemOwned(gomock.Any(), int64(404)).
		Return(nil, domain.ErrRecordNotFound)

	// Удаление происходит только в кейсе владельца.
	s.mockCartRepo.EXPECT().DeleteItem(gomock.Any(), itemID).Return(nil)

	cases := []struct {
		name    string
		userID  int64
		itemID  int64
		wantErr error
	}{
		{name: "ok", userID: ownerID, itemID: itemID},
		{name: "foreign item", userID: strangerID, itemID: itemID, wantErr: domain.ErrOwnerConflict},
		{name: "not found", userID: ownerID, itemID: 404, wantErr: domain.ErrRecordNotFound},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			err := s.cartService.RemoveItem(context.Background(), t.userID, t.itemID)
			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
			} else {
				s.Require().NoError(err)
			}
		})
	}
}
