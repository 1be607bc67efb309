package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/fsdevblog/study-market/internal/domain"
	"github.com/fsdevblog/study-market/internal/logger"
	"github.com/fsdevblog/study-market/internal/repository/repoargs"
	"github.com/fsdevblog/study-market/internal/service"
	"github.com/fsdevblog/study-market/internal/transport/api/mocks"
	"github.com/fsdevblog/study-market/internal/transport/api/testutils"
	"github.com/fsdevblog/study-market/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCartService     *mocks.MockCartServicer
	mockPurchaseService *mocks.MockPurchaseServicer
	jwtSecret           []byte
	userID              int64
	userJWT             string
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockCartService = mocks.NewMockCartServicer(mockCtrl)
	s.mockPurchaseService = mocks.NewMockPurchaseServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:          logger.New(os.Stdout),
		CartService:     s.mockCartService,
		PurchaseService: s.mockPurchaseService,
		JWTSecretKey:    s.jwtSecret,
	})

	s.userID = 1
	userJWT, tokenErr := tokens.GenerateUserJWT(s.userID, time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)
	s.userJWT = userJWT
}

func (s *CartHandlerTestSuite) authorized() func(*testutils.RequestOptions) {
	return testutils.WithHeader("Authorization", "Bearer "+s.userJWT)
}

func (s *CartHandlerTestSuite) TestIndex() {
	items := []repoargs.CartItemDetail{
		{ID: 100, CartID: 10, GuideID: 7, Quantity: 2, Subject: "math", Topic: "limits", Price: 30, Creator: "alice"},
	}
	s.mockCartService.EXPECT().Items(gomock.Any(), s.userID).Return(items, nil)

	res := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + CartRoute,
	}, s.authorized())
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusOK, res.StatusCode)

	var body []CartItemResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Require().Len(body, 1)
	s.Equal(items[0].GuideID, body[0].GuideID)
	s.Equal(items[0].Quantity, body[0].Quantity)
}

func (s *CartHandlerTestSuite) TestIndexUnauthorized() {
	s.mockCartService.EXPECT().Items(gomock.Any(), gomock.Any()).Times(0)

	res := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + CartRoute,
	})
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusUnauthorized, res.StatusCode)
}

func (s *CartHandlerTestSuite) TestAdd() {
	knownGuideID := int64(7)
	unknownGuideID := int64(404)

	item := domain.CartItem{ID: 100, CartID: 10, GuideID: knownGuideID, Quantity: 2}

	s.mockCartService.EXPECT().AddItem(gomock.Any(), s.userID, knownGuideID).Return(&item, nil)
	s.mockCartService.EXPECT().AddItem(gomock.Any(), s.userID, unknownGuideID).
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		payload    string
		wantStatus int
	}{
		{name: "all ok", payload: fmt.Sprintf(`{"guide_id":%d}`, knownGuideID), wantStatus: http.StatusOK},
		{name: "unknown guide", payload: fmt.Sprintf(`{"guide_id":%d}`, unknownGuideID), wantStatus: http.StatusNotFound},
		{name: "missing guide_id", payload: `{}`, wantStatus: http.StatusBadRequest},
		{name: "malformed json", payload: `{`, wantStatus: http.StatusBadRequest},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + CartRoute,
				Body:   bytes.NewReader([]byte(t.payload)),
			}, s.authorized(), testutils.WithHeader("Content-Type", "application/json"))
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *CartHandlerTestSuite) TestRemove() {
	ownItemID := int64(100)
	foreignItemID := int64(200)
	missingItemID := int64(404)

	s.mockCartService.EXPECT().RemoveItem(gomock.Any(), s.userID, ownItemID).Return(nil)
	s.mockCartService.EXPECT().RemoveItem(gomock.Any(), s.userID, foreignItemID).
		Return(domain.ErrOwnerConflict)
	s.mockCartService.EXPECT().RemoveItem(gomock.Any(), s.userID, missingItemID).
		Return(domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		itemID     string
		wantStatus int
	}{
		{name: "all ok", itemID: "100", wantStatus: http.StatusOK},
		{name: "foreign item", itemID: "200", wantStatus: http.StatusForbidden},
		{name: "not found", itemID: "404", wantStatus: http.StatusNotFound},
		{name: "bad id", itemID: "abc", wantStatus: http.StatusUnprocessableEntity},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodDelete,
				URL:    RouteGroup + CartRoute + "/" + t.itemID,
			}, s.authorized())
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *CartHandlerTestSuite) TestCheckout() {
	receipt := service.Receipt{
		Items: []service.ReceiptItem{
			{GuideID: 7, Subject: "math", Topic: "limits", Price: 30, Quantity: 2},
		},
		Total:   60,
		Balance: 40,
	}

	okToken, okErr := tokens.GenerateUserJWT(1, time.Hour, s.jwtSecret)
	s.Require().NoError(okErr)
	emptyCartToken, emptyErr := tokens.GenerateUserJWT(2, time.Hour, s.jwtSecret)
	s.Require().NoError(emptyErr)
	poorToken, poorErr := tokens.GenerateUserJWT(3, time.Hour, s.jwtSecret)
	s.Require().NoError(poorErr)

	s.mockPurchaseService.EXPECT().Finalize(gomock.Any(), int64(1)).Return(&receipt, nil)
	s.mockPurchaseService.EXPECT().Finalize(gomock.Any(), int64(2)).
		Return(nil, domain.ErrEmptyCart)
	s.mockPurchaseService.EXPECT().Finalize(gomock.Any(), int64(3)).
		Return(nil, domain.ErrNotEnoughBalance)

	cases := []struct {
		name       string
		jwtToken   string
		wantStatus int
	}{
		{name: "all ok", jwtToken: okToken, wantStatus: http.StatusOK},
		{name: "empty cart", jwtToken: emptyCartToken, wantStatus: http.StatusUnprocessableEntity},
		{name: "not enough balance", jwtToken: poorToken, wantStatus: http.StatusPaymentRequired},
		{name: "not authorized", jwtToken: "", wantStatus: http.StatusUnauthorized},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			var reqOpts []func(*testutils.RequestOptions)
			if t.jwtToken != "" {
				reqOpts = append(reqOpts, testutils.WithHeader("Authorization", "Bearer "+t.jwtToken))
			}
			res := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + CheckoutRoute,
			}, reqOpts...)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				var body ReceiptResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
				s.EqualValues(60, body.Total)
				s.EqualValues(40, body.Balance)
				s.Require().Len(body.Items, 1)
				s.EqualValues(2, body.Items[0].Quantity)
			}
		})
	}
}

func (s *CartHandlerTestSuite) TestInventory() {
	items := []repoargs.InventoryItemDetail{
		{ID: 1, GuideID: 7, Subject: "math", Topic: "limits", Creator: "alice", Link: "https://example.com/limits"},
		{ID: 2, GuideID: 7, Subject: "math", Topic: "limits", Creator: "alice", Link: "https://example.com/limits"},
	}
	s.mockPurchaseService.EXPECT().Inventory(gomock.Any(), s.userID).Return(items, nil)

	res := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + InventoryRoute,
	}, s.authorized())
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusOK, res.StatusCode)

	var body []InventoryItemResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	// По строке на каждую купленную единицу.
	s.Len(body, 2)
}
