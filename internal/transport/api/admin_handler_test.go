package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/fsdevblog/study-market/internal/domain"
	"github.com/fsdevblog/study-market/internal/logger"
	"github.com/fsdevblog/study-market/internal/transport/api/mocks"
	"github.com/fsdevblog/study-market/internal/transport/api/testutils"
	"github.com/fsdevblog/study-market/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router                *gin.Engine
	mockModerationService *mocks.MockModerationServicer
	jwtSecret             []byte

	adminID     int64
	nonAdminID  int64
	adminJWT    string
	nonAdminJWT string
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockModerationService = mocks.NewMockModerationServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:            logger.New(os.Stdout),
		ModerationService: s.mockModerationService,
		JWTSecretKey:      s.jwtSecret,
	})

	s.adminID = 1
	s.nonAdminID = 2

	adminJWT, adminErr := tokens.GenerateUserJWT(s.adminID, time.Hour, s.jwtSecret)
	s.Require().NoError(adminErr)
	s.adminJWT = adminJWT

	nonAdminJWT, nonAdminErr := tokens.GenerateUserJWT(s.nonAdminID, time.Hour, s.jwtSecret)
	s.Require().NoError(nonAdminErr)
	s.nonAdminJWT = nonAdminJWT
}

func (s *AdminHandlerTestSuite) TestIndex() {
	pendings := []domain.PendingGuide{
		{ID: 5, Subject: "math", Topic: "limits", Price: 30, Creator: "alice", Link: "https://example.com/limits"},
	}

	s.mockModerationService.EXPECT().Pending(gomock.Any(), s.adminID).Return(pendings, nil)
	s.mockModerationService.EXPECT().Pending(gomock.Any(), s.nonAdminID).
		Return(nil, domain.ErrNotAdmin)

	cases := []struct {
		name       string
		jwtToken   string
		wantStatus int
	}{
		{name: "admin", jwtToken: s.adminJWT, wantStatus: http.StatusOK},
		{name: "non-admin", jwtToken: s.nonAdminJWT, wantStatus: http.StatusForbidden},
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
				Method: http.MethodGet,
				URL:    RouteGroup + PendingRoute,
			}, reqOpts...)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				var body []PendingGuideResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
				s.Require().Len(body, 1)
				s.Equal(pendings[0].ID, body[0].ID)
			}
		})
	}
}

func (s *AdminHandlerTestSuite) TestApprove() {
	pendingID := int64(5)
	missingID := int64(404)
	guide := domain.Guide{ID: 9, Subject: "math", Topic: "limits", Price: 30, Creator: "alice"}

	s.mockModerationService.EXPECT().Approve(gomock.Any(), s.adminID, pendingID).Return(&guide, nil)
	s.mockModerationService.EXPECT().Approve(gomock.Any(), s.adminID, missingID).
		Return(nil, domain.ErrRecordNotFound)
	s.mockModerationService.EXPECT().Approve(gomock.Any(), s.nonAdminID, pendingID).
		Return(nil, domain.ErrNotAdmin)

	cases := []struct {
		name       string
		pendingID  string
		jwtToken   string
		wantStatus int
	}{
		{name: "all ok", pendingID: "5", jwtToken: s.adminJWT, wantStatus: http.StatusOK},
		{name: "not found", pendingID: "404", jwtToken: s.adminJWT, wantStatus: http.StatusNotFound},
		{name: "non-admin", pendingID: "5", jwtToken: s.nonAdminJWT, wantStatus: http.StatusForbidden},
		{name: "bad id", pendingID: "abc", jwtToken: s.adminJWT, wantStatus: http.StatusUnprocessableEntity},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			url := fmt.Sprintf("%s/admin/pending/%s/approve", RouteGroup, t.pendingID)
			res := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    url,
			}, testutils.WithHeader("Authorization", "Bearer "+t.jwtToken))
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *AdminHandlerTestSuite) TestReject() {
	pendingID := int64(5)
	missingID := int64(404)

	s.mockModerationService.EXPECT().Reject(gomock.Any(), s.adminID, pendingID).Return(nil)
	s.mockModerationService.EXPECT().Reject(gomock.Any(), s.adminID, missingID).
		Return(domain.ErrRecordNotFound)
	s.mockModerationService.EXPECT().Reject(gomock.Any(), s.nonAdminID, pendingID).
		Return(domain.ErrNotAdmin)

	cases := []struct {
		name       string
		pendingID  string
		jwtToken   string
		wantStatus int
	}{
		{name: "all ok", pendingID: "5", jwtToken: s.adminJWT, wantStatus: http.StatusOK},
		{name: "not found", pendingID: "404", jwtToken: s.adminJWT, wantStatus: http.StatusNotFound},
		{name: "non-admin", pendingID: "5", jwtToken: s.nonAdminJWT, wantStatus: http.StatusForbidden},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			url := fmt.Sprintf("%s/admin/pending/%s/reject", RouteGroup, t.pendingID)
			res := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    url,
			}, testutils.WithHeader("Authorization", "Bearer "+t.jwtToken))
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}
