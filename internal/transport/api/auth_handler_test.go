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
	"github.com/fsdevblog/study-market/internal/service"
	"github.com/fsdevblog/study-market/internal/transport/api/mocks"
	"github.com/fsdevblog/study-market/internal/transport/api/testutils"
	"github.com/fsdevblog/study-market/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *mocks.MockUserServicer
	jwtSecret       []byte
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockUserService = mocks.NewMockUserServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		UserService:  s.mockUserService,
		JWTSecretKey: s.jwtSecret,
	})
}

func (s *AuthHandlerTestSuite) TestRegister() {
	validArgs := service.RegisterUserArgs{Username: "newUser", Password: "password123"}
	duplicateArgs := service.RegisterUserArgs{Username: "takenUser", Password: "password123"}

	createdUser := domain.User{ID: 1, Username: validArgs.Username}

	s.mockUserService.EXPECT().
		Register(gomock.Any(), validArgs).
		Return(&createdUser, "jwt-token", nil)
	s.mockUserService.EXPECT().
		Register(gomock.Any(), duplicateArgs).
		Return(nil, "", domain.ErrDuplicateKey)

	authorizedToken, tokenErr := tokens.GenerateUserJWT(1, time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)

	cases := []struct {
		name       string
		payload    string
		jwtToken   string
		wantStatus int
		wantAuth   bool
	}{
		{
			name:       "all ok",
			payload:    `{"username":"newUser","password":"password123"}`,
			wantStatus: http.StatusOK,
			wantAuth:   true,
		}, {
			name:       "duplicate username",
			payload:    `{"username":"takenUser","password":"password123"}`,
			wantStatus: http.StatusConflict,
		}, {
			name:       "short username",
			payload:    `{"username":"ab","password":"password123"}`,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "short password",
			payload:    `{"username":"newUser","password":"short"}`,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "malformed json",
			payload:    `{"username":`,
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "already authorized",
			payload:    `{"username":"newUser","password":"password123"}`,
			jwtToken:   authorizedToken,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + RegisterRoute,
				Body:   bytes.NewReader([]byte(t.payload)),
			}
			reqOpts := []func(*testutils.RequestOptions){
				testutils.WithHeader("Content-Type", "application/json"),
			}
			if t.jwtToken != "" {
				reqOpts = append(reqOpts, testutils.WithHeader("Authorization", "Bearer "+t.jwtToken))
			}
			res := testutils.MakeRequest(args, reqOpts...)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
			if t.wantAuth {
				s.Equal("Bearer jwt-token", res.Header.Get("Authorization"))
			}
		})
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	okArgs := service.LoginUserArgs{Username: "student", Password: "password123"}
	wrongPassArgs := service.LoginUserArgs{Username: "student", Password: "wrongpass123"}
	unknownArgs := service.LoginUserArgs{Username: "nobody", Password: "password123"}

	user := domain.User{ID: 1, Username: okArgs.Username, Wallet: 100}

	s.mockUserService.EXPECT().Login(gomock.Any(), okArgs).Return(&user, "jwt-token", nil)
	s.mockUserService.EXPECT().Login(gomock.Any(), wrongPassArgs).
		Return(nil, "", domain.ErrPasswordMissMatch)
	s.mockUserService.EXPECT().Login(gomock.Any(), unknownArgs).
		Return(nil, "", domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		args       service.LoginUserArgs
		wantStatus int
	}{
		{name: "all ok", args: okArgs, wantStatus: http.StatusOK},
		{name: "wrong password", args: wrongPassArgs, wantStatus: http.StatusUnauthorized},
		{name: "unknown username", args: unknownArgs, wantStatus: http.StatusUnauthorized},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			payload := fmt.Sprintf(`{"username":%q,"password":%q}`, t.args.Username, t.args.Password)
			res := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + LoginRoute,
				Body:   bytes.NewReader([]byte(payload)),
			}, testutils.WithHeader("Content-Type", "application/json"))
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				s.Equal("Bearer jwt-token", res.Header.Get("Authorization"))

				var body struct {
					User UserResponse `json:"user"`
				}
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
				s.Equal(user.ID, body.User.ID)
				s.Equal(user.Wallet, body.User.Wallet)
			}
		})
	}
}
