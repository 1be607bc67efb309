package api

import (
	"time"

	"github.com/fsdevblog/study-market/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup        = "/api"
	RegisterRoute     = "/user/register"
	LoginRoute        = "/user/login"
	GuidesRoute       = "/market/guides"
	SearchRoute       = "/market/search"
	ShareRoute        = "/market/share"
	CartRoute         = "/market/cart"
	CartItemRoute     = "/market/cart/:itemID"
	CheckoutRoute     = "/market/checkout"
	InventoryRoute    = "/market/inventory"
	PendingRoute      = "/admin/pending"
	PendingApproveFmt = "/admin/pending/:pendingID/approve"
	PendingRejectFmt  = "/admin/pending/:pendingID/reject"
)

type RouterArgs struct {
	Logger            *logrus.Logger
	UserService       UserServicer
	CatalogService    CatalogServicer
	ModerationService ModerationServicer
	CartService       CartServicer
	PurchaseService   PurchaseServicer
	JWTSecretKey      []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	catalogHandler := NewCatalogHandler(args.CatalogService)
	cartHandler := NewCartHandler(args.CartService, args.PurchaseService)
	adminHandler := NewAdminHandler(args.ModerationService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.GET(GuidesRoute, catalogHandler.Index)
	api.GET(SearchRoute, catalogHandler.Search)
	api.POST(ShareRoute, catalogHandler.Share)

	api.GET(CartRoute, cartHandler.Index)
	api.POST(CartRoute, cartHandler.Add)
	api.DELETE(CartItemRoute, cartHandler.Remove)
	api.POST(CheckoutRoute, cartHandler.Checkout)
	api.GET(InventoryRoute, cartHandler.Inventory)

	// admin-право проверяется сервисом модерации, а не транспортом.
	api.GET(PendingRoute, adminHandler.Index)
	api.POST(PendingApproveFmt, adminHandler.Approve)
	api.POST(PendingRejectFmt, adminHandler.Reject)
	return r
}
