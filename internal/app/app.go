package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/fsdevblog/study-market/internal/config"
	"github.com/fsdevblog/study-market/internal/importer"
	"github.com/fsdevblog/study-market/internal/repository/pgrepo"
	"github.com/fsdevblog/study-market/internal/repository/repoargs"
	"github.com/fsdevblog/study-market/internal/service"
	"github.com/fsdevblog/study-market/internal/service/cache"
	"github.com/fsdevblog/study-market/internal/transport/api"
	"github.com/fsdevblog/study-market/pkg/uow"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %+v", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	services, sErr := service.Factory(unitOfWork, []byte(a.Config.JWTUserSecret), a.initCache())
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	if seedErr := a.seedCatalog(notifyCtx, unitOfWork); seedErr != nil {
		return fmt.Errorf("app run: %s", seedErr.Error())
	}

	router := api.New(api.RouterArgs{
		Logger:            a.Logger,
		UserService:       services.UserService,
		CatalogService:    services.CatalogService,
		ModerationService: services.ModerationService,
		CartService:       services.CartService,
		PurchaseService:   services.PurchaseService,
		JWTSecretKey:      []byte(a.Config.JWTUserSecret),
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// initCache создает обертку кеша. Пустой адрес redis выключает кеширование (nil-обертка).
func (a *App) initCache() *cache.Cache {
	if a.Config.RedisAddr == "" {
		return nil
	}
	return cache.New(redis.NewClient(&redis.Options{Addr: a.Config.RedisAddr}))
}

// seedCatalog наполняет каталог из CSV файла, если путь задан в конфиге.
func (a *App) seedCatalog(ctx context.Context, unitOfWork uow.UOW) error {
	if a.Config.CatalogCSV == "" {
		return nil
	}

	guideRepo, repoErr := uow.GetRepositoryAs[service.GuideRepository](
		unitOfWork,
		uow.RepositoryName(repoargs.GuideRepoName),
	)
	if repoErr != nil {
		return repoErr //nolint:wrapcheck
	}

	imp := importer.New(a.Logger)
	_, importErr := imp.ImportFile(ctx, a.Config.CatalogCSV, func(c context.Context, args repoargs.CreateGuide) error {
		_, err := guideRepo.CreateGuide(c, args)
		return err //nolint:wrapcheck
	})
	return importErr
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		repoargs.GuideRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewGuideRepository(dbtx)
		},
		repoargs.PendingGuideRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewPendingGuideRepository(dbtx)
		},
		repoargs.CartRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCartRepository(dbtx)
		},
		repoargs.InventoryRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewInventoryRepository(dbtx)
		},
	}

	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
