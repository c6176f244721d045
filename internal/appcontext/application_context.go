package appcontext

import (
	"context"
	"fmt"
	"log"

	redis_cache "github.com/RoyceAzure/lab/rj_redis/pkg/cache"
	redis_cache_impl "github.com/RoyceAzure/lab/rj_redis/pkg/cache/redis"
	"github.com/RoyceAzure/lab/rj_redis/pkg/redis_client"
	"github.com/RoyceAzure/rj/api/token"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RoyceAzure/lab/shopcenter/internal/config"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type ApplicationContext struct {
	DbConn            *gorm.DB
	DbDao             *db.DbDao
	ProductCache      redis_cache.Cache
	Cf                *config.Config
	TokenMaker        token.Maker[uuid.UUID]
	PolicyService     service.IPolicyService
	ProductService    service.IProductService
	ReviewService     service.IReviewService
	OrderService      service.IOrderService
	CollectionService service.ICollectionService
	UserService       service.IUserService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	err := app.Init()
	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (app *ApplicationContext) Init() error {
	err := app.setUpdbConn()
	if err != nil {
		return err
	}
	err = app.setUpdbDao()
	if err != nil {
		return err
	}
	err = app.setUpProductCache()
	if err != nil {
		return err
	}
	err = app.setTokenMaker()
	if err != nil {
		return err
	}
	err = app.setUpPolicyService()
	if err != nil {
		return err
	}
	err = app.setUpServices()
	if err != nil {
		return err
	}

	return nil
}

func (app *ApplicationContext) setUpdbConn() error {
	log.Printf("Start setup database connection")
	conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	if err != nil {
		return err
	}
	app.DbConn = conn
	log.Printf("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpdbDao() error {
	log.Printf("Start setup database DAO")
	app.DbDao = db.NewDbDao(app.DbConn)
	err := app.DbDao.InitMigrate()
	if err != nil {
		return err
	}
	log.Printf("Finish setup database DAO")
	return nil
}

// redis沒設定就不啟用cache, 商品查詢直接走db
func (app *ApplicationContext) setUpProductCache() error {
	if app.Cf.RedisAddr == "" {
		log.Printf("Redis address not configured, product cache disabled")
		return nil
	}

	log.Printf("Start setup product cache")
	redisClient, err := redis_client.GetRedisClient(app.Cf.RedisAddr, redis_client.WithPassword(app.Cf.RedisPas))
	if err != nil {
		return err
	}
	app.ProductCache = redis_cache_impl.NewRedisCache(redisClient, app.Cf.ModulerName)
	log.Printf("Finish setup product cache")
	return nil
}

func (app *ApplicationContext) setTokenMaker() error {
	log.Printf("Start setup token maker")

	tokenMaker, err := token.NewPasetoMaker[uuid.UUID](app.Cf.AuthTokenKey)
	if err != nil {
		log.Fatalf("無法創建 token maker: %v", err)
	}

	app.TokenMaker = tokenMaker
	log.Printf("Finish setup token maker")
	return nil
}

// 授權表優先讀yaml, 讀不到就用內建的
func (app *ApplicationContext) setUpPolicyService() error {
	log.Printf("Start setup policy service")
	perCf, err := config.LoadPermissionConfig(app.Cf.PermissionCf)
	if err != nil {
		log.Printf("load permission config failed (%v), using default permissions", err)
		perCf = config.DefaultPermissionConfig()
	}
	app.PolicyService = service.NewPolicyService(perCf)
	log.Printf("Finish setup policy service")
	return nil
}

func (app *ApplicationContext) setUpServices() error {
	log.Printf("Start setup services")

	productRepo := db.NewProductRepo(app.DbDao, app.ProductCache)
	reviewRepo := db.NewReviewRepo(app.DbDao)
	orderRepo := db.NewOrderRepo(app.DbDao)
	collectionRepo := db.NewCollectionRepo(app.DbDao)
	userRepo := db.NewUserRepo(app.DbDao)

	app.ProductService = service.NewProductService(productRepo, app.PolicyService)
	app.ReviewService = service.NewReviewService(reviewRepo, productRepo, app.PolicyService)
	app.OrderService = service.NewOrderService(orderRepo, productRepo, app.PolicyService)
	app.CollectionService = service.NewCollectionService(collectionRepo, productRepo, app.PolicyService)
	app.UserService = service.NewUserService(userRepo, app.PolicyService)

	log.Printf("Finish setup services")
	return nil
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	done := make(chan error)
	go func() {
		defer close(done)

		if app.DbConn != nil {
			log.Printf("Closing database connection...")
			if sqlDB, err := app.DbConn.DB(); err == nil {
				sqlDB.Close()
			}
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
