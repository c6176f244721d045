package router

import (
	"fmt"
	"net/http"

	"github.com/RoyceAzure/rj/api/token"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/RoyceAzure/lab/shopcenter/docs"
	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	m "github.com/RoyceAzure/lab/shopcenter/internal/api/middleware"
)

func SetupRouter(server *api.Server, tokenMaker token.Maker[uuid.UUID], logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(m.AuthPayloadMiddleware(tokenMaker))
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))

	// Swagger 文檔
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.Handler())

	// API 路由
	r.Route("/api/v1", func(r chi.Router) {
		// 商品目錄: 匿名可讀, 寫入在service層檢查admin
		r.Route("/products", func(r chi.Router) {
			r.Get("/", server.ProductHandler.ListProducts)
			r.Get("/{id}", server.ProductHandler.GetProduct)
			r.With(m.AuthMiddleware).Post("/", server.ProductHandler.CreateProduct)
			r.With(m.AuthMiddleware).Patch("/{id}", server.ProductHandler.UpdateProduct)
			r.With(m.AuthMiddleware).Delete("/{id}", server.ProductHandler.DeleteProduct)
		})

		r.Route("/product-reviews", func(r chi.Router) {
			r.Get("/", server.ReviewHandler.ListReviews)
			r.Get("/{id}", server.ReviewHandler.GetReview)
			r.With(m.AuthMiddleware).Post("/", server.ReviewHandler.CreateReview)
			r.With(m.AuthMiddleware).Patch("/{id}", server.ReviewHandler.UpdateReview)
			r.With(m.AuthMiddleware).Delete("/{id}", server.ReviewHandler.DeleteReview)
		})

		// 訂單全部要登入
		r.Route("/orders", func(r chi.Router) {
			r.Use(m.AuthMiddleware)
			r.Get("/", server.OrderHandler.ListOrders)
			r.Get("/{id}", server.OrderHandler.GetOrder)
			r.Post("/", server.OrderHandler.CreateOrder)
			r.Patch("/{id}", server.OrderHandler.UpdateOrder)
			r.Delete("/{id}", server.OrderHandler.DeleteOrder)
		})

		r.Route("/product-collections", func(r chi.Router) {
			r.Get("/", server.CollectionHandler.ListCollections)
			r.Get("/{id}", server.CollectionHandler.GetCollection)
			r.With(m.AuthMiddleware).Post("/", server.CollectionHandler.CreateCollection)
			r.With(m.AuthMiddleware).Patch("/{id}", server.CollectionHandler.UpdateCollection)
			r.With(m.AuthMiddleware).Delete("/{id}", server.CollectionHandler.DeleteCollection)
		})

		r.With(m.AuthMiddleware).Get("/all-profiles", server.UserHandler.ListProfiles)
		r.With(m.AuthMiddleware).Get("/profile/{id}", server.UserHandler.GetProfile)
	})

	// 在設置完所有路由後打印路由樹
	fmt.Println(chi.Walk(r, func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		fmt.Printf("%s %s\n", method, route)
		return nil
	}))
	return r
}
