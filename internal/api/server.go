package api

import "github.com/RoyceAzure/lab/shopcenter/internal/api/handler"

type Server struct {
	ProductHandler    *handler.ProductHandler
	ReviewHandler     *handler.ReviewHandler
	OrderHandler      *handler.OrderHandler
	CollectionHandler *handler.CollectionHandler
	UserHandler       *handler.UserHandler
}

func NewServer(
	productHandler *handler.ProductHandler,
	reviewHandler *handler.ReviewHandler,
	orderHandler *handler.OrderHandler,
	collectionHandler *handler.CollectionHandler,
	userHandler *handler.UserHandler,
) *Server {
	if productHandler == nil || reviewHandler == nil || orderHandler == nil || collectionHandler == nil || userHandler == nil {
		panic("server handler cannot be nil")
	}
	return &Server{
		ProductHandler:    productHandler,
		ReviewHandler:     reviewHandler,
		OrderHandler:      orderHandler,
		CollectionHandler: collectionHandler,
		UserHandler:       userHandler,
	}
}
