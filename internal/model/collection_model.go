package model

import "time"

type CollectionModel struct {
	ID          uint
	Title       string
	Description string
	Products    []ProductModel
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateCollectionModel struct {
	Title       string
	Description string
	ProductIDs  []uint
}

type UpdateCollectionModel struct {
	Title       *string
	Description *string
	// ProductIDs為nil代表不變更，非nil代表全量替換
	ProductIDs []uint
}
