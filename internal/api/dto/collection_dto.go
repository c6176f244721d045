package dto

import "time"

// CollectionDTO 表示商品集合資訊
type CollectionDTO struct {
	ID          uint         `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Products    []ProductDTO `json:"products"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type CreateCollectionDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ProductIDs  []uint `json:"product_ids"`
}

// UpdateCollectionDTO ProductIDs缺漏代表關聯不變更, 空陣列代表清空
type UpdateCollectionDTO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ProductIDs  []uint  `json:"product_ids"`
}

type ListCollectionsResponse struct {
	Total int64           `json:"total"`
	Items []CollectionDTO `json:"items"`
}
