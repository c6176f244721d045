package service

import "errors"

// 不存在類錯誤由handler統一轉成404
// 訂單超出可見範圍時也回傳ErrOrderNotFound, 不洩漏他人訂單的存在
var (
	ErrProductNotFound    = errors.New("product not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrUserNotFound       = errors.New("user not found")
)
