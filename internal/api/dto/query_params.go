package dto

import (
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
)

// query string過濾條件的解析
// 未知參數與無法解析的值一律忽略, 不視為錯誤

func parseDecimalParam(q url.Values, key string) *decimal.Decimal {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}

func parseUintParam(q url.Values, key string) *uint {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	u := uint(v)
	return &u
}

func parseUUIDParam(q url.Values, key string) *uuid.UUID {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// 先試RFC3339, 再退回日期格式
func parseTimeParam(q url.Values, key string) *time.Time {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t
	}
	return nil
}

// 上界專用: 只給日期時涵蓋到當天結束, 範圍才會含當天建立的資料
func parseTimeUpperParam(q url.Values, key string) *time.Time {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		return &t
	}
	return nil
}

func ParsePaging(q url.Values) model.Paging {
	paging := model.Paging{}
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		paging.Page = v
	}
	if v, err := strconv.Atoi(q.Get("page_size")); err == nil {
		paging.PageSize = v
	}
	return paging.Normalize()
}

func ParseProductFilter(q url.Values) model.ProductFilter {
	return model.ProductFilter{
		PriceMin:    parseDecimalParam(q, "price_min"),
		PriceMax:    parseDecimalParam(q, "price_max"),
		Title:       q.Get("title"),
		Description: q.Get("description"),
	}
}

func ParseReviewFilter(q url.Values) model.ReviewFilter {
	return model.ReviewFilter{
		CreatorID:   parseUUIDParam(q, "creator"),
		ProductID:   parseUintParam(q, "product"),
		CreatedFrom: parseTimeParam(q, "created_after"),
		CreatedTo:   parseTimeUpperParam(q, "created_before"),
	}
}

func ParseOrderFilter(q url.Values) model.OrderFilter {
	return model.OrderFilter{
		Status:       q.Get("status"),
		TotalMin:     parseDecimalParam(q, "total_min"),
		TotalMax:     parseDecimalParam(q, "total_max"),
		CreatedFrom:  parseTimeParam(q, "created_after"),
		CreatedTo:    parseTimeUpperParam(q, "created_before"),
		UpdatedFrom:  parseTimeParam(q, "updated_after"),
		UpdatedTo:    parseTimeUpperParam(q, "updated_before"),
		ProductTitle: q.Get("products"),
	}
}
