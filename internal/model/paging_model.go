package model

import "github.com/RoyceAzure/lab/shopcenter/internal/constants"

type Paging struct {
	Page     int
	PageSize int
}

// Normalize 套用預設值與上限
func (p Paging) Normalize() Paging {
	if p.Page < 1 {
		p.Page = constants.DefaultPaging
	}
	if p.PageSize < 1 {
		p.PageSize = constants.DefaultPagingSize
	}
	if p.PageSize > constants.MaxPagingSize {
		p.PageSize = constants.MaxPagingSize
	}
	return p
}

func (p Paging) Offset() int {
	return (p.Page - 1) * p.PageSize
}
