package dto

import (
	"github.com/SscSPs/site_claims_app/internal/core/domain"
	"github.com/SscSPs/site_claims_app/internal/core/query"
)

// PageParams selects a window of a list response.
type PageParams struct {
	Limit     int    `form:"limit,default=50" binding:"min=0,max=500"`
	NextToken string `form:"nextToken"`
}

// DateRangeParams is an optional inclusive YYYY-MM-DD range.
type DateRangeParams struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// ToDateRange converts the params; unset or unparsable bounds stay open.
func (p DateRangeParams) ToDateRange() query.DateRange {
	var r query.DateRange
	if t, err := domain.ParseDate(p.From); err == nil {
		r.From = t
	}
	if t, err := domain.ParseDate(p.To); err == nil {
		r.To = t
	}
	return r
}

// LocationRequest is a check-in position.
type LocationRequest struct {
	Latitude  float64 `json:"lat" binding:"min=-90,max=90"`
	Longitude float64 `json:"lng" binding:"min=-180,max=180"`
	Address   string  `json:"address"`
}

// ToDomain converts the request to a domain location; nil stays nil.
func (l *LocationRequest) ToDomain() *domain.GeoLocation {
	if l == nil {
		return nil
	}
	return &domain.GeoLocation{Latitude: l.Latitude, Longitude: l.Longitude, Address: l.Address}
}

// RejectRequest carries the reason given when rejecting a claim or leave request.
type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}
