package models

import "github.com/shopspring/decimal"

// MarketStatus is the listing status a MarketStatusRecord aggregates over.
type MarketStatus string

const (
	StatusActive        MarketStatus = "Active"
	StatusUnderContract MarketStatus = "Under Contract"
	StatusSold          MarketStatus = "Sold"
	StatusExpired       MarketStatus = "Expired"
	StatusCanceled      MarketStatus = "Canceled"
	StatusBackup        MarketStatus = "Backup"
)

// MarketStatusRecord holds the precomputed figures for one listing status.
type MarketStatusRecord struct {
	Status             MarketStatus
	Count              int
	AveragePrice       decimal.Decimal
	MedianDaysOnMarket int
}

// PriceRangeRecord is one price bucket, e.g. "450-499k".
type PriceRangeRecord struct {
	Range              string
	Count              int
	MedianDaysOnMarket int
}

// DerivedSeriesPoint reshapes a PriceRangeRecord for the days-on-market line.
// It is built on demand and never stored.
type DerivedSeriesPoint struct {
	Price        string
	DaysOnMarket int
	Count        int
}

// PriceBounds is the half-open price interval [Low, High) a range label covers.
type PriceBounds struct {
	Low  int64
	High int64
}
