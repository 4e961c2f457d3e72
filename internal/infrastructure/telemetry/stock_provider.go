package telemetry

import (
	"context"

	"gorm.io/gorm"
)

// GormStockProvider sums inventory quantities per country
type GormStockProvider struct {
	db *gorm.DB
}

// NewGormStockProvider creates a GormStockProvider
func NewGormStockProvider(db *gorm.DB) *GormStockProvider {
	return &GormStockProvider{db: db}
}

// StockByCountry implements StockProvider
func (p *GormStockProvider) StockByCountry(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Country  string
		Quantity int64
	}

	var rows []row
	err := p.db.WithContext(ctx).
		Table("inventories").
		Select("country, COALESCE(SUM(quantity), 0) AS quantity").
		Group("country").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stock := make(map[string]int64, len(rows))
	for _, r := range rows {
		stock[r.Country] = r.Quantity
	}
	return stock, nil
}
