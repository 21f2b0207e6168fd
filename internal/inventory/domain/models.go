package domain

import (
	"github.com/smallbiznis/stockroom/pkg/db"
)

// Item is one stock-keeping row. Total is quantity * rate as of the last write.
type Item struct {
	ID          int64       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Item        string      `gorm:"column:item" json:"item"`
	Description string      `gorm:"column:description" json:"description"`
	Brand       string      `gorm:"column:brand" json:"brand"`
	Quantity    int64       `gorm:"column:quantity" json:"quantity"`
	Rate        float64     `gorm:"column:rate" json:"rate"`
	Total       float64     `gorm:"column:total" json:"total"`
	DateAdded   db.DateTime `gorm:"column:date_added" json:"date_added"`
	Type        *string     `gorm:"column:type" json:"type"`
	AddedBy     *string     `gorm:"column:added_by" json:"added_by"`
}

func (Item) TableName() string {
	return "inventory"
}
