package domain

import (
	"github.com/smallbiznis/stockroom/pkg/db"
)

// Bill is an append-only snapshot of a sale. ItemsText and QuantitiesText hold the
// comma-joined columns; Items and Quantities are the decoded, positionally aligned lines.
type Bill struct {
	ID              int64       `gorm:"column:bill_id;primaryKey;autoIncrement" json:"bill_id"`
	CustomerName    string      `gorm:"column:customer_name" json:"customer_name"`
	CustomerAddress string      `gorm:"column:customer_address" json:"customer_address"`
	ItemsText       string      `gorm:"column:items" json:"-"`
	QuantitiesText  string      `gorm:"column:quantities" json:"-"`
	TotalAmount     float64     `gorm:"column:total_amount" json:"total_amount"`
	DateGenerated   db.DateTime `gorm:"column:date_generated" json:"date_generated"`

	Items      []string `gorm:"-" json:"items"`
	Quantities []int64  `gorm:"-" json:"quantities"`
	Lines      []Line   `gorm:"-" json:"lines"`
}

func (Bill) TableName() string {
	return "bills"
}

// Line is one row of bill_lines. Rate is the unit rate used for pricing when known.
type Line struct {
	ID       int64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	BillID   int64    `gorm:"column:bill_id;index" json:"-"`
	Position int      `gorm:"column:position" json:"position"`
	Item     string   `gorm:"column:item" json:"item"`
	Quantity int64    `gorm:"column:quantity" json:"quantity"`
	Rate     *float64 `gorm:"column:rate" json:"rate,omitempty"`
}

func (Line) TableName() string {
	return "bill_lines"
}
