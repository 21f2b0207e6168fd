package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const listDelimiter = ","

// JoinItems encodes item names for the bills.items column. Names containing the
// delimiter do not survive SplitItems; bill_lines keeps them intact.
func JoinItems(items []string) string {
	return strings.Join(items, listDelimiter)
}

func SplitItems(value string) []string {
	if value == "" {
		return []string{}
	}
	return strings.Split(value, listDelimiter)
}

func JoinQuantities(quantities []int64) string {
	parts := make([]string, len(quantities))
	for i, q := range quantities {
		parts[i] = strconv.FormatInt(q, 10)
	}
	return strings.Join(parts, listDelimiter)
}

func SplitQuantities(value string) ([]int64, error) {
	if strings.TrimSpace(value) == "" {
		return []int64{}, nil
	}
	parts := strings.Split(value, listDelimiter)
	quantities := make([]int64, len(parts))
	for i, part := range parts {
		q, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("quantity %d %q: %w", i, part, err)
		}
		quantities[i] = q
	}
	return quantities, nil
}

// LinesFromText rebuilds lines for bills written before bill_lines existed.
func LinesFromText(billID int64, itemsText, quantitiesText string) ([]Line, error) {
	items := SplitItems(itemsText)
	quantities, err := SplitQuantities(quantitiesText)
	if err != nil {
		return nil, err
	}
	if len(items) != len(quantities) {
		return nil, fmt.Errorf("bill %d has %d items and %d quantities", billID, len(items), len(quantities))
	}
	lines := make([]Line, len(items))
	for i := range items {
		lines[i] = Line{BillID: billID, Position: i, Item: items[i], Quantity: quantities[i]}
	}
	return lines, nil
}
