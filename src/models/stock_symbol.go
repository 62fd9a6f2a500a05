package models

import (
	"fmt"
	"strings"
)

type StockSymbol string

func (s StockSymbol) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("StockSymbol: Validate: symbol is empty")
	}

	return nil
}

func NewStockSymbol(symbol string) StockSymbol {
	return StockSymbol(strings.ToUpper(strings.TrimSpace(symbol)))
}
