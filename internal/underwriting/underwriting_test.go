package underwriting

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashlens-dev/cashlens/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func tx(d time.Time, dir model.Direction, amount string, cat model.Category) model.Transaction {
	return model.Transaction{
		Date:      d,
		Direction: dir,
		Amount:    dec(amount),
		Category:  cat,
	}
}
