package domain

import "time"

// StockEntry is one row of the daily stock ledger: how many milliliters
// of a product remain available on a given date. At most one entry exists
// per (product, date) pair, enforced by a unique key.
type StockEntry struct {
	ID        int
	ProductID int
	Date      time.Time
	Quantity  int
}

func (e StockEntry) CanConsume(amount int) bool {
	return amount >= 0 && e.Quantity >= amount
}

// DateOf strips the time-of-day component, keeping the location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func Today() time.Time {
	return DateOf(time.Now())
}
