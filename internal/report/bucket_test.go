package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"autonom-backend/internal/domain"
)

func paidAt(y int, m time.Month, d int, cents int64) domain.Transaction {
	return domain.Transaction{
		AmountCents: cents,
		Status:      domain.TransactionStatusPaid,
		CreatedOn:   time.Date(y, m, d, 10, 0, 0, 0, time.UTC),
	}
}

func txTime(t domain.Transaction) time.Time { return t.CreatedOn }
func txAmount(t domain.Transaction) int64   { return t.AmountCents }

func TestAggregate_Monthly(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	transactions := []domain.Transaction{
		paidAt(2026, time.January, 5, 10000),
		paidAt(2026, time.January, 20, 5000),
		paidAt(2026, time.February, 3, 3000),
	}

	buckets := Aggregate(transactions, txTime, txAmount, GranularityMonth, now, DefaultMonthBuckets)
	assert.Len(t, buckets, 2)
	assert.Equal(t, "Jan 2026", buckets[0].Label)
	assert.Equal(t, int64(15000), buckets[0].Total)
	assert.Equal(t, "Feb 2026", buckets[1].Label)
	assert.Equal(t, int64(3000), buckets[1].Total)
}

func TestAggregate_ExcludesRecordsOutsideLookback(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	transactions := []domain.Transaction{
		paidAt(2024, time.June, 1, 99999),
		paidAt(2026, time.February, 3, 3000),
	}

	buckets := Aggregate(transactions, txTime, txAmount, GranularityMonth, now, DefaultMonthBuckets)
	assert.Len(t, buckets, 1)
	assert.Equal(t, "Feb 2026", buckets[0].Label)
}

func TestAggregate_Yearly(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	transactions := []domain.Transaction{
		paidAt(2024, time.March, 1, 1000),
		paidAt(2024, time.September, 1, 2000),
		paidAt(2026, time.January, 1, 4000),
	}

	buckets := Aggregate(transactions, txTime, txAmount, GranularityYear, now, DefaultYearBuckets)
	assert.Len(t, buckets, 2)
	assert.Equal(t, "2024", buckets[0].Label)
	assert.Equal(t, int64(3000), buckets[0].Total)
	assert.Equal(t, "2026", buckets[1].Label)
	assert.Equal(t, int64(4000), buckets[1].Total)
}

func TestAggregate_TruncatesToLastN(t *testing.T) {
	now := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	var transactions []domain.Transaction
	for m := time.January; m <= time.December; m++ {
		transactions = append(transactions, paidAt(2026, m, 1, 100))
	}

	buckets := Aggregate(transactions, txTime, txAmount, GranularityMonth, now, 3)
	assert.Len(t, buckets, 3)
	assert.Equal(t, "Oct 2026", buckets[0].Label)
	assert.Equal(t, "Dec 2026", buckets[2].Label)
}

func TestCount(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	reservations := []domain.Reservation{
		{CreatedOn: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)},
		{CreatedOn: time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC)},
		{CreatedOn: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	buckets := Count(reservations,
		func(r domain.Reservation) time.Time { return r.CreatedOn },
		GranularityMonth, now, DefaultMonthBuckets)
	assert.Len(t, buckets, 2)
	assert.Equal(t, int64(2), buckets[0].Total)
	assert.Equal(t, int64(1), buckets[1].Total)
}

func TestAggregate_EmptyInput(t *testing.T) {
	buckets := Aggregate(nil, txTime, txAmount, GranularityMonth, time.Now(), DefaultMonthBuckets)
	assert.Empty(t, buckets)
}
