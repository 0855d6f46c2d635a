package repository

import (
	"time"

	"gorm.io/gorm"
)

type DefaultOrderNumberAllocator struct {
	DB *gorm.DB
}

func NewDefaultOrderNumberAllocator(db *gorm.DB) *DefaultOrderNumberAllocator {
	return &DefaultOrderNumberAllocator{DB: db}
}

// NextSequence bumps the per-day counter in a single atomic statement.
// Concurrent callers serialize on the row inside the database, so no two
// of them can ever observe the same value.
func (r *DefaultOrderNumberAllocator) NextSequence(day time.Time) (int64, error) {
	var counter int64
	err := r.DB.Raw(`
		INSERT INTO order_sequences (day, counter)
		VALUES (?, 1)
		ON CONFLICT (day) DO UPDATE SET counter = order_sequences.counter + 1
		RETURNING counter`, day.Format("20060102")).
		Scan(&counter).Error
	if err != nil {
		return 0, err
	}
	return counter, nil
}
