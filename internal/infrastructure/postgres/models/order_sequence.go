package models

// OrderSequenceModel backs per-day order-number allocation. The counter
// is only ever bumped through an atomic upsert, never read-modify-write.
type OrderSequenceModel struct {
	Day     string `gorm:"primaryKey"`
	Counter int64  `gorm:"not null"`
}

func (OrderSequenceModel) TableName() string {
	return "order_sequences"
}
