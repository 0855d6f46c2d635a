package orderdto

import (
	"time"

	"github.com/bu6wer8/student-services-V4-Docker/internal/domain"
)

type CreateOrderInput struct {
	CustomerID    string
	ServiceType   domain.ServiceType
	AcademicLevel domain.AcademicLevel
	Subject       string
	Requirements  string
	SpecialNotes  string
	Deadline      time.Time
	Currency      string
}

type ListOrdersInput struct {
	Filters   domain.OrderFilters
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}
