package admin

import (
	"context"

	"tablebook/internal/domain"
)

const defaultPageSize = 50

type CommissionPage struct {
	Commissions []domain.Commission `json:"commissions"`
	Total       float64             `json:"total"`
}

type Service struct {
	commissions CommissionRepository
}

func NewService(commissions CommissionRepository) *Service {
	return &Service{commissions: commissions}
}

func (s *Service) ListCommissions(ctx context.Context, limit, offset int) (*CommissionPage, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}

	list, err := s.commissions.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.commissions.Total(ctx)
	if err != nil {
		return nil, err
	}
	return &CommissionPage{Commissions: list, Total: total}, nil
}
