package service

import (
	"github.com/phee464/Lnw-web-hamhub/internal/domain"
)

// PlanRepository is re-exported from domain for convenience
type PlanRepository = domain.PlanRepository
