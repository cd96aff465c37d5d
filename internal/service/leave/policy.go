package leave

import (
	"context"
	"fmt"

	"github.com/strivehr/perform-backend-go/internal/domain/leave"
)

// approvalPolicy resolves how many approvals a request needs and who may
// decide at each level, from the department's configured chain.
type approvalPolicy struct {
	levels leave.ApprovalLevelRepository
}

func (p *approvalPolicy) requiredLevels(ctx context.Context, departmentID string) (int, []leave.ApprovalLevel, error) {
	configured, err := p.levels.ListByDepartment(ctx, departmentID, true)
	if err != nil {
		return 0, nil, fmt.Errorf("list approval levels: %w", err)
	}
	return leave.RequiredLevels(configured), configured, nil
}

// canActAt checks whether the actor's approver role satisfies the role
// configured for the level. Admins carry an empty role and always pass;
// the generic fallback accepts any approver the route lets through.
func canActAt(role leave.ApproverRole, required leave.ApproverRole) bool {
	if role == "" {
		return true
	}
	switch required {
	case leave.ApproverDepartmentManager, leave.ApproverHRManager:
		return role == required
	default:
		return true
	}
}
