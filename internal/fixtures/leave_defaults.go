// Package fixtures holds the default records provisioning seeds into a
// fresh installation.
package fixtures

import "github.com/strivehr/perform-backend-go/internal/domain/leave"

// DefaultLeaveTypes is the standard leave catalog. Allocation zero means
// the type has no annual entitlement and is granted case by case.
func DefaultLeaveTypes() []leave.Type {
	return []leave.Type{
		{
			Name:              "Annual Leave",
			Description:       "Paid annual vacation entitlement",
			DefaultAllocation: 21,
			RequiresApproval:  true,
			ColorCode:         "#28a745",
			IsActive:          true,
		},
		{
			Name:              "Sick Leave",
			Description:       "Paid sick leave, medical certificate may be required",
			DefaultAllocation: 14,
			RequiresApproval:  false,
			ColorCode:         "#dc3545",
			IsActive:          true,
		},
		{
			Name:              "Personal Leave",
			Description:       "Short personal absence",
			DefaultAllocation: 5,
			RequiresApproval:  true,
			ColorCode:         "#ffc107",
			IsActive:          true,
		},
		{
			Name:              "Maternity Leave",
			Description:       "Statutory maternity leave",
			DefaultAllocation: 90,
			RequiresApproval:  true,
			ColorCode:         "#e83e8c",
			IsActive:          true,
		},
		{
			Name:              "Paternity Leave",
			Description:       "Statutory paternity leave",
			DefaultAllocation: 14,
			RequiresApproval:  true,
			ColorCode:         "#17a2b8",
			IsActive:          true,
		},
		{
			Name:              "Bereavement Leave",
			Description:       "Leave following the death of a close family member",
			DefaultAllocation: 5,
			RequiresApproval:  false,
			ColorCode:         "#6c757d",
			IsActive:          true,
		},
		{
			Name:              "Study Leave",
			Description:       "Leave for examinations and approved study programs",
			DefaultAllocation: 10,
			RequiresApproval:  true,
			ColorCode:         "#6f42c1",
			IsActive:          true,
		},
		{
			Name:              "Other",
			Description:       "Unclassified leave, granted at management discretion",
			DefaultAllocation: 0,
			RequiresApproval:  true,
			ColorCode:         "#fd7e14",
			IsActive:          true,
		},
	}
}

// DefaultApprovalChain is the two-step chain seeded for every department:
// the department manager first, then HR.
func DefaultApprovalChain(departmentID string) []leave.ApprovalLevel {
	return []leave.ApprovalLevel{
		{
			DepartmentID: departmentID,
			Level:        1,
			ApproverRole: leave.ApproverDepartmentManager,
			IsActive:     true,
		},
		{
			DepartmentID: departmentID,
			Level:        2,
			ApproverRole: leave.ApproverHRManager,
			IsActive:     true,
		},
	}
}
