package user

type Permission string

const (
	// Self management
	PermissionViewOwnProfile Permission = "profile.view_own"
	PermissionEditOwnProfile Permission = "profile.edit_own"

	// Leave workflow
	PermissionLeaveViewOwn     Permission = "leave.view_own"
	PermissionLeaveCreate      Permission = "leave.create"
	PermissionLeaveViewAll     Permission = "leave.view_all"
	PermissionLeaveApprove     Permission = "leave.approve"
	PermissionLeaveManageTypes Permission = "leave.manage_types"

	// Performance management
	PermissionEvaluationViewOwn Permission = "evaluation.view_own"
	PermissionEvaluationManage  Permission = "evaluation.manage"
	PermissionGoalViewOwn       Permission = "goal.view_own"
	PermissionGoalManage        Permission = "goal.manage"
	PermissionTrainingViewOwn   Permission = "training.view_own"
	PermissionTrainingManage    Permission = "training.manage"

	// Employee management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"

	// Reports
	PermissionReportsView Permission = "reports.view"

	// User management
	PermissionUserManage Permission = "user.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionLeaveManageTypes,
		PermissionEvaluationViewOwn,
		PermissionEvaluationManage,
		PermissionGoalViewOwn,
		PermissionGoalManage,
		PermissionTrainingViewOwn,
		PermissionTrainingManage,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionReportsView,
		PermissionUserManage,
	},
	RoleHRManager: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionLeaveManageTypes,
		PermissionEvaluationViewOwn,
		PermissionEvaluationManage,
		PermissionGoalViewOwn,
		PermissionGoalManage,
		PermissionTrainingViewOwn,
		PermissionTrainingManage,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionReportsView,
	},
	RoleManager: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionEvaluationViewOwn,
		PermissionGoalViewOwn,
		PermissionGoalManage,
		PermissionTrainingViewOwn,
		PermissionReportsView,
	},
	RoleEmployee: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionEvaluationViewOwn,
		PermissionGoalViewOwn,
		PermissionTrainingViewOwn,
	},
}

// HasPermission checks if a role includes a permission
func HasPermission(role Role, permission Permission) bool {
	perms, ok := RolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == permission {
			return true
		}
	}
	return false
}
