package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/strivehr/perform-backend-go/internal/domain/department"
	"github.com/strivehr/perform-backend-go/internal/domain/employee"
	"github.com/strivehr/perform-backend-go/internal/domain/evaluation"
	"github.com/strivehr/perform-backend-go/internal/domain/goal"
	"github.com/strivehr/perform-backend-go/internal/domain/leave"
	"github.com/strivehr/perform-backend-go/internal/domain/training"
)

type Service struct {
	employee.Repository
	departments department.Repository
	evaluations evaluation.Repository
	goals       goal.Repository
	trainings   training.Repository
	balances    leave.BalanceRepository
}

func NewService(
	employees employee.Repository,
	departments department.Repository,
	evaluations evaluation.Repository,
	goals goal.Repository,
	trainings training.Repository,
	balances leave.BalanceRepository,
) *Service {
	return &Service{
		Repository:  employees,
		departments: departments,
		evaluations: evaluations,
		goals:       goals,
		trainings:   trainings,
		balances:    balances,
	}
}

func (s *Service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	if _, err := s.Repository.GetByCode(ctx, req.EmployeeCode); err == nil {
		return employee.Employee{}, employee.ErrEmployeeCodeExists
	}

	if _, err := s.departments.GetByID(ctx, req.DepartmentID); err != nil {
		return employee.Employee{}, fmt.Errorf("resolve department: %w", err)
	}

	if req.ManagerID != nil && *req.ManagerID != "" {
		if _, err := s.Repository.GetByID(ctx, *req.ManagerID); err != nil {
			return employee.Employee{}, employee.ErrManagerNotFound
		}
	}

	hireDate, _ := time.Parse("2006-01-02", req.HireDate)

	status := employee.StatusActive
	if req.Status != "" {
		status = employee.Status(req.Status)
	}

	var gender *employee.Gender
	if req.Gender != nil && *req.Gender != "" {
		g := employee.Gender(*req.Gender)
		gender = &g
	}
	var dob *time.Time
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		if parsed, err := time.Parse("2006-01-02", *req.DateOfBirth); err == nil {
			dob = &parsed
		}
	}

	return s.Repository.Create(ctx, employee.Employee{
		EmployeeCode:     req.EmployeeCode,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		DepartmentID:     req.DepartmentID,
		Position:         req.Position,
		HireDate:         hireDate,
		Status:           status,
		ManagerID:        req.ManagerID,
		Gender:           gender,
		DateOfBirth:      dob,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
		Salary:           req.Salary,
	})
}

func (s *Service) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	emp, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.Employee{}, err
	}

	if req.ManagerID != nil {
		if *req.ManagerID == emp.ID {
			return employee.Employee{}, employee.ErrSelfManagedEmployee
		}
		if *req.ManagerID != "" {
			if _, err := s.Repository.GetByID(ctx, *req.ManagerID); err != nil {
				return employee.Employee{}, employee.ErrManagerNotFound
			}
		}
		emp.ManagerID = req.ManagerID
	}
	if req.DepartmentID != nil && *req.DepartmentID != "" {
		if _, err := s.departments.GetByID(ctx, *req.DepartmentID); err != nil {
			return employee.Employee{}, fmt.Errorf("resolve department: %w", err)
		}
		emp.DepartmentID = *req.DepartmentID
	}

	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Phone != nil {
		emp.Phone = *req.Phone
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.Status != nil {
		emp.Status = employee.Status(*req.Status)
	}
	if req.Address != nil {
		emp.Address = req.Address
	}
	if req.EmergencyContact != nil {
		emp.EmergencyContact = req.EmergencyContact
	}
	if req.EmergencyPhone != nil {
		emp.EmergencyPhone = req.EmergencyPhone
	}
	if req.Salary != nil {
		emp.Salary = req.Salary
	}

	if err := s.Repository.Update(ctx, emp); err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

// Detail aggregates the employee record with recent activity across
// evaluations, goals, trainings and leave balances.
type Detail struct {
	Employee          employee.Employee       `json:"employee"`
	RecentEvaluations []evaluation.Evaluation `json:"recent_evaluations"`
	Goals             []goal.Goal             `json:"goals"`
	Trainings         []training.Training     `json:"trainings"`
	LeaveBalances     []leave.Balance         `json:"leave_balances"`
}

func (s *Service) GetDetail(ctx context.Context, id string) (Detail, error) {
	emp, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return Detail{}, err
	}

	evals, _, err := s.evaluations.List(ctx, evaluation.Filter{EmployeeID: &id, Limit: 5})
	if err != nil {
		return Detail{}, fmt.Errorf("list evaluations: %w", err)
	}
	goals, _, err := s.goals.List(ctx, goal.Filter{EmployeeID: &id, Limit: 10})
	if err != nil {
		return Detail{}, fmt.Errorf("list goals: %w", err)
	}
	trainings, _, err := s.trainings.List(ctx, training.Filter{EmployeeID: &id, Limit: 10})
	if err != nil {
		return Detail{}, fmt.Errorf("list trainings: %w", err)
	}
	balances, err := s.balances.ListByEmployee(ctx, id, time.Now().Year())
	if err != nil {
		return Detail{}, fmt.Errorf("list leave balances: %w", err)
	}

	return Detail{
		Employee:          emp,
		RecentEvaluations: evals,
		Goals:             goals,
		Trainings:         trainings,
		LeaveBalances:     balances,
	}, nil
}
