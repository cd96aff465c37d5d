package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/strivehr/perform-backend-go/internal/domain/employee"
	"github.com/strivehr/perform-backend-go/internal/domain/user"
	"github.com/strivehr/perform-backend-go/internal/pkg/password"
)

// Outcome classifies a provisioning attempt.
type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeSkipped Outcome = "skipped" // already linked, warning not error
	OutcomeFailed  Outcome = "failed"
)

// Result is the per-employee provisioning outcome. Password is the
// plaintext handed to the operator once; it is never stored.
type Result struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeCode string  `json:"employee_code"`
	Username     string  `json:"username,omitempty"`
	Password     string  `json:"password,omitempty"`
	Outcome      Outcome `json:"outcome"`
	Message      string  `json:"message,omitempty"`
}

// BulkResult aggregates a provisioning batch.
type BulkResult struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Failed  int      `json:"failed"`
	Results []Result `json:"results"`
}

type Service struct {
	employees      employee.Repository
	profiles       employee.ProfileRepository
	users          user.Repository
	passwordLength int
}

func NewService(employees employee.Repository, profiles employee.ProfileRepository, users user.Repository, passwordLength int) *Service {
	if passwordLength <= 0 {
		passwordLength = password.DefaultLength
	}
	return &Service{
		employees:      employees,
		profiles:       profiles,
		users:          users,
		passwordLength: passwordLength,
	}
}

// Provision creates a login identity for one employee. Username is the
// lowercased employee code. Idempotent: an already linked employee
// yields a skipped outcome, not an error.
func (s *Service) Provision(ctx context.Context, employeeID string) (Result, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return Result{}, err
	}
	return s.provision(ctx, emp), nil
}

func (s *Service) provision(ctx context.Context, emp employee.Employee) Result {
	result := Result{
		EmployeeID:   emp.ID,
		EmployeeCode: emp.EmployeeCode,
	}

	if emp.HasLinkedAccount() {
		result.Outcome = OutcomeSkipped
		result.Message = "employee already has a linked account"
		slog.Warn("account provisioning skipped",
			"employee_id", emp.ID, "employee_code", emp.EmployeeCode)
		return result
	}

	username := strings.ToLower(emp.EmployeeCode)

	plaintext, err := password.Generate(s.passwordLength)
	if err != nil {
		result.Outcome = OutcomeFailed
		result.Message = fmt.Sprintf("generate password: %v", err)
		return result
	}
	hash, err := password.Hash(plaintext)
	if err != nil {
		result.Outcome = OutcomeFailed
		result.Message = fmt.Sprintf("hash password: %v", err)
		return result
	}

	created, err := s.users.Create(ctx, user.User{
		Username:     username,
		Email:        emp.Email,
		PasswordHash: &hash,
		Role:         user.RoleEmployee,
		FirstName:    emp.FirstName,
		LastName:     emp.LastName,
		IsActive:     true,
		EmployeeID:   &emp.ID,
	})
	if err != nil {
		result.Outcome = OutcomeFailed
		if errors.Is(err, user.ErrUsernameExists) {
			result.Message = fmt.Sprintf("username %q already taken", username)
		} else {
			result.Message = err.Error()
		}
		return result
	}

	if err := s.employees.LinkUser(ctx, emp.ID, created.ID); err != nil {
		result.Outcome = OutcomeFailed
		result.Message = fmt.Sprintf("link account: %v", err)
		return result
	}

	if _, _, err := s.profiles.CreateIfMissing(ctx, emp.ID); err != nil {
		slog.Error("failed to create profile placeholder",
			"employee_id", emp.ID, "error", err)
	}

	result.Outcome = OutcomeCreated
	result.Username = username
	result.Password = plaintext

	slog.Info("account provisioned",
		"employee_id", emp.ID, "username", username)
	return result
}

// ProvisionAll provisions every active employee without an account,
// optionally filtered by department. Failures do not abort the batch.
func (s *Service) ProvisionAll(ctx context.Context, departmentID *string) (BulkResult, error) {
	employees, err := s.employees.ListWithoutAccount(ctx, departmentID)
	if err != nil {
		return BulkResult{}, fmt.Errorf("list employees without account: %w", err)
	}

	var bulk BulkResult
	for _, emp := range employees {
		r := s.provision(ctx, emp)
		bulk.Results = append(bulk.Results, r)
		switch r.Outcome {
		case OutcomeCreated:
			bulk.Created++
		case OutcomeSkipped:
			bulk.Skipped++
		case OutcomeFailed:
			bulk.Failed++
		}
	}
	return bulk, nil
}
