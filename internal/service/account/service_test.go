package account

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strivehr/perform-backend-go/internal/domain/employee"
	"github.com/strivehr/perform-backend-go/internal/domain/user"
	"github.com/strivehr/perform-backend-go/internal/pkg/password"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	linked    map[string]string
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByCode(_ context.Context, code string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.EmployeeCode == code {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByUserID(_ context.Context, userID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.Filter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) ListWithoutAccount(_ context.Context, departmentID *string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.HasLinkedAccount() {
			continue
		}
		if departmentID != nil && e.DepartmentID != *departmentID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, e employee.Employee) error {
	f.employees[e.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) LinkUser(_ context.Context, employeeID, userID string) error {
	e := f.employees[employeeID]
	e.UserID = &userID
	f.employees[employeeID] = e
	f.linked[employeeID] = userID
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

type fakeProfileRepo struct {
	created map[string]bool
}

func (f *fakeProfileRepo) GetByEmployeeID(_ context.Context, employeeID string) (employee.Profile, error) {
	return employee.Profile{EmployeeID: employeeID}, nil
}

func (f *fakeProfileRepo) CreateIfMissing(_ context.Context, employeeID string) (employee.Profile, bool, error) {
	fresh := !f.created[employeeID]
	f.created[employeeID] = true
	return employee.Profile{EmployeeID: employeeID}, fresh, nil
}

func (f *fakeProfileRepo) Update(_ context.Context, _ employee.Profile) error { return nil }

type fakeUserRepo struct {
	users  map[string]user.User
	nextID int
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	for _, existing := range f.users {
		if existing.Username == u.Username {
			return user.User{}, user.ErrUsernameExists
		}
	}
	f.nextID++
	u.ID = "user-" + string(rune('a'+f.nextID-1))
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (user.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, u user.User) error {
	f.users[u.ID] = u
	return nil
}

func newTestService() (*Service, *fakeEmployeeRepo, *fakeUserRepo, *fakeProfileRepo) {
	employees := &fakeEmployeeRepo{
		employees: map[string]employee.Employee{
			"emp-1": {ID: "emp-1", EmployeeCode: "EMP001", FirstName: "Ana", LastName: "Silva", Email: "ana@example.com", DepartmentID: "dept-1"},
			"emp-2": {ID: "emp-2", EmployeeCode: "EMP002", FirstName: "Budi", LastName: "Santoso", Email: "budi@example.com", DepartmentID: "dept-2"},
		},
		linked: make(map[string]string),
	}
	profiles := &fakeProfileRepo{created: make(map[string]bool)}
	users := &fakeUserRepo{users: make(map[string]user.User)}
	svc := NewService(employees, profiles, users, password.DefaultLength)
	return svc, employees, users, profiles
}

func TestProvisionCreatesAccount(t *testing.T) {
	svc, employees, users, profiles := newTestService()
	ctx := context.Background()

	result, err := svc.Provision(ctx, "emp-1")
	require.NoError(t, err)

	assert.Equal(t, OutcomeCreated, result.Outcome)
	assert.Equal(t, "emp001", result.Username)
	assert.Len(t, result.Password, password.DefaultLength)

	// employee linked to the new user
	userID, ok := employees.linked["emp-1"]
	require.True(t, ok)
	created, err := users.GetByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, user.RoleEmployee, created.Role)
	require.NotNil(t, created.PasswordHash)
	assert.True(t, password.Verify(*created.PasswordHash, result.Password))

	// profile placeholder created
	assert.True(t, profiles.created["emp-1"])
}

func TestProvisionIsIdempotent(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	first, err := svc.Provision(ctx, "emp-1")
	require.NoError(t, err)
	require.Equal(t, OutcomeCreated, first.Outcome)

	second, err := svc.Provision(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, second.Outcome)
	assert.Empty(t, second.Password)
}

func TestProvisionUnknownEmployee(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Provision(context.Background(), "missing")
	assert.True(t, errors.Is(err, employee.ErrEmployeeNotFound))
}

func TestProvisionAllContinuesPastFailures(t *testing.T) {
	svc, employees, users, _ := newTestService()
	ctx := context.Background()

	// pre-claim emp-2's username so its provisioning fails
	_, err := users.Create(ctx, user.User{Username: "emp002"})
	require.NoError(t, err)

	bulk, err := svc.ProvisionAll(ctx, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, bulk.Created)
	assert.Equal(t, 1, bulk.Failed)
	assert.Equal(t, 0, bulk.Skipped)
	assert.Len(t, bulk.Results, 2)

	_, linked := employees.linked["emp-1"]
	assert.True(t, linked)
}

func TestProvisionAllFiltersByDepartment(t *testing.T) {
	svc, _, _, _ := newTestService()
	dept := "dept-1"

	bulk, err := svc.ProvisionAll(context.Background(), &dept)
	require.NoError(t, err)
	assert.Equal(t, 1, bulk.Created)
	assert.Len(t, bulk.Results, 1)
	assert.Equal(t, "EMP001", bulk.Results[0].EmployeeCode)
}
