package leave

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strivehr/perform-backend-go/internal/domain/employee"
	"github.com/strivehr/perform-backend-go/internal/domain/leave"
	"github.com/strivehr/perform-backend-go/internal/domain/notification"
)

// --- fakes ---

type fakeTx struct{ pgx.Tx }

func (fakeTx) Commit(context.Context) error   { return nil }
func (fakeTx) Rollback(context.Context) error { return nil }

type fakeTxBeginner struct{}

func (fakeTxBeginner) BeginTx(context.Context) (pgx.Tx, error) { return fakeTx{}, nil }

type fakeTypeRepo struct {
	types map[string]leave.Type
}

func (f *fakeTypeRepo) Create(_ context.Context, t leave.Type) (leave.Type, error) {
	t.ID = "type-" + strconv.Itoa(len(f.types)+1)
	f.types[t.ID] = t
	return t, nil
}

func (f *fakeTypeRepo) GetByID(_ context.Context, id string) (leave.Type, error) {
	t, ok := f.types[id]
	if !ok {
		return leave.Type{}, leave.ErrTypeNotFound
	}
	return t, nil
}

func (f *fakeTypeRepo) GetByName(_ context.Context, name string) (leave.Type, error) {
	for _, t := range f.types {
		if t.Name == name {
			return t, nil
		}
	}
	return leave.Type{}, leave.ErrTypeNotFound
}

func (f *fakeTypeRepo) List(_ context.Context, activeOnly bool) ([]leave.Type, error) {
	var out []leave.Type
	for _, t := range f.types {
		if activeOnly && !t.IsActive {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTypeRepo) Update(_ context.Context, t leave.Type) error {
	f.types[t.ID] = t
	return nil
}

type balanceKey struct {
	employeeID  string
	leaveTypeID string
	year        int
}

type fakeBalanceRepo struct {
	balances map[balanceKey]leave.Balance
}

func (f *fakeBalanceRepo) Get(_ context.Context, employeeID, leaveTypeID string, year int) (leave.Balance, error) {
	b, ok := f.balances[balanceKey{employeeID, leaveTypeID, year}]
	if !ok {
		return leave.Balance{}, leave.ErrBalanceNotFound
	}
	return b, nil
}

func (f *fakeBalanceRepo) GetOrCreate(_ context.Context, employeeID, leaveTypeID string, year int, allocated float64) (leave.Balance, error) {
	key := balanceKey{employeeID, leaveTypeID, year}
	if b, ok := f.balances[key]; ok {
		return b, nil
	}
	b := leave.Balance{
		ID:          fmt.Sprintf("bal-%d", len(f.balances)+1),
		EmployeeID:  employeeID,
		LeaveTypeID: leaveTypeID,
		Year:        year,
		Allocated:   allocated,
	}
	f.balances[key] = b
	return b, nil
}

func (f *fakeBalanceRepo) ListByEmployee(_ context.Context, employeeID string, year int) ([]leave.Balance, error) {
	var out []leave.Balance
	for key, b := range f.balances {
		if key.employeeID == employeeID && key.year == year {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBalanceRepo) Update(_ context.Context, b leave.Balance) error {
	f.balances[balanceKey{b.EmployeeID, b.LeaveTypeID, b.Year}] = b
	return nil
}

type fakeLevelRepo struct {
	levels []leave.ApprovalLevel
}

func (f *fakeLevelRepo) Create(_ context.Context, l leave.ApprovalLevel) (leave.ApprovalLevel, error) {
	l.ID = fmt.Sprintf("lvl-%d", len(f.levels)+1)
	f.levels = append(f.levels, l)
	return l, nil
}

func (f *fakeLevelRepo) ListByDepartment(_ context.Context, departmentID string, activeOnly bool) ([]leave.ApprovalLevel, error) {
	var out []leave.ApprovalLevel
	for _, l := range f.levels {
		if l.DepartmentID != departmentID {
			continue
		}
		if activeOnly && !l.IsActive {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeLevelRepo) GetByDepartmentAndLevel(_ context.Context, departmentID string, level int) (leave.ApprovalLevel, error) {
	for _, l := range f.levels {
		if l.DepartmentID == departmentID && l.Level == level {
			return l, nil
		}
	}
	return leave.ApprovalLevel{}, leave.ErrApprovalLevelNotFound
}

func (f *fakeLevelRepo) Update(_ context.Context, l leave.ApprovalLevel) error { return nil }

type fakeRequestRepo struct {
	requests map[string]leave.Request
	nextID   int
}

func (f *fakeRequestRepo) Create(_ context.Context, r leave.Request) (leave.Request, error) {
	f.nextID++
	r.ID = fmt.Sprintf("req-%d", f.nextID)
	f.requests[r.ID] = r
	return r, nil
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id string) (leave.Request, error) {
	r, ok := f.requests[id]
	if !ok {
		return leave.Request{}, leave.ErrRequestNotFound
	}
	return r, nil
}

func (f *fakeRequestRepo) List(_ context.Context, filter leave.RequestFilter) ([]leave.Request, int64, error) {
	var out []leave.Request
	for _, r := range f.requests {
		if filter.EmployeeID != nil && r.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRequestRepo) Update(_ context.Context, r leave.Request) error {
	if _, ok := f.requests[r.ID]; !ok {
		return leave.ErrRequestNotFound
	}
	f.requests[r.ID] = r
	return nil
}

func (f *fakeRequestRepo) CheckOverlapping(_ context.Context, employeeID string, startDate, endDate time.Time) (bool, error) {
	for _, r := range f.requests {
		if r.EmployeeID != employeeID {
			continue
		}
		if !r.Status.IsPending() && r.Status != leave.StatusApproved {
			continue
		}
		if !r.StartDate.After(endDate) && !r.EndDate.Before(startDate) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRequestRepo) Delete(_ context.Context, id string) error {
	delete(f.requests, id)
	return nil
}

type fakeDocumentRepo struct {
	documents []leave.RequestDocument
}

func (f *fakeDocumentRepo) Create(_ context.Context, d leave.RequestDocument) (leave.RequestDocument, error) {
	d.ID = fmt.Sprintf("doc-%d", len(f.documents)+1)
	f.documents = append(f.documents, d)
	return d, nil
}

func (f *fakeDocumentRepo) GetByRequestID(_ context.Context, requestID string) (leave.RequestDocument, error) {
	for _, d := range f.documents {
		if d.RequestID == requestID {
			return d, nil
		}
	}
	return leave.RequestDocument{}, leave.ErrDocumentNotFound
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
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
	for _, e := range f.employees {
		if e.UserID != nil && *e.UserID == userID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.Filter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) ListWithoutAccount(_ context.Context, _ *string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, e employee.Employee) error {
	f.employees[e.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) LinkUser(_ context.Context, employeeID, userID string) error {
	e := f.employees[employeeID]
	e.UserID = &userID
	f.employees[employeeID] = e
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

type fakeNotificationRepo struct {
	created []notification.Notification
}

func (f *fakeNotificationRepo) Create(_ context.Context, n notification.Notification) (notification.Notification, error) {
	f.created = append(f.created, n)
	return n, nil
}

func (f *fakeNotificationRepo) ListByUser(_ context.Context, _ string, _ bool, _ int) ([]notification.Notification, error) {
	return nil, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, _, _ string) error  { return nil }
func (f *fakeNotificationRepo) MarkAllRead(_ context.Context, _ string) error { return nil }

type fakeUserResolver struct{}

func (fakeUserResolver) NotifyUserID(_ context.Context, employeeID string) (string, bool) {
	return "user-for-" + employeeID, true
}

type fakeStorage struct {
	uploads map[string][]byte
}

func (f *fakeStorage) Upload(_ context.Context, file io.Reader, path string, _ string) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return "", err
	}
	f.uploads[path] = buf.Bytes()
	return path, nil
}

func (f *fakeStorage) Download(_ context.Context, path string) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.uploads[path])), nil
}

func (f *fakeStorage) Delete(_ context.Context, path string) error { return nil }

// --- fixture ---

type fixture struct {
	svc       *Service
	types     *fakeTypeRepo
	balances  *fakeBalanceRepo
	levels    *fakeLevelRepo
	requests  *fakeRequestRepo
	documents *fakeDocumentRepo
	notifs    *fakeNotificationRepo
	storage   *fakeStorage

	// staggers submission dates so requests never collide
	startOffset int
}

func newFixture(t *testing.T, enforceBalance bool) *fixture {
	t.Helper()

	types := &fakeTypeRepo{types: map[string]leave.Type{
		"type-annual": {ID: "type-annual", Name: "Annual Leave", DefaultAllocation: 21, RequiresApproval: true, IsActive: true},
		"type-sick":   {ID: "type-sick", Name: "Sick Leave", DefaultAllocation: 14, IsActive: true},
	}}
	balances := &fakeBalanceRepo{balances: make(map[balanceKey]leave.Balance)}
	levels := &fakeLevelRepo{levels: []leave.ApprovalLevel{
		{ID: "lvl-1", DepartmentID: "dept-1", Level: 1, ApproverRole: leave.ApproverDepartmentManager, IsActive: true},
		{ID: "lvl-2", DepartmentID: "dept-1", Level: 2, ApproverRole: leave.ApproverHRManager, IsActive: true},
	}}
	requests := &fakeRequestRepo{requests: make(map[string]leave.Request)}
	documents := &fakeDocumentRepo{}
	notifs := &fakeNotificationRepo{}
	fs := &fakeStorage{uploads: make(map[string][]byte)}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", EmployeeCode: "EMP001", FirstName: "Ana", LastName: "Silva", DepartmentID: "dept-1"},
	}}

	ledger := NewLedger(balances, types, enforceBalance)
	svc := NewService(
		fakeTxBeginner{},
		requests,
		types,
		levels,
		documents,
		employees,
		fakeUserResolver{},
		notifs,
		ledger,
		fs,
	)
	return &fixture{
		svc:       svc,
		types:     types,
		balances:  balances,
		levels:    levels,
		requests:  requests,
		documents: documents,
		notifs:    notifs,
		storage:   fs,
	}
}

func strPtr(s string) *string { return &s }

func submitRequest(t *testing.T, fx *fixture, days float64) leave.Request {
	t.Helper()
	start := time.Now().AddDate(0, 0, 7+fx.startOffset)
	fx.startOffset += 30
	created, err := fx.svc.Submit(context.Background(), leave.CreateRequestRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: strPtr("type-annual"),
		StartDate:   start.Format("2006-01-02"),
		EndDate:     start.AddDate(0, 0, int(days)-1).Format("2006-01-02"),
		TotalDays:   days,
		Reason:      "vacation",
	})
	require.NoError(t, err)
	return created
}

// --- tests ---

func TestSubmitReservesBalance(t *testing.T) {
	fx := newFixture(t, true)
	created := submitRequest(t, fx, 5)

	assert.Equal(t, leave.StatusFirstApprovalPending, created.Status)

	year := created.StartDate.Year()
	b, err := fx.balances.Get(context.Background(), "emp-1", "type-annual", year)
	require.NoError(t, err)
	assert.Equal(t, float64(5), b.Pending)
	assert.Equal(t, float64(0), b.Used)
	assert.Equal(t, float64(16), b.Remaining())
}

func TestSubmitInsufficientBalance(t *testing.T) {
	fx := newFixture(t, true)
	start := time.Now().AddDate(0, 0, 7)

	_, err := fx.svc.Submit(context.Background(), leave.CreateRequestRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: strPtr("type-annual"),
		StartDate:   start.Format("2006-01-02"),
		EndDate:     start.AddDate(0, 2, 0).Format("2006-01-02"),
		TotalDays:   30,
		Reason:      "long trip",
	})
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
}

func TestSubmitWithoutEnforcementAllowsOverdraft(t *testing.T) {
	fx := newFixture(t, false)
	start := time.Now().AddDate(0, 0, 7)

	created, err := fx.svc.Submit(context.Background(), leave.CreateRequestRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: strPtr("type-annual"),
		StartDate:   start.Format("2006-01-02"),
		EndDate:     start.AddDate(0, 2, 0).Format("2006-01-02"),
		TotalDays:   30,
		Reason:      "long trip",
	})
	require.NoError(t, err)

	b, err := fx.balances.Get(context.Background(), "emp-1", "type-annual", created.StartDate.Year())
	require.NoError(t, err)
	assert.Equal(t, float64(30), b.Pending)
	assert.Less(t, b.Remaining(), float64(0))
}

func TestApproveFullChainCommitsLedger(t *testing.T) {
	fx := newFixture(t, true)
	created := submitRequest(t, fx, 5)
	ctx := context.Background()
	manager := leave.Actor{UserID: "mgr-1", Name: "Manager", Role: leave.ApproverDepartmentManager}
	hr := leave.Actor{UserID: "hr-1", Name: "HR", Role: leave.ApproverHRManager}

	first, err := fx.svc.Approve(ctx, manager, leave.ApproveRequest{RequestID: created.ID, Level: 1})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusFirstApproved, first.Status)

	// ledger untouched until the final level
	b, _ := fx.balances.Get(ctx, "emp-1", "type-annual", created.StartDate.Year())
	assert.Equal(t, float64(5), b.Pending)
	assert.Equal(t, float64(0), b.Used)

	final, err := fx.svc.Approve(ctx, hr, leave.ApproveRequest{RequestID: created.ID, Level: 2})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, final.Status)

	b, _ = fx.balances.Get(ctx, "emp-1", "type-annual", created.StartDate.Year())
	assert.Equal(t, float64(0), b.Pending)
	assert.Equal(t, float64(5), b.Used)
	assert.Equal(t, float64(16), b.Remaining())

	// approval memo generated and stored
	doc, err := fx.documents.GetByRequestID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.DocumentApprovalMemo, doc.Type)
	assert.NotEmpty(t, fx.storage.uploads[doc.FilePath])

	// employee notified
	require.NotEmpty(t, fx.notifs.created)
	assert.Equal(t, "user-for-emp-1", fx.notifs.created[len(fx.notifs.created)-1].UserID)
}

func TestRejectReleasesReservation(t *testing.T) {
	fx := newFixture(t, true)
	created := submitRequest(t, fx, 5)
	ctx := context.Background()

	rejected, err := fx.svc.Reject(ctx, leave.Actor{UserID: "mgr-1"}, leave.RejectRequest{
		RequestID: created.ID,
		Reason:    "team coverage",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, rejected.Status)

	b, _ := fx.balances.Get(ctx, "emp-1", "type-annual", created.StartDate.Year())
	assert.Equal(t, float64(0), b.Pending)
	assert.Equal(t, float64(0), b.Used)
	assert.Equal(t, float64(21), b.Remaining())
}

func TestResetToDraftReleasesReservation(t *testing.T) {
	fx := newFixture(t, true)
	created := submitRequest(t, fx, 5)
	ctx := context.Background()

	reset, err := fx.svc.ResetToDraft(ctx, leave.Actor{UserID: "emp-user"}, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusDraft, reset.Status)
	assert.Nil(t, reset.SubmittedAt)

	b, _ := fx.balances.Get(ctx, "emp-1", "type-annual", created.StartDate.Year())
	assert.Equal(t, float64(0), b.Pending)
}

func TestApproveEnforcesConfiguredLevelRole(t *testing.T) {
	fx := newFixture(t, true)
	created := submitRequest(t, fx, 5)
	ctx := context.Background()
	manager := leave.Actor{UserID: "mgr-1", Name: "Manager", Role: leave.ApproverDepartmentManager}

	first, err := fx.svc.Approve(ctx, manager, leave.ApproveRequest{RequestID: created.ID, Level: 1})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusFirstApproved, first.Status)

	// level 2 is configured for hr_manager; the department manager is refused
	_, err = fx.svc.Approve(ctx, manager, leave.ApproveRequest{RequestID: created.ID, Level: 2})
	assert.ErrorIs(t, err, leave.ErrApproverRoleMismatch)

	// refusal leaves the request and the ledger untouched
	got, err := fx.requests.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusFirstApproved, got.Status)
	b, _ := fx.balances.Get(ctx, "emp-1", "type-annual", created.StartDate.Year())
	assert.Equal(t, float64(5), b.Pending)
	assert.Equal(t, float64(0), b.Used)
}

func TestApproveAdminActsAtAnyLevel(t *testing.T) {
	fx := newFixture(t, true)
	created := submitRequest(t, fx, 2)
	ctx := context.Background()
	admin := leave.Actor{UserID: "admin-1", Name: "Admin"}

	_, err := fx.svc.Approve(ctx, admin, leave.ApproveRequest{RequestID: created.ID, Level: 1})
	require.NoError(t, err)

	final, err := fx.svc.Approve(ctx, admin, leave.ApproveRequest{RequestID: created.ID, Level: 2})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, final.Status)
}

func TestSubmitRefusesOverlappingRequest(t *testing.T) {
	fx := newFixture(t, true)
	created := submitRequest(t, fx, 5)
	ctx := context.Background()

	// same window as the pending request
	_, err := fx.svc.Submit(ctx, leave.CreateRequestRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: strPtr("type-sick"),
		StartDate:   created.StartDate.Format("2006-01-02"),
		EndDate:     created.EndDate.Format("2006-01-02"),
		TotalDays:   5,
		Reason:      "collides",
	})
	assert.ErrorIs(t, err, leave.ErrOverlappingRequest)

	// partial overlap on the last day is refused too
	_, err = fx.svc.Submit(ctx, leave.CreateRequestRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: strPtr("type-sick"),
		StartDate:   created.EndDate.Format("2006-01-02"),
		EndDate:     created.EndDate.AddDate(0, 0, 3).Format("2006-01-02"),
		TotalDays:   4,
		Reason:      "still collides",
	})
	assert.ErrorIs(t, err, leave.ErrOverlappingRequest)
}

func TestSubmitDraftRefusesOverlappingRequest(t *testing.T) {
	fx := newFixture(t, true)
	created := submitRequest(t, fx, 5)
	ctx := context.Background()

	draft, err := fx.svc.CreateDraft(ctx, leave.CreateRequestRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: strPtr("type-annual"),
		StartDate:   created.StartDate.Format("2006-01-02"),
		EndDate:     created.EndDate.Format("2006-01-02"),
		TotalDays:   5,
		Reason:      "draft over the same window",
	})
	require.NoError(t, err)

	_, err = fx.svc.SubmitDraft(ctx, leave.Actor{UserID: "emp-user"}, draft.ID)
	assert.ErrorIs(t, err, leave.ErrOverlappingRequest)

	// the draft stays a draft and reserves nothing
	got, err := fx.requests.GetByID(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusDraft, got.Status)
	b, _ := fx.balances.Get(ctx, "emp-1", "type-annual", created.StartDate.Year())
	assert.Equal(t, float64(5), b.Pending)
}

func TestBulkApproveReportsPerItemOutcomes(t *testing.T) {
	fx := newFixture(t, true)
	ctx := context.Background()
	manager := leave.Actor{UserID: "mgr-1", Role: leave.ApproverDepartmentManager}

	var ids []string
	for i := 0; i < 4; i++ {
		ids = append(ids, submitRequest(t, fx, 1).ID)
	}

	// a draft is not eligible for approval
	draft, err := fx.svc.CreateDraft(ctx, leave.CreateRequestRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: strPtr("type-annual"),
		StartDate:   time.Now().AddDate(0, 0, 20).Format("2006-01-02"),
		EndDate:     time.Now().AddDate(0, 0, 20).Format("2006-01-02"),
		TotalDays:   1,
		Reason:      "errand",
	})
	require.NoError(t, err)
	ids = append(ids, draft.ID)

	result := fx.svc.BulkApprove(ctx, manager, ids, 1, nil)
	assert.Equal(t, 4, result.Processed)
	assert.Equal(t, 1, result.Skipped)
	require.Contains(t, result.Errors, draft.ID)
}

func TestBulkRejectContinuesPastFailures(t *testing.T) {
	fx := newFixture(t, true)
	ctx := context.Background()

	first := submitRequest(t, fx, 1)
	second := submitRequest(t, fx, 1)

	result := fx.svc.BulkReject(ctx, leave.Actor{UserID: "mgr-1"}, []string{first.ID, "missing", second.ID}, "policy")
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Skipped)
	assert.Contains(t, result.Errors, "missing")
}

func TestGetIncludesApprovalProgress(t *testing.T) {
	fx := newFixture(t, true)
	created := submitRequest(t, fx, 2)
	ctx := context.Background()

	got, err := fx.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.LevelsRequired)
	assert.Equal(t, float64(0), got.ApprovalProgress)

	_, err = fx.svc.Approve(ctx, leave.Actor{UserID: "mgr-1", Role: leave.ApproverDepartmentManager},
		leave.ApproveRequest{RequestID: created.ID, Level: 1})
	require.NoError(t, err)

	got, err = fx.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(50), got.ApprovalProgress)
}

func TestBalancesMaterializesActiveTypes(t *testing.T) {
	fx := newFixture(t, true)
	year := time.Now().Year()

	balances, err := fx.svc.Balances(context.Background(), "emp-1", year)
	require.NoError(t, err)
	require.Len(t, balances, 2)

	byType := make(map[string]leave.Balance)
	for _, b := range balances {
		byType[b.LeaveTypeID] = b
	}
	assert.Equal(t, float64(21), byType["type-annual"].Allocated)
	assert.Equal(t, float64(14), byType["type-sick"].Allocated)
}

func TestCarryOver(t *testing.T) {
	fx := newFixture(t, true)
	ctx := context.Background()

	fx.balances.balances[balanceKey{"emp-1", "type-annual", 2025}] = leave.Balance{
		EmployeeID: "emp-1", LeaveTypeID: "type-annual", Year: 2025,
		Allocated: 21, Used: 15,
	}

	to, err := fx.svc.CarryOver(ctx, leave.CarryOverRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: "type-annual",
		FromYear:    2025,
		ToYear:      2026,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(6), to.CarriedOver)
	assert.Equal(t, float64(21), to.Allocated)
	assert.Equal(t, float64(27), to.Remaining())
}

func TestLedgerReleaseClampsAtZero(t *testing.T) {
	fx := newFixture(t, true)
	ctx := context.Background()

	fx.balances.balances[balanceKey{"emp-1", "type-annual", 2026}] = leave.Balance{
		EmployeeID: "emp-1", LeaveTypeID: "type-annual", Year: 2026,
		Allocated: 21, Pending: 2,
	}

	ledger := NewLedger(fx.balances, fx.types, true)
	require.NoError(t, ledger.Release(ctx, "emp-1", "type-annual", 2026, 5))

	b, _ := fx.balances.Get(ctx, "emp-1", "type-annual", 2026)
	assert.Equal(t, float64(0), b.Pending)
}
