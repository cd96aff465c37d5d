package leave

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/strivehr/perform-backend-go/internal/domain/leave"
)

// Ledger owns all leave balance mutations. Callers run it inside the same
// transaction as the request status change.
type Ledger struct {
	balances       leave.BalanceRepository
	types          leave.TypeRepository
	enforceBalance bool
}

func NewLedger(balances leave.BalanceRepository, types leave.TypeRepository, enforceBalance bool) *Ledger {
	return &Ledger{
		balances:       balances,
		types:          types,
		enforceBalance: enforceBalance,
	}
}

func (l *Ledger) balanceFor(ctx context.Context, employeeID, leaveTypeID string, year int) (leave.Balance, error) {
	lt, err := l.types.GetByID(ctx, leaveTypeID)
	if err != nil {
		return leave.Balance{}, fmt.Errorf("resolve leave type: %w", err)
	}
	return l.balances.GetOrCreate(ctx, employeeID, leaveTypeID, year, lt.DefaultAllocation)
}

// Reserve moves days into pending at submission time. When enforcement is
// on, a reservation that would push remaining below zero fails.
func (l *Ledger) Reserve(ctx context.Context, employeeID, leaveTypeID string, year int, days float64) error {
	b, err := l.balanceFor(ctx, employeeID, leaveTypeID, year)
	if err != nil {
		return err
	}

	if l.enforceBalance && b.Remaining()-days < 0 {
		slog.Warn("leave reservation exceeds remaining balance",
			"employee_id", employeeID,
			"leave_type_id", leaveTypeID,
			"remaining", b.Remaining(),
			"requested", days,
		)
		return leave.ErrInsufficientBalance
	}

	b.Pending += days
	return l.balances.Update(ctx, b)
}

// Commit converts pending days to used on final approval.
func (l *Ledger) Commit(ctx context.Context, employeeID, leaveTypeID string, year int, days float64) error {
	b, err := l.balances.Get(ctx, employeeID, leaveTypeID, year)
	if err != nil {
		return err
	}

	b.Pending -= days
	if b.Pending < 0 {
		b.Pending = 0
	}
	b.Used += days
	return l.balances.Update(ctx, b)
}

// Release frees pending days on rejection or reset, clamped at zero.
func (l *Ledger) Release(ctx context.Context, employeeID, leaveTypeID string, year int, days float64) error {
	b, err := l.balances.Get(ctx, employeeID, leaveTypeID, year)
	if err != nil {
		return err
	}

	b.Pending -= days
	if b.Pending < 0 {
		b.Pending = 0
	}
	return l.balances.Update(ctx, b)
}

// CarryOver copies the unused remaining days of fromYear into the next
// year's carried_over bucket. Manual admin operation.
func (l *Ledger) CarryOver(ctx context.Context, employeeID, leaveTypeID string, fromYear, toYear int) (leave.Balance, error) {
	from, err := l.balances.Get(ctx, employeeID, leaveTypeID, fromYear)
	if err != nil {
		return leave.Balance{}, err
	}

	remaining := from.Remaining()
	if remaining < 0 {
		remaining = 0
	}

	to, err := l.balanceFor(ctx, employeeID, leaveTypeID, toYear)
	if err != nil {
		return leave.Balance{}, err
	}

	to.CarriedOver += remaining
	if err := l.balances.Update(ctx, to); err != nil {
		return leave.Balance{}, err
	}

	slog.Info("leave balance carried over",
		"employee_id", employeeID,
		"leave_type_id", leaveTypeID,
		"from_year", fromYear,
		"to_year", toYear,
		"days", remaining,
	)
	return to, nil
}
