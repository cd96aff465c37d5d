// Command provision seeds reference data and creates portal accounts for
// employees. It is run by an operator, not exposed over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/strivehr/perform-backend-go/internal/config"
	"github.com/strivehr/perform-backend-go/internal/domain/leave"
	"github.com/strivehr/perform-backend-go/internal/fixtures"
	"github.com/strivehr/perform-backend-go/internal/pkg/database"
	"github.com/strivehr/perform-backend-go/internal/repository/postgresql"
	accountService "github.com/strivehr/perform-backend-go/internal/service/account"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()

	switch os.Args[1] {
	case "accounts":
		err = runAccounts(ctx, db, os.Args[2:])
	case "seed-leave":
		err = runSeedLeave(ctx, db)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage:
  provision accounts [--employee-id ID | --all] [--department ID] [--password-length N]
  provision seed-leave`)
}

func runAccounts(ctx context.Context, db *database.DB, args []string) error {
	fs := flag.NewFlagSet("accounts", flag.ExitOnError)
	employeeID := fs.String("employee-id", "", "provision a single employee")
	all := fs.Bool("all", false, "provision every employee without an account")
	department := fs.String("department", "", "restrict --all to one department")
	passwordLength := fs.Int("password-length", 0, "generated password length")
	if err := fs.Parse(args); err != nil {
		return err
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	profileRepo := postgresql.NewProfileRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	accounts := accountService.NewService(employeeRepo, profileRepo, userRepo, *passwordLength)

	switch {
	case *employeeID != "":
		result, err := accounts.Provision(ctx, *employeeID)
		if err != nil {
			return err
		}
		printResult(result)
		return nil

	case *all:
		var departmentID *string
		if *department != "" {
			departmentID = department
		}
		bulk, err := accounts.ProvisionAll(ctx, departmentID)
		if err != nil {
			return err
		}
		for _, result := range bulk.Results {
			printResult(result)
		}
		fmt.Printf("\ncreated=%d skipped=%d failed=%d\n", bulk.Created, bulk.Skipped, bulk.Failed)
		return nil

	default:
		return errors.New("accounts requires --employee-id or --all")
	}
}

func printResult(r accountService.Result) {
	switch r.Outcome {
	case accountService.OutcomeCreated:
		fmt.Printf("%-12s %s  username=%s password=%s\n", r.Outcome, r.EmployeeCode, r.Username, r.Password)
	default:
		fmt.Printf("%-12s %s  %s\n", r.Outcome, r.EmployeeCode, r.Message)
	}
}

// runSeedLeave installs the default leave type catalog and a two-level
// approval chain for every department. Re-running is safe: existing
// records are left untouched.
func runSeedLeave(ctx context.Context, db *database.DB) error {
	typeRepo := postgresql.NewLeaveTypeRepository(db)
	levelRepo := postgresql.NewApprovalLevelRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)

	for _, lt := range fixtures.DefaultLeaveTypes() {
		_, err := typeRepo.GetByName(ctx, lt.Name)
		if err == nil {
			fmt.Printf("leave type %q already exists, skipping\n", lt.Name)
			continue
		}
		if !errors.Is(err, leave.ErrTypeNotFound) {
			return err
		}
		created, err := typeRepo.Create(ctx, lt)
		if err != nil {
			return fmt.Errorf("create leave type %q: %w", lt.Name, err)
		}
		fmt.Printf("created leave type %q (%s)\n", created.Name, created.ID)
	}

	departments, err := departmentRepo.List(ctx)
	if err != nil {
		return err
	}
	for _, dept := range departments {
		for _, level := range fixtures.DefaultApprovalChain(dept.ID) {
			_, err := levelRepo.GetByDepartmentAndLevel(ctx, dept.ID, level.Level)
			if err == nil {
				continue
			}
			if !errors.Is(err, leave.ErrApprovalLevelNotFound) {
				return err
			}
			if _, err := levelRepo.Create(ctx, level); err != nil {
				return fmt.Errorf("create approval level %d for %q: %w", level.Level, dept.Name, err)
			}
			fmt.Printf("created approval level %d (%s) for department %q\n", level.Level, level.ApproverRole, dept.Name)
		}
	}
	return nil
}
