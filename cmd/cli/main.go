// Command cli is an operator tool for ledger maintenance: reconciling account
// balances, materializing due recurring transactions, and running migrations.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/adamfarahx/finance-analytics-db/infra/initializer"
	infrarepo "github.com/adamfarahx/finance-analytics-db/infra/repository"
	"github.com/fatih/color"
	"github.com/google/uuid"
)

func usage() {
	fmt.Println("Usage: cli <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  reconcile <account_id>    compare stored balance against the transaction log")
	fmt.Println("  process-due [YYYY-MM-DD]  materialize recurring transactions due as of a date")
	fmt.Println("  migrate                   run schema migrations")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]

	deps, err := initializer.InitializeDependencies(".env")
	if err != nil {
		color.Red("failed to initialize: %v", err)
		os.Exit(1)
	}
	ctx := context.Background()

	switch cmd {
	case "reconcile":
		if len(os.Args) < 3 {
			fmt.Println("Usage: cli reconcile <account_id>")
			os.Exit(1)
		}
		accountID, err := uuid.Parse(os.Args[2])
		if err != nil {
			color.Red("invalid account id: %v", err)
			os.Exit(1)
		}
		report, err := deps.Ledger.Reconcile(ctx, accountID)
		if err != nil {
			color.Red("reconciliation failed: %v", err)
			os.Exit(1)
		}
		fmt.Printf("Account:  %s\n", report.AccountID)
		fmt.Printf("Stored:   %s\n", report.Stored)
		fmt.Printf("Computed: %s\n", report.Computed)
		if report.Reconciled {
			color.Green("reconciled (difference %d minor units)", report.Difference.Amount())
		} else {
			color.Red("MISMATCH (difference %d minor units)", report.Difference.Amount())
			os.Exit(1)
		}
	case "process-due":
		asOf := time.Now()
		if len(os.Args) > 2 {
			asOf, err = time.Parse(time.DateOnly, os.Args[2])
			if err != nil {
				color.Red("invalid as-of date, want YYYY-MM-DD: %v", err)
				os.Exit(1)
			}
		}
		result, err := deps.Scheduler.ProcessDue(ctx, asOf)
		if err != nil {
			color.Red("processing failed: %v", err)
			os.Exit(1)
		}
		color.Green("processed %d definition(s) as of %s",
			result.Processed, result.AsOf.Format(time.DateOnly))
		for _, f := range result.Failures {
			color.Yellow("skipped %s: %s", f.DefinitionID, f.Reason)
		}
		if len(result.Failures) > 0 {
			os.Exit(1)
		}
	case "migrate":
		if err := infrarepo.Migrate(deps.DB); err != nil {
			color.Red("migration failed: %v", err)
			os.Exit(1)
		}
		color.Green("schema is up to date")
	default:
		color.Red("unknown command: %s", cmd)
		usage()
		os.Exit(1)
	}
}
