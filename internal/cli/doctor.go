package cli

import (
	"fmt"
	"os"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"github.com/evanfuller/habitgrid/internal/constants"
	"github.com/evanfuller/habitgrid/internal/identity"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: storage reachable
	if err := ctx.Provider.Load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
	}

	// Check 2: habit data loads and transforms
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Habit data loads: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Habit data loads: OK (%d habits)\n", len(ctx.Store.Habits()))
	}

	// Check 3: OS keyring (identity and premium state live there)
	if identity.KeyringAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   Keyring unavailable; account defaults to %q on the free tier\n", constants.DefaultUserID)
	}

	// Check 4: other habitgrid processes that may hold the sqlite file
	if count, err := otherInstances(); err != nil {
		fmt.Printf("⚠ Concurrent processes: WARNING\n")
		fmt.Printf("   Could not list processes: %v\n", err)
	} else if count > 0 {
		fmt.Printf("⚠ Concurrent processes: %d other %s process(es) running\n", count, constants.AppName)
	} else {
		fmt.Printf("✓ Concurrent processes: none\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func otherInstances() (int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, p := range procs {
		if p.Pid() != os.Getpid() && strings.Contains(p.Executable(), constants.AppName) {
			count++
		}
	}
	return count, nil
}
