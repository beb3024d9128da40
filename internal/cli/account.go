package cli

import (
	"fmt"

	"github.com/evanfuller/habitgrid/internal/constants"
)

type AccountCmd struct {
	Status    AccountStatusCmd    `cmd:"" help:"Show the active account and tier." default:"1"`
	Login     AccountLoginCmd     `cmd:"" help:"Set the active user id."`
	Upgrade   AccountUpgradeCmd   `cmd:"" help:"Store a premium license key."`
	Downgrade AccountDowngradeCmd `cmd:"" help:"Remove the premium license key."`
}

type AccountStatusCmd struct{}

func (c *AccountStatusCmd) Run(ctx *Context) error {
	tier := "free"
	limit := fmt.Sprintf("up to %d habits", constants.FreeHabitLimit)
	if ctx.Identity.Premium() {
		tier = "premium"
		limit = "unlimited habits"
	}
	fmt.Printf("User:  %s\nTier:  %s (%s)\n", ctx.Identity.UserID(), tier, limit)
	return nil
}

type AccountLoginCmd struct {
	User string `arg:"" help:"User id to make active."`
}

func (c *AccountLoginCmd) Run(ctx *Context) error {
	if err := ctx.Identity.SetUserID(c.User); err != nil {
		return err
	}
	fmt.Printf("Active user set to %s\n", c.User)
	return nil
}

type AccountUpgradeCmd struct {
	License string `arg:"" help:"Premium license key."`
}

func (c *AccountUpgradeCmd) Run(ctx *Context) error {
	if err := ctx.Identity.SetLicense(c.License); err != nil {
		return err
	}
	fmt.Println("Premium enabled. Habit limit removed.")
	return nil
}

type AccountDowngradeCmd struct{}

func (c *AccountDowngradeCmd) Run(ctx *Context) error {
	if err := ctx.Identity.ClearLicense(); err != nil {
		return err
	}
	fmt.Printf("Premium disabled. Free tier allows up to %d habits.\n", constants.FreeHabitLimit)
	return nil
}
