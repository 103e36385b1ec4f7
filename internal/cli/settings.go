package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gohypedevelopers-stack/admin-dashboard/internal/marketplace"
)

// Settings shows the platform configuration and lets the operator change
// fields one at a time. Nothing is sent to the backend until "save".
func (a *App) Settings(ctx context.Context) error {
	settings, err := a.svc.Settings(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err.Error())
		return err
	}

	a.printSettings(settings)
	dirty := false

	for {
		fmt.Fprint(a.out, "settings> ")
		line, err := a.reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return nil
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "back", "b":
			if dirty {
				fmt.Fprintln(a.out, "Unsaved changes discarded")
			}
			return nil
		case "help":
			fmt.Fprintln(a.out, "Settings commands: set commission|email|phone|maintenance <value>, save, back")
		case "save":
			if err := a.svc.UpdateSettings(ctx, settings); err != nil {
				fmt.Fprintln(a.out, "Error:", err.Error())
			} else {
				fmt.Fprintln(a.out, "Settings saved")
				dirty = false
			}
		case "set":
			if len(args) < 2 {
				fmt.Fprintln(a.out, "Usage: set <field> <value>")
				continue
			}
			if err := applySetting(&settings, args[0], strings.Join(args[1:], " ")); err != nil {
				fmt.Fprintln(a.out, "Error:", err.Error())
				continue
			}
			dirty = true
			a.printSettings(settings)
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}

		if err != nil {
			return nil
		}
	}
}

func applySetting(s *marketplace.Settings, field, value string) error {
	switch field {
	case "commission":
		rate, err := decimal.NewFromString(value)
		if err != nil {
			return fmt.Errorf("invalid commission rate %q: %w", value, err)
		}
		s.CommissionRate = rate
	case "email":
		s.SupportEmail = value
	case "phone":
		s.SupportPhone = value
	case "maintenance":
		on, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid maintenance flag %q: %w", value, err)
		}
		s.MaintenanceMode = on
	default:
		return fmt.Errorf("unknown setting %q", field)
	}
	return nil
}

func (a *App) printSettings(s marketplace.Settings) {
	fmt.Fprintf(a.out, "Commission rate: %s\nSupport email:   %s\nSupport phone:   %s\nMaintenance:     %t\n",
		s.CommissionRate.String(), s.SupportEmail, s.SupportPhone, s.MaintenanceMode)
}
