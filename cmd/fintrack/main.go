package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"fintrack/internal/bootstrap"
	"fintrack/internal/platform/config"
	"fintrack/internal/platform/money"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "fintrack",
		Short:         "Personal finance tracking client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file path")

	root.AddCommand(newTUICmd(&configPath))
	root.AddCommand(newLoginCmd(&configPath))
	root.AddCommand(newLogoutCmd(&configPath))
	root.AddCommand(newRegisterCmd(&configPath))
	root.AddCommand(newWhoamiCmd(&configPath))
	root.AddCommand(newProfileCmd(&configPath))
	root.AddCommand(newRecordCmd(&configPath))
	root.AddCommand(newIncomeCmd(&configPath))
	root.AddCommand(newGoalCmd(&configPath))
	root.AddCommand(newSummaryCmd(&configPath))
	root.AddCommand(newHistoryCmd(&configPath))
	root.AddCommand(newImportCmd(&configPath))
	return root
}

func loadApp(configPath string) (*bootstrap.App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run fintrack terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newLoginCmd(configPath *string) *cobra.Command {
	var email, password string
	login := &cobra.Command{
		Use:   "login --email <email> --password <password>",
		Short: "Authenticate against the finance API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(email) == "" || password == "" {
				return fmt.Errorf("--email and --password are required")
			}
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			session, err := app.AuthCLI.Login(context.Background(), email, password)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s (%s)\n", session.Username, session.Email)
			return nil
		},
	}
	login.Flags().StringVar(&email, "email", "", "account email")
	login.Flags().StringVar(&password, "password", "", "account password")
	return login
}

func newLogoutCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			if err := app.AuthCLI.Logout(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newRegisterCmd(configPath *string) *cobra.Command {
	var email, username, password string
	register := &cobra.Command{
		Use:   "register --email <email> --username <name> --password <password>",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(email) == "" || strings.TrimSpace(username) == "" || password == "" {
				return fmt.Errorf("--email, --username, and --password are required")
			}
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			if err := app.AuthCLI.Register(context.Background(), email, username, password); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "registered %s, log in to continue\n", email)
			return nil
		},
	}
	register.Flags().StringVar(&email, "email", "", "account email")
	register.Flags().StringVar(&username, "username", "", "account username")
	register.Flags().StringVar(&password, "password", "", "account password")
	return register
}

func newWhoamiCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			session, err := app.AuthCLI.Bootstrap(context.Background())
			if err != nil {
				return err
			}
			if !session.Authenticated {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "not logged in")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", session.Username, session.Email)
			return nil
		},
	}
}

func newProfileCmd(configPath *string) *cobra.Command {
	profile := &cobra.Command{Use: "profile", Short: "Manage the account profile"}

	var email, username, currentPassword, newPassword string
	update := &cobra.Command{
		Use:   "update",
		Short: "Update email, username, or password (changed fields only)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			if err := app.AuthCLI.UpdateProfile(context.Background(), email, username, currentPassword, newPassword); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "profile updated")
			return nil
		},
	}
	update.Flags().StringVar(&email, "email", "", "new email (empty keeps current)")
	update.Flags().StringVar(&username, "username", "", "new username (empty keeps current)")
	update.Flags().StringVar(&currentPassword, "current-password", "", "current password, required for a password change")
	update.Flags().StringVar(&newPassword, "new-password", "", "new password (empty keeps current)")

	profile.AddCommand(update)
	return profile
}

func newRecordCmd(configPath *string) *cobra.Command {
	record := &cobra.Command{Use: "record", Short: "Manage expense, saving, and investment records"}

	var kind, date, category string
	var amount float64
	add := &cobra.Command{
		Use:   "add --kind <expense|saving|investment> --date <aaaa-mm-dd> --amount <value> --category <name>",
		Short: "Add a record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			if err := app.RecordsCLI.Add(context.Background(), kind, date, amount, category); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s %s %s\n", kind, money.Format(amount), category)
			return nil
		},
	}
	add.Flags().StringVar(&kind, "kind", "expense", "record kind: expense|saving|investment")
	add.Flags().StringVar(&date, "date", "", "record date (aaaa-mm-dd)")
	add.Flags().Float64Var(&amount, "amount", 0, "record amount")
	add.Flags().StringVar(&category, "category", "", "record category")

	var listKind, start, end string
	list := &cobra.Command{
		Use:   "list --kind <expense|saving|investment> --start <aaaa-mm-dd> --end <aaaa-mm-dd>",
		Short: "List records in a date range",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			records, err := app.RecordsCLI.List(context.Background(), listKind, start, end)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no records")
				return nil
			}
			for _, r := range records {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n",
					r.ID, r.Date.Format("2006-01-02"), money.Format(r.Amount), r.Category)
			}
			return nil
		},
	}
	list.Flags().StringVar(&listKind, "kind", "expense", "record kind: expense|saving|investment")
	list.Flags().StringVar(&start, "start", "", "range start (aaaa-mm-dd)")
	list.Flags().StringVar(&end, "end", "", "range end (aaaa-mm-dd)")

	var updKind, updDate, updCategory string
	var updID int64
	var updAmount float64
	update := &cobra.Command{
		Use:   "update --kind <kind> --id <id>",
		Short: "Replace a record's date, amount, and category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			if err := app.RecordsCLI.Update(context.Background(), updKind, updID, updDate, updAmount, updCategory); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated %s %d\n", updKind, updID)
			return nil
		},
	}
	update.Flags().StringVar(&updKind, "kind", "expense", "record kind: expense|saving|investment")
	update.Flags().Int64Var(&updID, "id", 0, "record id")
	update.Flags().StringVar(&updDate, "date", "", "record date (aaaa-mm-dd)")
	update.Flags().Float64Var(&updAmount, "amount", 0, "record amount")
	update.Flags().StringVar(&updCategory, "category", "", "record category")

	var delKind string
	var delID int64
	del := &cobra.Command{
		Use:   "delete --kind <kind> --id <id>",
		Short: "Delete a record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			if err := app.RecordsCLI.Delete(context.Background(), delKind, delID); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s %d\n", delKind, delID)
			return nil
		},
	}
	del.Flags().StringVar(&delKind, "kind", "expense", "record kind: expense|saving|investment")
	del.Flags().Int64Var(&delID, "id", 0, "record id")

	record.AddCommand(add, list, update, del)
	return record
}

func newIncomeCmd(configPath *string) *cobra.Command {
	income := &cobra.Command{Use: "income", Short: "Manage income entries"}

	var date string
	var amount float64
	add := &cobra.Command{
		Use:   "add --date <aaaa-mm-dd> --amount <value>",
		Short: "Add an income entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			if err := app.RecordsCLI.AddIncome(context.Background(), date, amount); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added income %s\n", money.Format(amount))
			return nil
		},
	}
	add.Flags().StringVar(&date, "date", "", "income date (aaaa-mm-dd)")
	add.Flags().Float64Var(&amount, "amount", 0, "income amount")

	income.AddCommand(add)
	return income
}

func newGoalCmd(configPath *string) *cobra.Command {
	goal := &cobra.Command{Use: "goal", Short: "Manage percentage goals"}

	goal.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the goals in effect",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			goals, err := app.GoalsCLI.Show(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "expense\t%.1f%%\nsaving\t%.1f%%\ninvestment\t%.1f%%\n",
				goals.Expense, goals.Saving, goals.Investment)
			return nil
		},
	})

	var setKind string
	var value float64
	set := &cobra.Command{
		Use:   "set --kind <expense|saving|investment> --value <percentage>",
		Short: "Set one goal percentage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			if err := app.GoalsCLI.Set(context.Background(), setKind, value); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "goal %s set to %.1f%%\n", setKind, value)
			return nil
		},
	}
	set.Flags().StringVar(&setKind, "kind", "", "goal kind: expense|saving|investment")
	set.Flags().Float64Var(&value, "value", 0, "goal percentage (0..100)")

	var clearKind string
	clear := &cobra.Command{
		Use:   "clear --kind <expense|saving|investment>",
		Short: "Clear one goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			if err := app.GoalsCLI.Clear(context.Background(), clearKind); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "goal %s cleared\n", clearKind)
			return nil
		},
	}
	clear.Flags().StringVar(&clearKind, "kind", "", "goal kind: expense|saving|investment")

	goal.AddCommand(set, clear)
	return goal
}

func newSummaryCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the current month's summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			overview, err := app.InsightsCLI.Summary(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "income\t%s\n", money.Format(overview.Income))
			for _, kpi := range overview.KPIs {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.1f%% / %.1f%%\t%s\n",
					kpi.Kind, money.Format(kpi.Amount), kpi.Current, kpi.Goal, kpi.Status)
			}
			for _, dist := range overview.Distributions {
				if !dist.HasData {
					continue
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", dist.Title)
				for _, s := range dist.Slices {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s\t%s\t%d%%\n", s.Name, money.Format(s.Amount), s.Percentage)
				}
			}
			return nil
		},
	}
}

func newHistoryCmd(configPath *string) *cobra.Command {
	var dataType, period string
	history := &cobra.Command{
		Use:   "history --type <data type> --period <period>",
		Short: "Show a historical series",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			series, err := app.InsightsCLI.History(context.Background(), dataType, period)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), series.Title)
			for _, ds := range series.Datasets {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), ds.Label)
				for i, label := range series.Labels {
					if series.IsGoal {
						_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s\t%.1f%%\n", label, ds.Values[i])
					} else {
						_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s\t%s\n", label, money.Format(ds.Values[i]))
					}
				}
			}
			return nil
		},
	}
	history.Flags().StringVar(&dataType, "type", "expenses", "series type: income|expenses|savings|investments|expense_goals|saving_goals|investment_goals")
	history.Flags().StringVar(&period, "period", "6months", "period: 1month|6months|1year|3years|5years")
	return history
}

func newImportCmd(configPath *string) *cobra.Command {
	var dataType string
	importCmd := &cobra.Command{
		Use:   "import <path.csv> --type <data type>",
		Short: "Import records from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			report, err := app.RecordsCLI.ImportCSV(context.Background(), dataType, args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported=%d failed=%d\n", report.Imported, report.Failed)
			return nil
		},
	}
	importCmd.Flags().StringVar(&dataType, "type", "expenses", "data type: income|expenses|savings|investments|expense_goals|saving_goals|investment_goals")
	return importCmd
}
