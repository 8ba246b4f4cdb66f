package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"harvest-sync/internal/app"
	"harvest-sync/internal/config"
	"harvest-sync/internal/hsync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var verbose bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func readConfig() (*config.Config, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}
	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return cfg, nil
}

// newApp reads the config and creates an HSApp. The caller must defer app.Close().
// operation identifies the CLI command being run (e.g. "CreateSyncConfig", "Sync").
func newApp(operation string) (*app.HSApp, error) {
	cfg, err := readConfig()
	if err != nil {
		return nil, err
	}

	a, err := app.NewHSApp(cfg, operation, app.Options{Verbose: verbose})
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}
	return a, nil
}

// signalContext is cancelled on interrupt so a running sync rolls back cleanly.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// readSecret prompts on the terminal without echo. envVar, when set, wins.
func readSecret(prompt, envVar string) (string, error) {
	if v := os.Getenv(envVar); v != "" {
		return v, nil
	}
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", strings.TrimSuffix(strings.ToLower(prompt), ": "), err)
	}
	return string(b), nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid configuration id %q", arg)
	}
	return id, nil
}

// configID returns the --config flag, or the only active configuration when it is not set.
func configID(cmd *cobra.Command, a *app.HSApp) (int64, error) {
	if id, _ := cmd.Flags().GetInt64("config"); id != 0 {
		return id, nil
	}
	configs, err := a.ListSyncConfigs()
	if err != nil {
		return 0, err
	}
	var active []int64
	for _, c := range configs {
		if c.Active {
			active = append(active, c.ID)
		}
	}
	switch len(active) {
	case 0:
		return 0, hsync.ErrNoActiveConfig
	case 1:
		return active[0], nil
	default:
		return 0, fmt.Errorf("%d active configurations; pass --config", len(active))
	}
}

func formatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04:05")
}

var rootCmd = &cobra.Command{
	Use:          "hsync",
	Short:        "Mirror Harvest time tracking into a local store",
	SilenceUsage: true,
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		instanceID := uuid.New().String()
		cfg := config.NewConfig(instanceID, defaults["base_dir"])

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Instance ID: %s\n", instanceID)
		fmt.Printf("Base Dir:    %s\n", defaults["base_dir"])
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := readConfig()
		if err != nil {
			return err
		}

		fmt.Printf("Instance ID: %s\n", cfg.InstanceID)
		fmt.Printf("Base Dir:    %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:     %s\n", cfg.LogDir)
		fmt.Printf("Database:    %s %s\n", cfg.Database.Type, app.DatabasePath(cfg))
		fmt.Printf("Harvest API: %s (per page %d)\n", cfg.Harvest.APIURL, cfg.Harvest.PerPage)
		for _, v := range cfg.Vaults {
			fmt.Printf("Vault:       %s (%s)\n", v.Name, v.Type)
		}
		return nil
	},
}

// keys command
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage snapshot encryption keys",
}

var keysInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate the snapshot key pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := readConfig()
		if err != nil {
			return err
		}

		pass, err := readSecret("Passphrase: ", "HSYNC_PASSPHRASE")
		if err != nil {
			return err
		}
		if os.Getenv("HSYNC_PASSPHRASE") == "" {
			confirm, err := readSecret("Repeat passphrase: ", "")
			if err != nil {
				return err
			}
			if confirm != pass {
				return fmt.Errorf("passphrases do not match")
			}
		}

		if err := app.SetupKeys(cfg, pass); err != nil {
			return err
		}
		fmt.Printf("Keys written to %s and %s\n", cfg.Encryption.PublicKeyPath, cfg.Encryption.PrivateKeyPath)
		return nil
	},
}

// account command
var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage Harvest sync configurations",
}

var accountAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a sync configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		company, _ := cmd.Flags().GetString("company")
		accountID, _ := cmd.Flags().GetString("account-id")
		apiURL, _ := cmd.Flags().GetString("api-url")
		level, _ := cmd.Flags().GetString("level")
		daysBack, _ := cmd.Flags().GetInt("days-back")
		allDates, _ := cmd.Flags().GetBool("all-dates")
		active, _ := cmd.Flags().GetBool("active")

		token, err := readSecret("Access token: ", "HSYNC_ACCESS_TOKEN")
		if err != nil {
			return err
		}

		a, err := newApp("CreateSyncConfig")
		if err != nil {
			return err
		}
		defer a.Close()

		cfg, err := a.CreateSyncConfig(hsync.NewSyncConfig{
			Company:      company,
			AccountID:    accountID,
			AccessToken:  token,
			APIURL:       apiURL,
			SyncDaysBack: daysBack,
			SyncAllDates: allDates,
			SyncLevel:    level,
			Active:       active,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created configuration #%d for %s (%s)\n", cfg.ID, cfg.Company, cfg.SyncLevel)
		return nil
	},
}

var accountListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sync configurations",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListSyncConfigs")
		if err != nil {
			return err
		}
		defer a.Close()

		configs, err := a.ListSyncConfigs()
		if err != nil {
			return err
		}
		if len(configs) == 0 {
			fmt.Println("No sync configurations.")
			return nil
		}

		for _, c := range configs {
			state := "inactive"
			if c.Active {
				state = "active"
			}
			lastSync := "never"
			if c.LastSync.Valid {
				lastSync = formatTime(c.LastSync.Time)
			}
			fmt.Printf("#%d  %-15s  account %-10s  %-8s  %-8s  last sync %s\n",
				c.ID, c.Company, c.AccountID, c.SyncLevel, state, lastSync)
		}
		return nil
	},
}

func setActiveCmd(use string, active bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID",
		Short: strings.ToUpper(use[:1]) + use[1:] + " a sync configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := newApp("SetSyncConfigActive")
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.SetSyncConfigActive(id, active); err != nil {
				return err
			}
			fmt.Printf("Configuration #%d %sd\n", id, use)
			return nil
		},
	}
}

var accountTestCmd = &cobra.Command{
	Use:   "test ID",
	Short: "Check that the credentials reach the Harvest account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		a, err := newApp("TestConnection")
		if err != nil {
			return err
		}
		defer a.Close()

		ctx, cancel := signalContext()
		defer cancel()
		if err := a.TestConnection(ctx, id); err != nil {
			return err
		}
		fmt.Println("Connection ok.")
		return nil
	},
}

var accountCheckCmd = &cobra.Command{
	Use:   "check ID",
	Short: "Probe the permissions of the access token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		a, err := newApp("CheckAccess")
		if err != nil {
			return err
		}
		defer a.Close()

		ctx, cancel := signalContext()
		defer cancel()
		access, err := a.CheckAccess(ctx, id)
		if err != nil {
			return err
		}
		user := access.CurrentUserID
		if user == "" {
			user = "unknown"
		}
		fmt.Printf("Current user:  %s\n", user)
		fmt.Printf("Users:         %t\n", access.CanAccessUsers)
		fmt.Printf("Projects:      %t\n", access.CanAccessProjects)
		fmt.Printf("All time:      %t\n", access.CanAccessAllTime)
		fmt.Printf("Sync level:    %s\n", access.Level)
		return nil
	},
}

// sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pull Harvest data into the mirror store",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetInt64("config")

		a, err := newApp("Sync")
		if err != nil {
			return err
		}
		defer a.Close()

		ctx, cancel := signalContext()
		defer cancel()

		var results []*hsync.SyncResult
		if id != 0 {
			res, err := a.Sync(ctx, id)
			if err != nil {
				return err
			}
			results = append(results, res)
		} else {
			results, err = a.SyncAll(ctx)
		}

		for _, r := range results {
			fmt.Printf("#%d  %-8s  %d user(s), %d project(s), %d time entr(ies) changed in %d page(s)\n",
				r.ConfigID, r.Level, r.Users, r.Projects, r.TimeEntries, r.Pages)
		}
		return err
	},
}

// history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View sync run history",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := newApp("GetHistory")
		if err != nil {
			return err
		}
		defer a.Close()

		runs, err := a.GetHistory(limit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded.")
			return nil
		}

		for _, r := range runs {
			duration := ""
			if r.FinishedAt.Valid {
				duration = r.FinishedAt.Time.Sub(r.StartedAt).Truncate(time.Millisecond).String()
			}
			cfg := "-"
			if r.ConfigID.Valid {
				cfg = fmt.Sprintf("#%d", r.ConfigID.Int64)
			}
			fmt.Printf("#%d  %-12s  %-4s  %s  %-8s  %-8s  %s\n",
				r.ID, r.Operation, cfg, formatTime(r.StartedAt), r.Status, duration, r.Message)
		}
		return nil
	},
}

// employee command
var employeeCmd = &cobra.Command{
	Use:   "employee",
	Short: "Manage local employees",
}

var employeeAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add an employee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")

		a, err := newApp("AddEmployee")
		if err != nil {
			return err
		}
		defer a.Close()

		e, err := a.AddEmployee(args[0], email)
		if err != nil {
			return err
		}
		fmt.Printf("Added employee %s\n", e.ID)
		return nil
	},
}

var employeeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List employees",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListEmployees")
		if err != nil {
			return err
		}
		defer a.Close()

		employees, err := a.ListEmployees()
		if err != nil {
			return err
		}
		for _, e := range employees {
			fmt.Printf("%s  %-25s  %s\n", e.ID, e.Name, e.WorkEmail.String)
		}
		return nil
	},
}

// project command
var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage local projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("AddProject")
		if err != nil {
			return err
		}
		defer a.Close()

		p, err := a.AddProject(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Added project %s\n", p.ID)
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListProjects")
		if err != nil {
			return err
		}
		defer a.Close()

		projects, err := a.ListProjects()
		if err != nil {
			return err
		}
		for _, p := range projects {
			fmt.Printf("%s  %s\n", p.ID, p.Name)
		}
		return nil
	},
}

// task command
var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage project tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add PROJECT_ID NAME",
	Short: "Add a task to a project",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sequence, _ := cmd.Flags().GetInt64("sequence")
		folded, _ := cmd.Flags().GetBool("folded")

		a, err := newApp("AddTask")
		if err != nil {
			return err
		}
		defer a.Close()

		t, err := a.AddTask(args[0], args[1], sequence, folded)
		if err != nil {
			return err
		}
		fmt.Printf("Added task %s\n", t.ID)
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list PROJECT_ID",
	Short: "List the tasks of a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListTasks")
		if err != nil {
			return err
		}
		defer a.Close()

		tasks, err := a.ListTasks(args[0])
		if err != nil {
			return err
		}
		for _, t := range tasks {
			stage := "open"
			if t.StageFolded {
				stage = "folded"
			}
			fmt.Printf("%s  %4d  %-6s  %s\n", t.ID, t.Sequence, stage, t.Name)
		}
		return nil
	},
}

// line command
var lineCmd = &cobra.Command{
	Use:   "line",
	Short: "Manage sale order lines",
}

var lineAddCmd = &cobra.Command{
	Use:   "add PROJECT_ID NAME",
	Short: "Add a sale order line to a project",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, _ := cmd.Flags().GetString("state")

		a, err := newApp("AddSaleOrderLine")
		if err != nil {
			return err
		}
		defer a.Close()

		l, err := a.AddSaleOrderLine(args[0], args[1], state)
		if err != nil {
			return err
		}
		fmt.Printf("Added sale order line %d\n", l.ID)
		return nil
	},
}

var lineListCmd = &cobra.Command{
	Use:   "list PROJECT_ID",
	Short: "List the sale order lines of a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListSaleOrderLines")
		if err != nil {
			return err
		}
		defer a.Close()

		lines, err := a.ListSaleOrderLines(args[0])
		if err != nil {
			return err
		}
		for _, l := range lines {
			fmt.Printf("%d  %-6s  %s\n", l.ID, l.State, l.Name)
		}
		return nil
	},
}

// mirror command
var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Inspect mirrored Harvest records",
}

var mirrorUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List mirrored users",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListMirrorUsers")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := configID(cmd, a)
		if err != nil {
			return err
		}
		users, err := a.ListMirrorUsers(id)
		if err != nil {
			return err
		}
		for _, u := range users {
			kind := "full"
			if u.IsProxy {
				kind = "proxy"
			}
			fmt.Printf("%-10s  %-5s  %-25s  %-30s  %s\n", u.ExternalID, kind, u.Name, u.Email.String, u.EmployeeID.String)
		}
		return nil
	},
}

var mirrorProjectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List mirrored projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListMirrorProjects")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := configID(cmd, a)
		if err != nil {
			return err
		}
		projects, err := a.ListMirrorProjects(id)
		if err != nil {
			return err
		}
		for _, p := range projects {
			kind := "full"
			if p.IsProxy {
				kind = "proxy"
			}
			fmt.Printf("%-10s  %-5s  %-10s  %-30s  %s\n", p.ExternalID, kind, p.Code, p.Name, p.ProjectID.String)
		}
		return nil
	},
}

var mirrorEntriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List mirrored time entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListMirrorTimeEntries")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := configID(cmd, a)
		if err != nil {
			return err
		}
		entries, err := a.ListMirrorTimeEntries(id)
		if err != nil {
			return err
		}
		for _, e := range entries {
			sheet := "pending"
			if e.TimesheetID.Valid {
				sheet = "timesheet " + e.TimesheetID.String
			}
			fmt.Printf("%s  %-10s  %s  %6.2f  %-40s  %s\n", e.ID, e.ExternalID, e.SpentDate, e.Hours, e.Notes.String, sheet)
		}
		return nil
	},
}

// link command
var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link mirrored records to the local domain",
}

var linkProjectCmd = &cobra.Command{
	Use:   "project EXTERNAL_ID PROJECT_ID",
	Short: "Link a mirrored project to a local project",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("LinkMirrorProject")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := configID(cmd, a)
		if err != nil {
			return err
		}
		if _, err := a.LinkMirrorProject(id, args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Linked Harvest project %s to %s\n", args[0], args[1])
		return nil
	},
}

var linkUserCmd = &cobra.Command{
	Use:   "user EXTERNAL_ID EMPLOYEE_ID",
	Short: "Link a mirrored user to an employee",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("LinkMirrorUser")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := configID(cmd, a)
		if err != nil {
			return err
		}
		if _, err := a.LinkMirrorUser(id, args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Linked Harvest user %s to %s\n", args[0], args[1])
		return nil
	},
}

// timesheets command
var timesheetsCmd = &cobra.Command{
	Use:   "timesheets",
	Short: "Project time entries into timesheets",
}

var timesheetsCreateCmd = &cobra.Command{
	Use:   "create [ENTRY_ID...]",
	Short: "Create timesheets for the given entries, or every pending entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, _ := cmd.Flags().GetString("mode")
		task, _ := cmd.Flags().GetString("task")
		line, _ := cmd.Flags().GetInt64("line")
		opts := hsync.ProjectionOptions{
			Mode:            hsync.ProjectionMode(mode),
			TaskID:          task,
			SaleOrderLineID: line,
		}

		a, err := newApp("CreateTimesheets")
		if err != nil {
			return err
		}
		defer a.Close()

		var created int
		if len(args) > 0 {
			created, err = a.CreateTimesheets(args, opts)
		} else {
			id, cerr := configID(cmd, a)
			if cerr != nil {
				return cerr
			}
			created, err = a.CreatePendingTimesheets(id, opts)
		}
		if err != nil {
			return err
		}
		fmt.Printf("Created %d timesheet(s)\n", created)
		return nil
	},
}

var timesheetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List timesheets",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListTimesheets")
		if err != nil {
			return err
		}
		defer a.Close()

		sheets, err := a.ListTimesheets()
		if err != nil {
			return err
		}
		if len(sheets) == 0 {
			fmt.Println("No timesheets.")
			return nil
		}
		for _, ts := range sheets {
			fmt.Printf("%s  %s  %6.2f  %-40s  project %s  employee %s\n",
				ts.ID, ts.Date, ts.Hours, ts.Name, ts.ProjectID, ts.EmployeeID)
		}
		return nil
	},
}

// snapshot command
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage mirror store snapshots",
}

var snapshotRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore the mirror store from the vault",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		cfg, err := readConfig()
		if err != nil {
			return err
		}
		if out == "" {
			out = app.DatabasePath(cfg)
		}

		pass, err := readSecret("Passphrase: ", "HSYNC_PASSPHRASE")
		if err != nil {
			return err
		}
		if err := app.RestoreSnapshot(cfg, pass, out); err != nil {
			return err
		}
		fmt.Printf("Restored snapshot to %s\n", out)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	keysCmd.AddCommand(keysInitCmd)

	// account subcommands
	accountCmd.AddCommand(accountAddCmd)
	accountAddCmd.Flags().String("company", "", "Company the configuration belongs to (default \"default\")")
	accountAddCmd.Flags().String("account-id", "", "Harvest account id")
	accountAddCmd.Flags().String("api-url", "", "Harvest API base URL")
	accountAddCmd.Flags().String("level", hsync.LevelMyTime, "Sync level: my_time, all_time or full")
	accountAddCmd.Flags().Int("days-back", hsync.DefaultSyncDaysBack, "Days of time entries to sync")
	accountAddCmd.Flags().Bool("all-dates", false, "Sync every time entry regardless of date")
	accountAddCmd.Flags().Bool("active", true, "Activate the configuration")
	accountAddCmd.MarkFlagRequired("account-id")
	accountCmd.AddCommand(accountListCmd)
	accountCmd.AddCommand(setActiveCmd("activate", true))
	accountCmd.AddCommand(setActiveCmd("deactivate", false))
	accountCmd.AddCommand(accountTestCmd)
	accountCmd.AddCommand(accountCheckCmd)

	syncCmd.Flags().Int64("config", 0, "Sync only this configuration (default: every active one)")
	historyCmd.Flags().IntP("limit", "n", 50, "Maximum number of runs to show")

	employeeCmd.AddCommand(employeeAddCmd)
	employeeAddCmd.Flags().String("email", "", "Work email used to link Harvest users")
	employeeCmd.AddCommand(employeeListCmd)

	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectListCmd)

	taskCmd.AddCommand(taskAddCmd)
	taskAddCmd.Flags().Int64("sequence", 10, "Ordering of the task within the project")
	taskAddCmd.Flags().Bool("folded", false, "Task stage is closed")
	taskCmd.AddCommand(taskListCmd)

	lineCmd.AddCommand(lineAddCmd)
	lineAddCmd.Flags().String("state", hsync.LineSale, "Line state: draft, sale, done or cancel")
	lineCmd.AddCommand(lineListCmd)

	for _, c := range []*cobra.Command{mirrorUsersCmd, mirrorProjectsCmd, mirrorEntriesCmd, linkProjectCmd, linkUserCmd, timesheetsCreateCmd} {
		c.Flags().Int64("config", 0, "Sync configuration id (default: the only active one)")
	}
	mirrorCmd.AddCommand(mirrorUsersCmd, mirrorProjectsCmd, mirrorEntriesCmd)
	linkCmd.AddCommand(linkProjectCmd, linkUserCmd)

	timesheetsCmd.AddCommand(timesheetsCreateCmd)
	timesheetsCreateCmd.Flags().String("mode", string(hsync.ModeAuto), "Task and line assignment: auto or manual")
	timesheetsCreateCmd.Flags().String("task", "", "Task id for manual mode")
	timesheetsCreateCmd.Flags().Int64("line", 0, "Sale order line id for manual mode")
	timesheetsCmd.AddCommand(timesheetsListCmd)

	snapshotCmd.AddCommand(snapshotRestoreCmd)
	snapshotRestoreCmd.Flags().String("out", "", "Where to write the restored database (default: the configured database path)")

	// root commands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(employeeCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(lineCmd)
	rootCmd.AddCommand(mirrorCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(timesheetsCmd)
	rootCmd.AddCommand(snapshotCmd)
}
