package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"task-manager/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	config *config.Config
	opener Opener
	out    io.Writer

	app     *App
	closeFn func() error
}

// NewRootCommand creates the root cobra command with global flags. The API is
// opened by opener once flags have been applied to cfg.
func NewRootCommand(cfg *config.Config, opener Opener, out io.Writer) *RootCommand {
	if out == nil {
		out = os.Stdout
	}
	root := &RootCommand{
		config: cfg,
		opener: opener,
		out:    out,
	}

	root.cmd = &cobra.Command{
		Use:   "tm",
		Short: "A command-line task manager",
		Long: `Task Manager (tm) keeps a list of to-do tasks with a name, a description
and a progress status: Pendente, Em andamento or Concluída.

EXAMPLES:
  tm add "Buy milk" "2 liters"             # Create a pending task
  tm list                                  # List every task
  tm list --status Concluída               # List completed tasks
  tm edit 1735689600000 --status completed # Change a task's status
  tm delete 1735689600000                  # Delete a task
  tm export --format csv > tasks.csv       # Export tasks
  tm stats                                 # Count tasks per status

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > config file > defaults
  The config file is ~/.tm/config.yaml, or the path in TM_CONFIG. A .env file in the
  working directory is loaded into the environment first.

  Storage Configuration:
    TM_STORAGE_BACKEND                     sqlite or memory (default: sqlite)
    TM_STORAGE_DIR                         Storage directory (default: ~/.tm)
    TM_STORAGE_FILENAME                    Database filename (default: tm.db)
    TM_STORAGE_SLOT_KEY                    Slot holding the task list (default: tarefas)
    TM_STORAGE_WRITE_TIMEOUT               Slot read/write timeout (default: 5s)

  Display Configuration:
    TM_DISPLAY_DATE_FORMAT                 Created date layout (default: 02/01/2006)
    TM_DISPLAY_STATUS_WIDTH                Status column width (default: 14)

  Validation Configuration:
    TM_VALIDATION_NAME_MAX                 Max task name length, 0 for no limit (default: 0)
    TM_VALIDATION_DESCRIPTION_MAX          Max description length, 0 for no limit (default: 0)
    TM_VALIDATION_STRICT_EDIT              Re-validate fields when an edit is saved (default: false)

  Application Configuration:
    TM_APP_TIMEOUT                         Command timeout (default: 30s)
    TM_APP_VERBOSE                         Enable verbose logging (default: false)
    TM_DEBUG                               Enable debug logging`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := root.applyFlags(); err != nil {
				return err
			}
			return root.open(cmd.Context())
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// SetArgs sets the arguments used by Execute instead of os.Args
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Execute runs the root command and closes the storage it opened
func (r *RootCommand) Execute() error {
	err := r.cmd.ExecuteContext(context.Background())
	if closeErr := r.close(); err == nil {
		err = closeErr
	}
	return err
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Storage configuration
	flags.String("backend", "", "Storage backend, sqlite or memory (overrides TM_STORAGE_BACKEND)")
	flags.String("storage-dir", "", "Storage directory (overrides TM_STORAGE_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TM_STORAGE_FILENAME)")
	flags.String("slot-key", "", "Slot holding the task list (overrides TM_STORAGE_SLOT_KEY)")
	flags.Duration("write-timeout", 0, "Slot read/write timeout (overrides TM_STORAGE_WRITE_TIMEOUT)")

	// Display configuration
	flags.String("date-format", "", "Created date layout (overrides TM_DISPLAY_DATE_FORMAT)")

	// Validation configuration
	flags.Bool("strict-edit", false, "Re-validate fields when an edit is saved (overrides TM_VALIDATION_STRICT_EDIT)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Command timeout (overrides TM_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose logging (overrides TM_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:   "add <name> <description>",
		Short: "Create a task",
		Long:  "Create a pending task. Both the name and the description are required.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			return NewAddCommand(r.app).Execute(ctx, args)
		},
	}

	var listStatus string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks in creation order, optionally filtered by status.

Status values: todos (all), Pendente, Em andamento, Concluída.
English names are accepted too: all, pending, in-progress, completed.

Examples:
  tm list
  tm list --status pending`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			handler := NewListCommand(r.app)
			handler.Status = listStatus
			return handler.Execute(ctx, args)
		},
	}
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "Only list tasks in this status")

	var editName, editDescription, editStatus string
	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Long: `Change the name, description or status of a task. Flags that are not
given leave the field unchanged.

Examples:
  tm edit 1735689600000 --status "Em andamento"
  tm edit 1735689600000 --name "Buy oat milk" --description "1 liter"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			handler := NewEditCommand(r.app)
			if cmd.Flags().Changed("name") {
				handler.Name = &editName
			}
			if cmd.Flags().Changed("description") {
				handler.Description = &editDescription
			}
			if cmd.Flags().Changed("status") {
				handler.Status = &editStatus
			}
			return handler.Execute(ctx, args)
		},
	}
	editCmd.Flags().StringVar(&editName, "name", "", "New task name")
	editCmd.Flags().StringVar(&editDescription, "description", "", "New task description")
	editCmd.Flags().StringVarP(&editStatus, "status", "s", "", "New task status")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			return NewDeleteCommand(r.app).Execute(ctx, args)
		},
	}

	var exportFormat, exportStatus string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export tasks",
		Long: `Write tasks to stdout.

Supported formats:
  json - the snapshot format stored in the slot
  yaml - YAML list of tasks
  csv  - comma-separated values with a header row

Example:
  tm export --format csv > tasks.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			handler := NewExportCommand(r.app)
			handler.Format = exportFormat
			handler.Status = exportStatus
			return handler.Execute(ctx, args)
		},
	}
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", FormatJSON, "Output format: json, yaml or csv")
	exportCmd.Flags().StringVarP(&exportStatus, "status", "s", "", "Only export tasks in this status")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Count tasks per status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			return NewStatsCommand(r.app).Execute(ctx, args)
		},
	}

	r.cmd.AddCommand(
		addCmd,
		listCmd,
		editCmd,
		deleteCmd,
		exportCmd,
		statsCmd,
	)
}

// commandContext bounds a command by the configured application timeout
func (r *RootCommand) commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, r.getAppTimeout())
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 30 * time.Second
}

// applyFlags copies the global flags that were set onto the configuration
func (r *RootCommand) applyFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("backend") {
		v, _ := flags.GetString("backend")
		overrides.Backend = &v
	}
	if flags.Changed("storage-dir") {
		v, _ := flags.GetString("storage-dir")
		overrides.StorageDir = &v
	}
	if flags.Changed("db-filename") {
		v, _ := flags.GetString("db-filename")
		overrides.Filename = &v
	}
	if flags.Changed("slot-key") {
		v, _ := flags.GetString("slot-key")
		overrides.SlotKey = &v
	}
	if flags.Changed("write-timeout") {
		v, _ := flags.GetDuration("write-timeout")
		overrides.WriteTimeout = &v
	}
	if flags.Changed("date-format") {
		v, _ := flags.GetString("date-format")
		overrides.DateFormat = &v
	}
	if flags.Changed("strict-edit") {
		v, _ := flags.GetBool("strict-edit")
		overrides.StrictEdit = &v
	}
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}

	overrides.Apply(r.config)
	return r.config.Validate()
}

// open builds the API once per invocation
func (r *RootCommand) open(ctx context.Context) error {
	if r.app != nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	apiInstance, closeFn, err := r.opener(ctx, r.config)
	if err != nil {
		return err
	}
	r.app = NewAppWithOutput(apiInstance, r.config, r.out)
	r.closeFn = closeFn
	return nil
}

func (r *RootCommand) close() error {
	if r.closeFn == nil {
		return nil
	}
	err := r.closeFn()
	r.closeFn = nil
	r.app = nil
	return err
}
