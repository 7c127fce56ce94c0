package cli

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iudanet/plantkeeper/internal/client/iocli"
)

const (
	defaultServerURL = "http://localhost:8080"
	defaultDBPath    = "plantkeeper-client.db"
	defaultLogLevel  = "warn"
)

// runner хранит глобальные флаги и открытое приложение на время одной команды
type runner struct {
	stdio iocli.IO
	app   *App
	opts  Options
}

// Execute разбирает аргументы и выполняет команду
func Execute(ctx context.Context, stdio iocli.IO, version string) error {
	r := &runner{stdio: stdio}
	root := newRootCommand(r, version)

	err := root.ExecuteContext(ctx)

	if r.app != nil {
		if closeErr := r.app.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}

	return err
}

func newRootCommand(r *runner, version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "plantkeeper",
		Short:         "PlantKeeper keeps track of your garden and reminds you to water it",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			app, err := Open(cmd.Context(), r.opts, r.stdio, os.Stderr)
			if err != nil {
				return err
			}
			r.app = app
			return nil
		},
	}
	root.SetOut(r.stdio)

	flags := root.PersistentFlags()
	flags.StringVar(&r.opts.ServerURL, "server", envOr("PLANTKEEPER_SERVER", defaultServerURL), "Server URL")
	flags.StringVar(&r.opts.DBPath, "db", envOr("PLANTKEEPER_DB", defaultDBPath), "Path to local database")
	flags.StringVar(&r.opts.LogLevel, "log-level", defaultLogLevel, "Log level: debug, info, warn, error")

	root.AddCommand(
		r.registerCommand(),
		r.loginCommand(),
		r.simpleCommand("logout", "Logout and delete local data", func(ctx context.Context, c *Cli) error { return c.runLogout(ctx) }),
		r.simpleCommand("status", "Show authentication status", func(ctx context.Context, c *Cli) error { return c.runStatus(ctx) }),
		r.profileCommand(),
		r.zoneCommand(),
		r.gardenCommand(),
		r.photosCommand(),
		r.remindersCommand(),
		r.simpleCommand("remind", "Deliver watering reminders until interrupted", func(ctx context.Context, c *Cli) error { return c.runRemind(ctx) }),
		r.simpleCommand("sync", "Synchronize the local garden with the server", func(ctx context.Context, c *Cli) error { return c.runSync(ctx) }),
	)

	return root
}

func (r *runner) simpleCommand(use, short string, run func(ctx context.Context, c *Cli) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), r.app.Cli)
		},
	}
}

func (r *runner) registerCommand() *cobra.Command {
	var flags RegisterFlags

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.app.runRegister(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&flags.DisplayName, "name", "", "Display name")
	cmd.Flags().StringVar(&flags.ZipCode, "zip", "", "5-digit zip code")
	addPasswordFlags(cmd, &flags.Passwords)

	return cmd
}

func (r *runner) loginCommand() *cobra.Command {
	var flags LoginFlags

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.app.runLogin(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.Email, "email", "", "Account email")
	addPasswordFlags(cmd, &flags.Passwords)

	return cmd
}

func addPasswordFlags(cmd *cobra.Command, p *Passwords) {
	cmd.Flags().StringVar(&p.FromArgs, "password", "", "Password (not recommended, use "+PasswordEnv+" or --password-file)")
	cmd.Flags().StringVar(&p.FromFile, "password-file", "", "Path to file containing the password")
}

func (r *runner) profileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.app.runProfile(cmd.Context(), ProfileFlags{
				DisplayName: stringFlag(cmd, "name"),
				ZipCode:     stringFlag(cmd, "zip"),
			})
		},
	}

	cmd.Flags().String("name", "", "New display name")
	cmd.Flags().String("zip", "", "New 5-digit zip code")

	return cmd
}

func (r *runner) zoneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "zone [zip]",
		Short: "Look up the USDA hardiness zone (defaults to your profile zip code)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zip := ""
			if len(args) == 1 {
				zip = args[0]
			}
			return r.app.runZone(cmd.Context(), zip)
		},
	}
}

func (r *runner) gardenCommand() *cobra.Command {
	garden := &cobra.Command{
		Use:   "garden",
		Short: "Manage the plants in your garden",
	}

	garden.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List saved plants",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return r.app.runGardenList(cmd.Context())
			},
		},
		r.idCommand("show <id>", "Show plant details", func(ctx context.Context, c *Cli, id int64) error { return c.runGardenShow(ctx, id) }),
		r.gardenAddCommand(),
		r.gardenUpdateCommand(),
		r.idCommand("remove <id>", "Remove a plant and its photos", func(ctx context.Context, c *Cli, id int64) error { return c.runGardenRemove(ctx, id) }),
		r.idCommand("water <id>", "Mark a plant as watered now", func(ctx context.Context, c *Cli, id int64) error { return c.runGardenWater(ctx, id) }),
		&cobra.Command{
			Use:   "cover <id> <image>",
			Short: "Set the cover photo of a plant",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return r.app.runGardenCover(cmd.Context(), id, args[1])
			},
		},
	)

	return garden
}

func (r *runner) idCommand(use, short string, run func(ctx context.Context, c *Cli, id int64) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return run(cmd.Context(), r.app.Cli, id)
		},
	}
}

func (r *runner) gardenAddCommand() *cobra.Command {
	var plantID int64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a catalog plant (--plant-id) or a custom plant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := plantFlags(cmd)
			flags.PlantID = plantID
			return r.app.runGardenAdd(cmd.Context(), flags)
		},
	}

	cmd.Flags().Int64Var(&plantID, "plant-id", 0, "Catalog plant id (0 for a custom plant)")
	addPlantFlags(cmd)

	return cmd
}

func (r *runner) gardenUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a plant. Name and care fields apply to custom plants only",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return r.app.runGardenUpdate(cmd.Context(), id, plantFlags(cmd))
		},
	}

	addPlantFlags(cmd)

	return cmd
}

func addPlantFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("name", "", "Common name")
	f.String("scientific", "", "Scientific name")
	f.String("nickname", "", "Nickname")
	f.String("notes", "", "Notes")
	f.String("watering", "", "Watering needs (custom plants)")
	f.String("sunlight", "", "Sunlight needs (custom plants)")
	f.String("cycle", "", "Life cycle (custom plants)")
	f.String("care-level", "", "Care level (custom plants)")
	f.Int("frequency", 0, "Watering frequency in days")
	f.Bool("remind", false, "Enable daily watering reminder")
}

// plantFlags собирает только явно заданные флаги
func plantFlags(cmd *cobra.Command) PlantFlags {
	flags := PlantFlags{
		CommonName:     stringFlag(cmd, "name"),
		ScientificName: stringFlag(cmd, "scientific"),
		Nickname:       stringFlag(cmd, "nickname"),
		Notes:          stringFlag(cmd, "notes"),
		Watering:       stringFlag(cmd, "watering"),
		Sunlight:       stringFlag(cmd, "sunlight"),
		Cycle:          stringFlag(cmd, "cycle"),
		CareLevel:      stringFlag(cmd, "care-level"),
	}

	if cmd.Flags().Changed("frequency") {
		v, _ := cmd.Flags().GetInt("frequency")
		flags.Frequency = &v
	}
	if cmd.Flags().Changed("remind") {
		v, _ := cmd.Flags().GetBool("remind")
		flags.Remind = &v
	}

	return flags
}

func stringFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func (r *runner) photosCommand() *cobra.Command {
	photos := &cobra.Command{
		Use:   "photos",
		Short: "Manage plant photos",
	}

	var caption string
	add := &cobra.Command{
		Use:   "add <plant-id> <image>",
		Short: "Upload a photo",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return r.app.runPhotosAdd(cmd.Context(), id, args[1], caption)
		},
	}
	add.Flags().StringVar(&caption, "caption", "", "Photo caption")

	photos.AddCommand(
		r.idCommand("list <plant-id>", "List photos, newest first", func(ctx context.Context, c *Cli, id int64) error { return c.runPhotosList(ctx, id) }),
		add,
		&cobra.Command{
			Use:   "delete <plant-id> <photo-id>",
			Short: "Delete a photo",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				plantID, err := parseID(args[0])
				if err != nil {
					return err
				}
				photoID, err := parseID(args[1])
				if err != nil {
					return err
				}
				return r.app.runPhotosDelete(cmd.Context(), plantID, photoID)
			},
		},
	)

	return photos
}

func (r *runner) remindersCommand() *cobra.Command {
	reminders := &cobra.Command{
		Use:   "reminders",
		Short: "Watering reminders",
	}

	var frequency int
	enable := &cobra.Command{
		Use:   "enable <id>",
		Short: "Enable the daily reminder for a plant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return r.app.runRemindersEnable(cmd.Context(), id, frequency)
		},
	}
	enable.Flags().IntVar(&frequency, "frequency", 0, "Watering frequency in days")

	reminders.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List reminders, most overdue first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return r.app.runRemindersList(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "time [HH:MM]",
			Short: "Show or set the daily reminder time",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				value := ""
				if len(args) == 1 {
					value = strings.TrimSpace(args[0])
				}
				return r.app.runRemindersTime(cmd.Context(), value)
			},
		},
		enable,
		r.idCommand("disable <id>", "Disable the reminder for a plant", func(ctx context.Context, c *Cli, id int64) error { return c.runRemindersDisable(ctx, id) }),
	)

	return reminders
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
