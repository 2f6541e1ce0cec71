// Package cmd wires the agetick commands.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	errUtils "github.com/agetick/agetick/errors"
	"github.com/agetick/agetick/internal/tui/glyph"
	"github.com/agetick/agetick/internal/tui/prompt"
	"github.com/agetick/agetick/internal/tui/ticker"
	tuiUtils "github.com/agetick/agetick/internal/tui/utils"
	cfgPkg "github.com/agetick/agetick/pkg/config"
	"github.com/agetick/agetick/pkg/dob"
	log "github.com/agetick/agetick/pkg/logger"
	"github.com/agetick/agetick/pkg/schema"
	"github.com/agetick/agetick/pkg/version"
)

var (
	flagFile   string
	flagDob    string
	flagTob    string
	flagMillis bool
	flagFont   string
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "agetick",
	Short: "Watch your age tick by in big ASCII digits",
	Long: `Agetick records your date/time of birth, persists it locally, and displays
a continuously updating age ticker (years, months, days, hours, minutes,
seconds) rendered as large ASCII-art digits until you quit with ESC.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTicker()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	cc.Init(&cc.Config{
		RootCmd:  RootCmd,
		Headings: cc.HiCyan + cc.Bold + cc.Underline,
		Commands: cc.HiGreen + cc.Bold,
		Example:  cc.Italic,
		ExecName: cc.Bold,
		Flags:    cc.Bold,
	})

	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().StringVar(&flagFile, "file", "", "path of the persisted birth record")
	RootCmd.PersistentFlags().StringVar(&flagDob, "dob", "", "date of birth (dd/mm/yyyy), skips the prompt")
	RootCmd.PersistentFlags().StringVar(&flagTob, "tob", "", "time of birth (hh:mm:ss), defaults to noon")
	RootCmd.PersistentFlags().BoolVar(&flagMillis, "millis", false, "show milliseconds")
	RootCmd.PersistentFlags().StringVar(&flagFont, "font", "", "figlet font for the big digits")
}

// loadConfiguration resolves the configuration and applies flag overrides.
func loadConfiguration() (schema.Configuration, error) {
	cfg, err := cfgPkg.Load()
	if err != nil {
		return schema.Configuration{}, err
	}
	if flagFile != "" {
		cfg.DataFile = flagFile
	}
	if flagMillis {
		cfg.ShowMillis = true
	}
	if flagFont != "" {
		cfg.Font = flagFont
	}
	if err := log.Configure(cfg.Logs); err != nil {
		return schema.Configuration{}, err
	}
	return cfg, nil
}

// resolveRecord produces the validated birth record: from the --dob/--tob
// flags when given, otherwise interactively with the stored record as the
// default. The record is persisted before returning.
func resolveRecord(cfg schema.Configuration, interactive bool) (dob.Record, error) {
	store := dob.NewStore(cfg.DataFile)

	if flagDob != "" {
		r, err := prompt.FromStrings(flagDob, flagTob)
		if err != nil {
			return dob.Record{}, err
		}
		_ = store.Save(r) // save failures are logged, not fatal
		return r, nil
	}

	if !interactive {
		if stored, ok := store.Load(); ok {
			return stored, nil
		}
		return dob.Record{}, errUtils.Wrap(errUtils.ErrNoBirthRecord, "pass --dob dd/mm/yyyy")
	}

	var def *dob.Record
	if stored, ok := store.Load(); ok {
		def = &stored
	}
	r, err := prompt.Run(def)
	if err != nil {
		return dob.Record{}, err
	}
	_ = store.Save(r)
	return r, nil
}

func runTicker() error {
	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errUtils.Wrap(errUtils.ErrTTYRequired, "use 'agetick snapshot' for non-interactive output")
	}

	fmt.Println()
	if err := tuiUtils.PrintStyledText("AGETICK"); err != nil {
		log.Debug("could not print splash", "error", err)
	}

	record, err := resolveRecord(cfg, true)
	if err != nil {
		return err
	}

	model := ticker.New(record.Time(), cfg.TickInterval, cfg.ShowMillis, glyph.NewFigureRenderer(cfg.Font))
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return errUtils.Wrap(err, "run ticker")
	}

	// One final snapshot after the alt screen closes.
	if m, ok := final.(*ticker.Model); ok && m.Stopped() {
		fmt.Printf("agetick v%s\n\n", version.Version)
		fmt.Print(m.Snapshot())
	}
	return nil
}
