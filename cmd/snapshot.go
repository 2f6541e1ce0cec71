package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agetick/agetick/internal/tui/glyph"
	"github.com/agetick/agetick/internal/tui/ticker"
)

// snapshotCmd prints one big-digit breakdown and exits. It needs no terminal,
// so it works in pipes and scripts.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print a single age breakdown and exit",
	Long: `Snapshot computes the elapsed time since the stored birth record (or the
one given via --dob/--tob) and prints it once as large ASCII-art digits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration()
		if err != nil {
			return err
		}

		record, err := resolveRecord(cfg, false)
		if err != nil {
			return err
		}

		model := ticker.New(record.Time(), cfg.TickInterval, cfg.ShowMillis, glyph.NewFigureRenderer(cfg.Font))
		model.Init() // samples the clock once
		fmt.Print(model.Snapshot())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(snapshotCmd)
}
