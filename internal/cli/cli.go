// Package cli implements the journal terminal commands.
package cli

import (
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/k1ngsterr1/quick-notes/internal/models"
	"github.com/k1ngsterr1/quick-notes/internal/services"
)

// App carries the services the commands run against.
type App struct {
	Records   services.RecordServicer
	Settings  services.SettingsServicer
	JWTSecret string
	TokenTTL  time.Duration
	Out       io.Writer
}

func (a *App) out() io.Writer {
	if a.Out == nil {
		return os.Stdout
	}
	return a.Out
}

// NewRootCmd builds the journal command tree.
func NewRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "journal",
		Short:         "Quick Notes - trade and note journal",
		Long:          "Record trades, notes and formulas, search them, and review trading statistics.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(app.out())

	rootCmd.AddCommand(app.listCmd())
	rootCmd.AddCommand(app.addCmd())
	rootCmd.AddCommand(app.rmCmd())
	rootCmd.AddCommand(app.recentCmd())
	rootCmd.AddCommand(app.statsCmd())
	rootCmd.AddCommand(app.settingsCmd())
	rootCmd.AddCommand(app.tokenCmd())
	return rootCmd
}

var kindColors = map[models.Kind]*color.Color{
	models.KindLong:    color.New(color.FgGreen),
	models.KindShort:   color.New(color.FgRed),
	models.KindFormula: color.New(color.FgBlue),
	models.KindNote:    color.New(color.FgYellow),
}

func colorKind(k models.Kind) string {
	if c, ok := kindColors[k]; ok {
		return c.Sprint(string(k))
	}
	return string(k)
}

func colorPnL(pnl string) string {
	switch {
	case pnl == "":
		return "-"
	case pnl[0] == '-':
		return color.New(color.FgRed).Sprint(pnl)
	default:
		return color.New(color.FgGreen).Sprint(pnl)
	}
}
