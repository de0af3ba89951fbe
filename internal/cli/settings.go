package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/k1ngsterr1/quick-notes/internal/middleware"
	"github.com/k1ngsterr1/quick-notes/internal/models"
	"github.com/k1ngsterr1/quick-notes/internal/services"
)

func (a *App) settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change settings",
		Long:  "Without flags, print the settings. Any flag given is updated; the rest are kept.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var update services.SettingsUpdate
			changed := false
			flags := cmd.Flags()

			if flags.Changed("name") {
				v, _ := flags.GetString("name")
				update.Name = &v
				changed = true
			}
			if flags.Changed("currency") {
				v, _ := flags.GetString("currency")
				update.Currency = &v
				changed = true
			}
			if flags.Changed("risk") {
				v, _ := flags.GetFloat64("risk")
				update.RiskPerTrade = &v
				changed = true
			}
			if flags.Changed("account-size") {
				v, _ := flags.GetFloat64("account-size")
				update.AccountSize = &v
				changed = true
			}
			if flags.Changed("dark-mode") {
				v, _ := flags.GetBool("dark-mode")
				update.DarkMode = &v
				changed = true
			}
			if flags.Changed("show-pnl") {
				v, _ := flags.GetBool("show-pnl")
				update.ShowPnLInHome = &v
				changed = true
			}

			var settings *models.UserSettings
			var err error
			if changed {
				settings, err = a.Settings.Update(cmd.Context(), update)
			} else {
				settings, err = a.Settings.Get(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}

			w := a.out()
			if changed {
				fmt.Fprintln(w, "✓ Settings updated")
			}
			fmt.Fprintf(w, "Name:           %s\n", settings.Name)
			fmt.Fprintf(w, "Currency:       %s\n", settings.Currency)
			fmt.Fprintf(w, "Risk per trade: %g%%\n", settings.RiskPerTrade)
			fmt.Fprintf(w, "Account size:   %.2f\n", settings.AccountSize)
			fmt.Fprintf(w, "Dark mode:      %t\n", settings.DarkMode)
			fmt.Fprintf(w, "Show PnL:       %t\n", settings.ShowPnLInHome)
			return nil
		},
	}
	cmd.Flags().String("name", "", "Display name")
	cmd.Flags().String("currency", "", "ISO 4217 currency code")
	cmd.Flags().Float64("risk", 0, "Risk per trade, percent of account")
	cmd.Flags().Float64("account-size", 0, "Account size")
	cmd.Flags().Bool("dark-mode", true, "Dark mode")
	cmd.Flags().Bool("show-pnl", true, "Show PnL on the home screen")
	return cmd
}

func (a *App) tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a device token for the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			device, _ := cmd.Flags().GetString("device")
			ttl, _ := cmd.Flags().GetDuration("ttl")
			if ttl <= 0 {
				ttl = a.TokenTTL
			}
			if a.JWTSecret == "" {
				return fmt.Errorf("JWT_SECRET is not set\nHint: the API is open without it; set JWT_SECRET to require tokens")
			}

			token, err := middleware.GenerateDeviceToken(a.JWTSecret, device, ttl)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}
			fmt.Fprintln(a.out(), token)
			return nil
		},
	}
	cmd.Flags().String("device", "default", "Device name stored in the token")
	cmd.Flags().Duration("ttl", time.Duration(0), "Token lifetime (default JWT_EXPIRES_IN)")
	return cmd
}
