// Root command for the stockroom CLI. Running it with no subcommand starts
// the interactive terminal session.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dukaforge/stockroom/internal/logging"
	"github.com/dukaforge/stockroom/internal/sqlite"
	"github.com/dukaforge/stockroom/internal/ui"
)

const version = "0.1.0"

const logFileName = "stockroom.log"

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagMemory    bool
)

var rootCmd = &cobra.Command{
	Use:     "stockroom",
	Short:   "Stockroom is a terminal inventory manager",
	Long: `Stockroom manages an inventory of items and storage locations from the
terminal: create, list, search, and edit both, with items optionally placed
at a location. State is kept in a local SQLite database.`,
	Version: version,
	RunE:    runSession,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.stockroom)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.stockroom-db)")
	rootCmd.PersistentFlags().BoolVar(&flagMemory, "memory", false, "keep the inventory in memory for this session only")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("stockroom v" + version)
	},
}

// runSession wires config, logger, store, and navigator together, then hands
// the terminal to Bubble Tea until the screen stack empties.
func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Logs go to a file: the TUI owns stdout for the whole session.
	logDir := cfg.DataDir
	if logDir == "" {
		logDir = "."
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	log, err := logging.NewFile(filepath.Join(logDir, logFileName))
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer log.Sync()

	store := sqlite.NewBackend(logging.Named(log, "sqlite"))
	if err := store.Attach(cfg); err != nil {
		return fmt.Errorf("attach store: %w", err)
	}
	defer store.Detach()

	nav := ui.New(store, logging.Named(log, "ui"))
	if _, err := tea.NewProgram(nav, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run session: %w", err)
	}
	return nil
}
