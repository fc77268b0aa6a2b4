package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oh-my-opencode/portal/internal/opencode"
)

var (
	revertYes bool
)

var revertCmd = &cobra.Command{
	Use:   "revert [backup-file]",
	Short: "Restore the config from a backup",
	Long: `Revert restores oh-my-opencode.json from a backup file.

Without an argument the most recent backup is used. Backups are the
timestamped .bak files portal writes next to the config before changing
it. The backup file itself is kept after the restore.

By default, you will be prompted to confirm the restore when running in
a terminal. Use --yes to skip the confirmation prompt.

Examples:
  portal revert
  portal revert --dry-run
  portal revert --yes
  portal revert ~/.config/opencode/oh-my-opencode.json.bak.2026-08-25T10-30-00-000Z`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: CompleteBackups,
	RunE:              runRevert,
}

func init() {
	revertCmd.Flags().BoolVarP(&revertYes, "yes", "y", false, "Skip confirmation prompt")
}

func runRevert(cmd *cobra.Command, args []string) error {
	store, err := NewStoreForCommand()
	if err != nil {
		return err
	}

	var backupPath string
	if len(args) > 0 {
		backupPath = args[0]
		if _, err := os.Stat(backupPath); err != nil {
			return fmt.Errorf("Backup file not found: %s", backupPath)
		}
	} else {
		backupPath, err = store.LatestBackup()
		if err != nil {
			if errors.Is(err, opencode.ErrNoBackups) {
				return fmt.Errorf("No backup files found")
			}
			return err
		}
	}

	if GlobalOpts.DryRun {
		fmt.Printf("Dry run - would revert to: %s\n", backupPath)
		return nil
	}

	// Confirm unless --yes is set; skipped outside a terminal so scripted
	// reverts keep working
	if !revertYes && term.IsTerminal(int(os.Stdin.Fd())) {
		confirmed, err := ConfirmSingleKey(fmt.Sprintf("Revert to %s?", backupPath))
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Revert cancelled.")
			return nil
		}
	}

	if err := store.Restore(backupPath); err != nil {
		return err
	}

	fmt.Printf("%s Reverted to: %s\n", StyleSuccess.Render("✓"), backupPath)
	return nil
}
