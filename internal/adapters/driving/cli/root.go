// Package cli wires the cobra command tree for the permalink binary.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/permalink-cli/permalink/internal/adapters/driven/config/file"
	"github.com/permalink-cli/permalink/internal/adapters/driven/gitcli"
	"github.com/permalink-cli/permalink/internal/core/domain"
	"github.com/permalink-cli/permalink/internal/core/services"
	"github.com/permalink-cli/permalink/internal/logger"
)

var (
	lineFlag     int
	platformFlag string
	urlFlag      string
	remoteFlag   string
	copyFlag     bool
	openFlag     bool
	verboseFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "permalink <file>",
	Short: "Print a permalink to a file on its hosting platform",
	Long: `Resolves the current branch or commit and the remote repository URL,
then prints a GitHub or GitLab blob URL for the given file.

The platform is sniffed from the remote URL; pass --platform for
self-hosted instances.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.Flags().IntVarP(&lineFlag, "line", "l", 0, "line number to link to")
	rootCmd.Flags().StringVarP(&platformFlag, "platform", "p", "", "platform: github or gitlab")
	rootCmd.Flags().StringVar(&urlFlag, "url", "", "repository url, bypassing remote lookup")
	rootCmd.Flags().StringVar(&remoteFlag, "remote", "", "remote to read the url from (default origin)")
	rootCmd.Flags().BoolVarP(&copyFlag, "copy", "c", false, "also copy the url to the clipboard")
	rootCmd.Flags().BoolVarP(&openFlag, "open", "o", false, "open the url in the browser")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the CLI and returns the command error, if any.
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	logger.SetVerbose(verboseFlag)

	// PERMALINK_CONFIG_DIR is a test hook; users rely on the XDG default.
	cfg, err := file.NewConfigStore(os.Getenv("PERMALINK_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Debug("config file: %s", cfg.Path())

	platformName := platformFlag
	if platformName == "" {
		platformName = cfg.GetString("platform")
	}
	var platform domain.Platform
	if platformName != "" {
		platform, err = domain.ParsePlatform(platformName)
		if err != nil {
			return err
		}
	}

	remote := remoteFlag
	if remote == "" {
		remote = cfg.GetString("remote")
	}

	svc := services.NewPermalink(gitcli.NewOpener())
	url, err := svc.Resolve(cmd.Context(), services.Request{
		File:      args[0],
		Line:      lineFlag,
		Platform:  platform,
		RemoteURL: urlFlag,
		Remote:    remote,
	})
	if err != nil {
		return err
	}

	cmd.Println(url)

	if copyFlag || cfg.GetBool("copy") {
		if err := copyToClipboard(url); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	}
	if openFlag || cfg.GetBool("open") {
		if err := openInBrowser(url); err != nil {
			return fmt.Errorf("open in browser: %w", err)
		}
	}
	return nil
}
