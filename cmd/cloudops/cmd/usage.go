// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// usageHeader stamps each markdown page with the command it documents and the version of the binary
func usageHeader(version string) func(string) string {
	return func(page string) string {
		command := strings.ReplaceAll(strings.TrimSuffix(filepath.Base(page), ".md"), "_", " ")
		return fmt.Sprintf("<!-- %s -->\n**Version: %s**\n\n", command, version)
	}
}

func usageLink(page string) string {
	return "./" + page
}

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Generate the markdown documentation of all cloudops commands",
	Long: `Generate one markdown page per cloudops command into --target-dir.

The directory is created when missing. Pages are stamped with the version of this binary.`,
	Example: `% cloudops usage --target-dir docs/usage`,
	Run: func(cmd *cobra.Command, args []string) {
		target := cloudopsFlags.doc.docTarget
		if err := os.MkdirAll(target, 0o755); err != nil {
			wrapFatalln("could not create documentation directory "+target, err)
			return
		}
		rootCmd.DisableAutoGenTag = true
		err := doc.GenMarkdownTreeCustom(rootCmd, target, usageHeader(NewVersionInfo().Version), usageLink)
		if err != nil {
			wrapFatalln("could not generate documentation", err)
			return
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "documentation written to %s\n", target)
	},
}

func init() {
	rootCmd.AddCommand(usageCmd)
	addTargetFlag(usageCmd)
}
