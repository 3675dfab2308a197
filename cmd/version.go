package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version metadata, overridden at build time via -ldflags "-X ..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print the server version, the commit it was built from, and the build environment.",
	Run:   runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "print just the version number")
}

func runVersion(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	if short, _ := cmd.Flags().GetBool("short"); short {
		fmt.Fprintf(out, "v%s\n", Version)
		return
	}

	fmt.Fprintf(out, "Scene Timeline API v%s\n\n", Version)
	fmt.Fprintf(out, "Git Commit:  %s\n", GitCommit)
	fmt.Fprintf(out, "Build Time:  %s\n", BuildTime)
	fmt.Fprintf(out, "Go Version:  %s\n", runtime.Version())
	fmt.Fprintf(out, "Platform:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
