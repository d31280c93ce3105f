package main

import (
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the program version",
	Long: `
Print the version of idfparse together with the Go release and platform it
was built for.
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		writeVersion(stdout)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}

// buildVersion returns the version set at link time, or the module version
// recorded by the go tool.
func buildVersion() string {
	if version != "" {
		return version
	}

	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}

	return "(devel)"
}

func writeVersion(w io.Writer) {
	fprintf(w, "idfparse %s\n", buildVersion())
	fprintf(w, "built with %s for %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
