package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

var cmdVersion = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		if globalOptions.JSON {
			type jsonVersion struct {
				Version   string `json:"version"`
				GoVersion string `json:"go_version"`
				GoOS      string `json:"go_os"`
				GoArch    string `json:"go_arch"`
			}

			_ = json.NewEncoder(globalOptions.stdout).Encode(jsonVersion{
				Version:   version,
				GoVersion: runtime.Version(),
				GoOS:      runtime.GOOS,
				GoArch:    runtime.GOARCH,
			})
			return
		}

		fmt.Fprintf(globalOptions.stdout, "deltasync %s compiled with %v on %v/%v\n",
			version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	cmdRoot.AddCommand(cmdVersion)
}
