package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display the condgate version and the Go runtime it was built with.`,
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().BoolVarP(&versionJSON, "json", "j", false, "Output in JSON format")
}

// versionInfo is the version subcommand's JSON shape.
type versionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := versionInfo{
		Version:   Version,
		GoVersion: runtime.Version(),
	}

	if versionJSON {
		out, err := json.Marshal(info)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("condgate %s (%s)\n", info.Version, info.GoVersion)
	return nil
}
