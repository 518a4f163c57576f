package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"

	"github.com/arl/covpartition/optimize"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "write an optimizer settings file prefilled with defaults",
	Long: `Create a settings file in YAML format, prefilled with the default
chi and optimizer parameters.

If FILE is not provided, 'covpartition.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "covpartition.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		ok, err := confirmIfExists(path, fmt.Sprintf("file %s already exists, overwrite? [y/N]", path))
		if !ok {
			if err == nil {
				fmt.Println("aborted by user...")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}

		buf, err := yaml.Marshal(optimize.DefaultParams())
		check(err)
		check(os.WriteFile(path, buf, 0o644))
		fmt.Printf("settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
