package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var configSet = &cobra.Command{
	Aliases: []string{"create"},
	Use:     "set",
	Short:   "Create a local config file",
	Long: `Creates a local config file holding flags that do not change across runs, like the google cloud project
or the credentials file to use.

By default, this configuration file will be placed in ` + configFileLocation(false) + `.

Use the ` + envConfigLocation + ` environment variable to change this default target.
`,
	Example: `# Set the default project and credentials file (use absolute path here)
% cloudops config set --project my-project --credential /home/me/.config/gcloud/application_default_credentials.json
config file created in /home/me/.cloudops/cloudops.yaml

# Create datasets in the EU by default
% cloudops config set --project my-project --location EU
config file created in /home/me/.cloudops/cloudops.yaml

# Generate config in some non-default location
% ` + envConfigLocation + `=~/.config/cloudops/config.yaml cloudops config set --project my-project
config file created in /home/me/.config/cloudops/config.yaml
`,
	Run: func(cmd *cobra.Command, args []string) {
		localConfig := CLIConfig{
			Credential: cloudopsFlags.root.credFile,
			Project:    cloudopsFlags.config.project,
			Location:   cloudopsFlags.config.location,
		}

		file := configFileLocation(true)

		if ext := filepath.Ext(file); ext != ".yaml" && ext != ".yml" {
			cmd.PrintErrf("warning: the generated config file will contain a yaml document, but the file extension is %q\n", ext)
		}
		o, err := localConfig.MarshalConfig()
		if err != nil {
			wrapFatalln("could not serialize config to yaml", err)
			return
		}

		err = os.MkdirAll(filepath.Dir(file), 0700)
		if err != nil {
			wrapFatalln("could not create directory to hold config "+filepath.Dir(file), err)
			return
		}

		err = os.WriteFile(file, o, 0600)
		if err != nil {
			wrapFatalln("error writing config file "+file, err)
			return
		}

		fmt.Fprintf(cmd.OutOrStdout(), "config file created in %s\n", file)
	},
}

func init() {
	addConfigProjectFlag(configSet)
	addConfigLocationFlag(configSet)
	configCmd.AddCommand(configSet)
}
