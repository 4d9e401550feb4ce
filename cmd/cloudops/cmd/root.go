// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envConfigLocation = "CLOUDOPS_CONFIG"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cloudops",
	Short: "cloudops bundles the operational scripts used to deploy and feed our samples on Google Cloud",
	Long: `cloudops bundles the operational scripts used to deploy and feed our samples on Google Cloud.

Each command is a short, independent task:
  - populate a BigQuery table from a query job
  - print the kubernetes Deployment manifests of the GKE workers, to be applied with kubectl

The project defaults to the GOOGLE_CLOUD_PROJECT environment variable, then to the config file.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var config *CLIConfig

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)

	addLogLevel(rootCmd)
	addCredentialFile(rootCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	v := viper.New()
	v.SetDefault("location", defaultLocation)
	_ = v.BindEnv("project", "CLOUDOPS_PROJECT", "GOOGLE_CLOUD_PROJECT")

	if os.Getenv(envConfigLocation) != "" {
		// Use config file from the environment.
		v.SetConfigFile(os.Getenv(envConfigLocation))
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.cloudops")
		v.AddConfigPath("/etc/cloudops")
		v.SetConfigName("cloudops")
	}
	v.SetConfigType("yaml")
	v.SetEnvPrefix("cloudops")
	v.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := v.ReadInConfig(); err == nil {
		log.Println("Using config file:", v.ConfigFileUsed())
	}

	var err error
	config, err = newConfig(v)
	if err != nil {
		wrapFatalln("invalid configuration", err)
		return
	}
	cloudopsFlags.setDefaultsFromConfig(config)
	if config.Credential != "" {
		// Always pick the config file, so that the wrong project credentials lingering in the environment are not used.
		_ = os.Setenv("GOOGLE_APPLICATION_CREDENTIALS", config.Credential)
	}
}
