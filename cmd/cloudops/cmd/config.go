package cmd

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

// CLIConfig describes the CLI local configuration file.
type CLIConfig struct {
	// bug in viper? Need to keep names of fields the same as the serialized names..
	Credential string `json:"credential,omitempty" yaml:"credential,omitempty" mapstructure:"credential"` // Credentials to use for google APIs
	Project    string `json:"project,omitempty" yaml:"project,omitempty" mapstructure:"project"`          // Default google cloud project
	Location   string `json:"location,omitempty" yaml:"location,omitempty" mapstructure:"location"`       // Default location for new datasets

	onceLogger sync.Once
	logger     *zap.Logger
}

func newConfig(v *viper.Viper) (*CLIConfig, error) {
	var config CLIConfig
	err := v.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// MarshalConfig renders the configuration as a yaml document
func (c *CLIConfig) MarshalConfig() ([]byte, error) {
	return yaml.Marshal(c)
}

func configFileLocation(expandEnv bool) string {
	if location := os.Getenv(envConfigLocation); location != "" {
		return location
	}
	var home string
	if expandEnv {
		home, _ = os.UserHomeDir()
	}
	if home == "" {
		home = "$HOME"
	}
	return filepath.Join(home, ".cloudops", "cloudops.yaml")
}

// configCmd represents the config related commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Commands to manage a config",
	Long: `Commands to manage cloudops CLI config.

Configuration for cloudops is the common set of flags that are needed for most commands and do not change across runs,
analogous to "git config ...". `,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
