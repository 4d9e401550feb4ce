// Copyright © 2018 One Concern

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/oneconcern/cloudops/pkg/dlogger"
	"github.com/oneconcern/cloudops/pkg/manifest"
	"github.com/oneconcern/cloudops/pkg/storage"
	"github.com/oneconcern/cloudops/pkg/storage/gcs"
	"github.com/oneconcern/cloudops/pkg/storage/localfs"
	"github.com/oneconcern/cloudops/pkg/warehouse"
	"github.com/oneconcern/cloudops/pkg/warehouse/bigquery"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultLocation = warehouse.DefaultLocation

type flagsT struct {
	root struct {
		credFile string
		logLevel string
	}
	bigquery struct {
		ProjectID       string
		DatasetName     string
		DatasetLocation string
		TableName       string
		Timeout         time.Duration
	}
	deployment struct {
		Project      string
		ImageVersion string
		Namespace    string
		Output       string
		NoOverwrite  bool
		Check        bool
	}
	config struct {
		project  string
		location string
	}
	doc struct {
		docTarget string
	}
}

var cloudopsFlags = flagsT{}

var (
	// used to patch over backends during test
	newWarehouse = bigquery.New
	newGCSStore  = gcs.New
	outputFs     = afero.NewOsFs()
)

const tableNameFlag = "table-name"

func addProjectIDFlag(cmd *cobra.Command) string {
	projectID := "project-id"
	cmd.Flags().StringVarP(&cloudopsFlags.bigquery.ProjectID, projectID, "p", "", "GCP project id (defaults to $GOOGLE_CLOUD_PROJECT)")
	return projectID
}

func addDatasetNameFlag(cmd *cobra.Command) string {
	datasetName := "dataset-name"
	cmd.Flags().StringVar(&cloudopsFlags.bigquery.DatasetName, datasetName, "", "Dataset name to store the table in")
	return datasetName
}

func addDatasetLocationFlag(cmd *cobra.Command) string {
	datasetLocation := "dataset-location"
	cmd.Flags().StringVar(&cloudopsFlags.bigquery.DatasetLocation, datasetLocation, "", "Location of the dataset, when created (defaults to "+defaultLocation+")")
	return datasetLocation
}

func addTableNameFlag(cmd *cobra.Command) string {
	cmd.Flags().StringVar(&cloudopsFlags.bigquery.TableName, tableNameFlag, "", "Table name to write the query results to")
	return tableNameFlag
}

func addTimeoutFlag(cmd *cobra.Command) string {
	timeout := "timeout"
	cmd.Flags().DurationVar(&cloudopsFlags.bigquery.Timeout, timeout, bigquery.DefaultTimeout, "Timeout of dataset and table API calls. Query jobs are awaited until completion")
	return timeout
}

func addDeploymentProjectFlag(cmd *cobra.Command) string {
	project := "project"
	cmd.Flags().StringVar(&cloudopsFlags.deployment.Project, project, "", "Configure the Google Cloud Project (defaults to $GOOGLE_CLOUD_PROJECT)")
	return project
}

func addImageVersionFlag(cmd *cobra.Command) string {
	imageVersion := "image-version"
	cmd.Flags().StringVar(&cloudopsFlags.deployment.ImageVersion, imageVersion, manifest.DefaultImageVersion, "Which image version to use")
	return imageVersion
}

func addNamespaceFlag(cmd *cobra.Command) string {
	namespace := "namespace"
	cmd.Flags().StringVar(&cloudopsFlags.deployment.Namespace, namespace, manifest.DefaultNamespace, "The GKE namespace")
	return namespace
}

func addOutputFlag(cmd *cobra.Command) string {
	output := "output"
	cmd.Flags().StringVarP(&cloudopsFlags.deployment.Output, output, "o", "",
		"Write the manifest to a local file or to a GCS object (gs://<bucket>/<object>) instead of stdout")
	return output
}

func addNoOverwriteFlag(cmd *cobra.Command) string {
	noOverwrite := "no-overwrite"
	cmd.Flags().BoolVar(&cloudopsFlags.deployment.NoOverwrite, noOverwrite, false, "Refuse to replace an existing manifest at --output")
	return noOverwrite
}

func addCheckFlag(cmd *cobra.Command) string {
	check := "check"
	cmd.Flags().BoolVar(&cloudopsFlags.deployment.Check, check, false, "Verify that the rendered manifest decodes as a kubernetes apps/v1 Deployment")
	return check
}

func addConfigProjectFlag(cmd *cobra.Command) string {
	project := "project"
	cmd.Flags().StringVar(&cloudopsFlags.config.project, project, "", "The default Google Cloud Project")
	return project
}

func addConfigLocationFlag(cmd *cobra.Command) string {
	location := "location"
	cmd.Flags().StringVar(&cloudopsFlags.config.location, location, "", "The default location of new datasets")
	return location
}

func addCredentialFile(cmd *cobra.Command) string {
	credential := "credential"
	cmd.PersistentFlags().StringVar(&cloudopsFlags.root.credFile, credential, "", "The path to the credential file")
	return credential
}

func addLogLevel(cmd *cobra.Command) string {
	loglevel := "loglevel"
	cmd.PersistentFlags().StringVar(&cloudopsFlags.root.logLevel, loglevel, dlogger.LogLevelError,
		"The logging level. Levels by increasing order of verbosity: none, error, warn, info, debug")
	return loglevel
}

func addTargetFlag(cmd *cobra.Command) string {
	c := "target-dir"
	cmd.Flags().StringVar(&cloudopsFlags.doc.docTarget, c, ".", "The target directory where to generate the markdown documentation")
	return c
}

/** parameters struct from other formats */

// apply config file + env vars to structure used to parse cli flags
func (flags *flagsT) setDefaultsFromConfig(c *CLIConfig) {
	if flags.root.credFile == "" {
		flags.root.credFile = c.Credential
	}
	if flags.bigquery.ProjectID == "" {
		flags.bigquery.ProjectID = c.Project
	}
	if flags.bigquery.DatasetLocation == "" {
		flags.bigquery.DatasetLocation = c.Location
	}
	if flags.deployment.Project == "" {
		flags.deployment.Project = c.Project
	}
}

/** combined config (file + env var) and parameters (pflags) */

type cliOptionInputs struct {
	config *CLIConfig
	params *flagsT
}

func newCliOptionInputs(config *CLIConfig, params *flagsT) *cliOptionInputs {
	return &cliOptionInputs{
		config: config,
		params: params,
	}
}

func (in *cliOptionInputs) getLogger() (*zap.Logger, error) {
	var err error
	in.config.onceLogger.Do(func() {
		in.config.logger, err = dlogger.GetLogger(in.params.root.logLevel)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set log level: %v", err)
	}
	return in.config.logger, nil
}

func (in *cliOptionInputs) warehouse(ctx context.Context) (warehouse.Warehouse, error) {
	logger, err := in.getLogger()
	if err != nil {
		return nil, fmt.Errorf("get logger: %v", err)
	}
	return newWarehouse(ctx, in.params.bigquery.ProjectID,
		bigquery.Logger(logger),
		bigquery.CredentialFile(in.params.root.credFile),
		bigquery.Timeout(in.params.bigquery.Timeout),
	)
}

// outputStore resolves the store and key where to write some output, either on GCS or on the local file system
func (in *cliOptionInputs) outputStore(ctx context.Context, target string) (storage.Store, string, error) {
	location, err := storage.ParseLocation(target)
	if err != nil {
		return nil, "", err
	}
	if !location.IsGCS() {
		return localfs.New(outputFs), location.Key, nil
	}
	logger, err := in.getLogger()
	if err != nil {
		return nil, "", fmt.Errorf("get logger: %v", err)
	}
	store, err := newGCSStore(ctx, location.Bucket, in.params.root.credFile, gcs.Logger(logger))
	if err != nil {
		return nil, "", err
	}
	return store, location.Key, nil
}

/** misc util */

// requireFlags sets a flag (local to the command or inherited) as required
func requireFlags(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		err := cmd.MarkFlagRequired(flag)
		if err != nil {
			err = cmd.MarkPersistentFlagRequired(flag)
		}
		if err != nil {
			wrapFatalln(fmt.Sprintf("error attempting to mark the required flag %q", flag), err)
			return
		}
	}
}
