package cmd

import (
	"bytes"
	"context"
	"fmt"

	"github.com/oneconcern/cloudops/pkg/errors"
	"github.com/oneconcern/cloudops/pkg/manifest"
	"github.com/oneconcern/cloudops/pkg/storage"
	"github.com/oneconcern/cloudops/pkg/storage/status"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// deploymentCmd represents the kubernetes deployment related commands
var deploymentCmd = &cobra.Command{
	Use:   "deployment",
	Short: "Commands to print kubernetes Deployment manifests",
	Long: `Commands to print the kubernetes Deployment manifests of our GKE workers.

Manifests are printed to stdout, ready to be piped into kubectl:

	cloudops deployment populate-bucket --project my-project | kubectl apply -f -
`,
}

func init() {
	rootCmd.AddCommand(deploymentCmd)
}

func addDeploymentFlags(cmd *cobra.Command) {
	addDeploymentProjectFlag(cmd)
	addOutputFlag(cmd)
	addNoOverwriteFlag(cmd)
	addCheckFlag(cmd)
}

// printDeployment renders a manifest template and writes the result to the output specified by flags
func printDeployment(cmd *cobra.Command, name string, values manifest.Values) {
	var buf bytes.Buffer
	if err := manifest.Render(name, values, &buf); err != nil {
		wrapFatalln("could not render manifest "+name, err)
		return
	}

	optionInputs := newCliOptionInputs(config, &cloudopsFlags)
	logger, err := optionInputs.getLogger()
	if err != nil {
		wrapFatalln("get logger", err)
		return
	}

	if cloudopsFlags.deployment.Check {
		deployment, erc := manifest.Validate(buf.Bytes())
		if erc != nil {
			wrapFatalln("rendered manifest "+name+" is invalid", erc)
			return
		}
		logger.Info("manifest checked",
			zap.String("deployment", deployment.Name),
			zap.Int("containers", len(deployment.Spec.Template.Spec.Containers)),
		)
	}

	if cloudopsFlags.deployment.Output == "" {
		_, _ = cmd.OutOrStdout().Write(buf.Bytes())
		return
	}

	ctx := context.Background()
	store, key, err := optionInputs.outputStore(ctx, cloudopsFlags.deployment.Output)
	if err != nil {
		wrapFatalln("invalid output "+cloudopsFlags.deployment.Output, err)
		return
	}
	mode := storage.OverWrite
	if cloudopsFlags.deployment.NoOverwrite {
		mode = storage.NoOverWrite
	}
	if err = store.Put(ctx, key, &buf, mode); err != nil {
		if errors.Is(err, status.ErrExists) {
			wrapFatalln(fmt.Sprintf("manifest %s already exists, use another --output or drop --no-overwrite", cloudopsFlags.deployment.Output), nil)
			return
		}
		wrapFatalln(fmt.Sprintf("could not write manifest to %s", cloudopsFlags.deployment.Output), err)
		return
	}
	logger.Info("manifest written", zap.String("store", store.String()), zap.String("key", key))
	fmt.Fprintf(cmd.ErrOrStderr(), "manifest %s written to %s\n", name, cloudopsFlags.deployment.Output)
}
