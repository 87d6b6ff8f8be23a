package version

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/che-incubator/devworkspace-handler/pkg/api"
	"github.com/che-incubator/devworkspace-handler/pkg/devfile/validate"
	"github.com/che-incubator/devworkspace-handler/pkg/handler/genericclioptions"
	"github.com/che-incubator/devworkspace-handler/pkg/handler/genericclioptions/clientset"
	handlerversion "github.com/che-incubator/devworkspace-handler/pkg/version"
)

// RecommendedCommandName is the recommended version command name
const RecommendedCommandName = "version"

const outputJSON = "json"

var versionExample = `  # Print the version of the handler
  %[1]s

  # Print the version as JSON
  %[1]s -o json`

// VersionOptions encapsulates all options for the version command
type VersionOptions struct {
	clientset *clientset.Clientset

	outputFlag string
}

var _ genericclioptions.Runnable = (*VersionOptions)(nil)

// NewVersionOptions creates a new VersionOptions instance
func NewVersionOptions() *VersionOptions {
	return &VersionOptions{}
}

func (o *VersionOptions) SetClientset(clientset *clientset.Clientset) {
	o.clientset = clientset
}

// Complete completes VersionOptions after they have been created
func (o *VersionOptions) Complete(ctx context.Context, cmd *cobra.Command, args []string) error {
	return nil
}

// Validate validates the VersionOptions based on completed values
func (o *VersionOptions) Validate(ctx context.Context) error {
	if o.outputFlag != "" && o.outputFlag != outputJSON {
		return fmt.Errorf("unsupported output format %q, only %q is supported", o.outputFlag, outputJSON)
	}
	return nil
}

// Run prints the version information
func (o *VersionOptions) Run(ctx context.Context) error {
	info := api.HandlerVersion{
		Version:   handlerversion.VERSION,
		GitCommit: handlerversion.GITCOMMIT,
		Devfile: &api.DevfileInfo{
			SchemaVersions: []string{fmt.Sprintf("%d.x", validate.SupportedMajorVersion)},
		},
	}

	if o.outputFlag == outputJSON {
		content, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(o.clientset.Stdout, string(content))
		return err
	}

	_, err := fmt.Fprintf(o.clientset.Stdout, "devworkspace-handler %s (%s)\n\nSupported devfile schemaVersions: %s\n",
		info.Version, info.GitCommit, info.Devfile.SchemaVersions[0])
	return err
}

// NewCmdVersion implements the version command
func NewCmdVersion(name, fullName string, testClientset clientset.Clientset) *cobra.Command {
	o := NewVersionOptions()
	// versionCmd represents the version command
	var versionCmd = &cobra.Command{
		Use:     name,
		Short:   "Print the client version information",
		Long:    "Print the client version information",
		Example: fmt.Sprintf(versionExample, fullName),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return genericclioptions.GenericRun(o, testClientset, cmd, args)
		},
		Annotations: map[string]string{"command": "utility"},
	}
	versionCmd.Flags().StringVarP(&o.outputFlag, "output", "o", "", "output format, supported format: json")
	return versionCmd
}
