package extract

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/che-incubator/devworkspace-handler/pkg/handler/genericclioptions"
	"github.com/che-incubator/devworkspace-handler/pkg/handler/genericclioptions/clientset"
	"github.com/che-incubator/devworkspace-handler/pkg/log"
)

// RecommendedCommandName is the recommended extract command name
const RecommendedCommandName = "extract"

var extractExample = `  # Get the user devfile back from a generated DevWorkspace
  %[1]s --devfile-path devfile.yaml --devworkspace-path all-in-one.yaml --output-file extracted.yaml`

// ExtractOptions encapsulates the options for the extract command
type ExtractOptions struct {
	clientset *clientset.Clientset

	devfilePathFlag      string
	devWorkspacePathFlag string
	outputFileFlag       string

	devfileContent      []byte
	devWorkspaceContent []byte
}

var _ genericclioptions.Runnable = (*ExtractOptions)(nil)

func NewExtractOptions() *ExtractOptions {
	return &ExtractOptions{}
}

func (o *ExtractOptions) SetClientset(clientset *clientset.Clientset) {
	o.clientset = clientset
}

func (o *ExtractOptions) Complete(ctx context.Context, cmd *cobra.Command, args []string) (err error) {
	o.devfileContent, err = o.clientset.FS.ReadFile(o.devfilePathFlag)
	if err != nil {
		return fmt.Errorf("unable to read the devfile %q: %w", o.devfilePathFlag, err)
	}
	o.devWorkspaceContent, err = o.clientset.FS.ReadFile(o.devWorkspacePathFlag)
	if err != nil {
		return fmt.Errorf("unable to read the DevWorkspace %q: %w", o.devWorkspacePathFlag, err)
	}
	return nil
}

func (o *ExtractOptions) Validate(ctx context.Context) error {
	if len(o.devWorkspaceContent) == 0 {
		return fmt.Errorf("the DevWorkspace file %q is empty", o.devWorkspacePathFlag)
	}
	return nil
}

func (o *ExtractOptions) Run(ctx context.Context) error {
	content, err := o.clientset.ExtractClient.ExtractContent(o.devfileContent, o.devWorkspaceContent)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(o.outputFileFlag); dir != "." {
		if err = o.clientset.FS.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("unable to create the directory of %q: %w", o.outputFileFlag, err)
		}
	}
	if err = o.clientset.FS.WriteFile(o.outputFileFlag, []byte(content), 0644); err != nil {
		return fmt.Errorf("unable to write %q: %w", o.outputFileFlag, err)
	}
	log.Successf("Devfile written to %s", o.outputFileFlag)
	return nil
}

// NewCmdExtract implements the extract command
func NewCmdExtract(name, fullName string, testClientset clientset.Clientset) *cobra.Command {
	o := NewExtractOptions()
	extractCmd := &cobra.Command{
		Use:     name,
		Short:   "Extract the user devfile from a generated DevWorkspace",
		Long:    "Remove everything the che-code editor contributed to a DevWorkspace and write the resulting devfile",
		Example: fmt.Sprintf(extractExample, fullName),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return genericclioptions.GenericRun(o, testClientset, cmd, args)
		},
		Annotations: map[string]string{"command": "main"},
	}
	extractCmd.Flags().StringVar(&o.devfilePathFlag, "devfile-path", "", "path of the original devfile, its header is reused")
	extractCmd.Flags().StringVar(&o.devWorkspacePathFlag, "devworkspace-path", "", "path of the DevWorkspace, possibly preceded by its templates")
	extractCmd.Flags().StringVar(&o.outputFileFlag, "output-file", "", "path of the devfile to write")
	for _, flag := range []string{"devfile-path", "devworkspace-path", "output-file"} {
		_ = extractCmd.MarkFlagRequired(flag)
	}

	clientset.Add(extractCmd, clientset.EXTRACT)
	return extractCmd
}
