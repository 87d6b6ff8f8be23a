package generate

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/che-incubator/devworkspace-handler/pkg/devfile/validate"
	"github.com/che-incubator/devworkspace-handler/pkg/handler/genericclioptions"
	"github.com/che-incubator/devworkspace-handler/pkg/handler/genericclioptions/clientset"
	"github.com/che-incubator/devworkspace-handler/pkg/log"
)

// RecommendedCommandName is the recommended generate command name
const RecommendedCommandName = "generate"

var generateExample = `  # Merge the che-code editor into the DevWorkspace built from devfile.yaml
  %[1]s --devfile-path devfile.yaml --editor-path che-code.yaml --output-file all-in-one.yaml

  # Validate the devfile with the devfile library first
  %[1]s --devfile-path devfile.yaml --editor-path che-code.yaml --output-file all-in-one.yaml --validate`

// GenerateOptions encapsulates the options for the generate command
type GenerateOptions struct {
	// Clients
	clientset *clientset.Clientset

	// Flags
	devfilePathFlag string
	editorPathFlag  string
	outputFileFlag  string
	validateFlag    bool

	// Completed values
	devfileContent []byte
	editorContent  []byte
}

var _ genericclioptions.Runnable = (*GenerateOptions)(nil)

// NewGenerateOptions creates a new GenerateOptions instance
func NewGenerateOptions() *GenerateOptions {
	return &GenerateOptions{}
}

func (o *GenerateOptions) SetClientset(clientset *clientset.Clientset) {
	o.clientset = clientset
}

// Complete reads the input files
func (o *GenerateOptions) Complete(ctx context.Context, cmd *cobra.Command, args []string) (err error) {
	o.devfileContent, err = o.clientset.FS.ReadFile(o.devfilePathFlag)
	if err != nil {
		return fmt.Errorf("unable to read the devfile %q: %w", o.devfilePathFlag, err)
	}
	o.editorContent, err = o.clientset.FS.ReadFile(o.editorPathFlag)
	if err != nil {
		return fmt.Errorf("unable to read the editor devfile %q: %w", o.editorPathFlag, err)
	}
	return nil
}

// Validate runs the devfile library validation on the user devfile when --validate is set
func (o *GenerateOptions) Validate(ctx context.Context) error {
	if !o.validateFlag {
		return nil
	}
	if err := validate.ValidateWithLibrary(o.devfileContent); err != nil {
		return fmt.Errorf("the devfile %q is not valid: %w", o.devfilePathFlag, err)
	}
	return nil
}

// Run generates the DevWorkspace and writes it with its templates to the output file
func (o *GenerateOptions) Run(ctx context.Context) error {
	spinner := log.Spinnerf("Merging the editor into the DevWorkspace")
	devfileContext, err := o.clientset.GenerateClient.Generate(o.devfileContent, o.editorContent)
	spinner.End(err == nil)
	if err != nil {
		return err
	}
	if devfileContext.Suffix == "" {
		log.Warningbox(fmt.Sprintf("The devfile %s has no metadata.name.\nThe DevWorkspace is named %s", o.devfilePathFlag, devfileContext.DevWorkspace.Name))
	}
	content, err := o.clientset.GenerateClient.Serialize(devfileContext)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(o.outputFileFlag); dir != "." {
		if err = o.clientset.FS.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("unable to create the directory of %q: %w", o.outputFileFlag, err)
		}
	}
	if err = o.clientset.FS.WriteFile(o.outputFileFlag, content, 0644); err != nil {
		return fmt.Errorf("unable to write %q: %w", o.outputFileFlag, err)
	}
	klog.V(2).Infof("%d bytes written to %q", len(content), o.outputFileFlag)

	log.Successf("DevWorkspace %q written to %s", devfileContext.DevWorkspace.Name, o.outputFileFlag)
	return nil
}

// NewCmdGenerate implements the generate command
func NewCmdGenerate(name, fullName string, testClientset clientset.Clientset) *cobra.Command {
	o := NewGenerateOptions()
	generateCmd := &cobra.Command{
		Use:     name,
		Short:   "Generate a DevWorkspace with the che-code editor from a devfile",
		Long:    "Generate a DevWorkspace from a devfile, merge the che-code editor into its dev container and write it with the editor DevWorkspaceTemplate",
		Example: fmt.Sprintf(generateExample, fullName),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return genericclioptions.GenericRun(o, testClientset, cmd, args)
		},
		Annotations: map[string]string{"command": "main"},
	}
	generateCmd.Flags().StringVar(&o.devfilePathFlag, "devfile-path", "", "path of the user devfile")
	generateCmd.Flags().StringVar(&o.editorPathFlag, "editor-path", "", "path of the che-code editor devfile")
	generateCmd.Flags().StringVar(&o.outputFileFlag, "output-file", "", "path of the file to write the DevWorkspace and its templates to")
	generateCmd.Flags().BoolVar(&o.validateFlag, "validate", false, "validate the devfile with the devfile library before generating")
	for _, flag := range []string{"devfile-path", "editor-path", "output-file"} {
		_ = generateCmd.MarkFlagRequired(flag)
	}

	clientset.Add(generateCmd, clientset.GENERATE)
	return generateCmd
}
