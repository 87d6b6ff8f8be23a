package generate

import (
	"github.com/che-incubator/devworkspace-handler/pkg/api"
)

type Client interface {
	// Generate builds the DevWorkspace from the user devfile and the DevWorkspaceTemplate from the editor devfile,
	// then merges the editor into the DevWorkspace
	Generate(devfileContent []byte, editorContent []byte) (*api.DevfileContext, error)
	// Serialize returns the templates and the DevWorkspace as a multi-document YAML stream
	Serialize(devfileContext *api.DevfileContext) ([]byte, error)
}
