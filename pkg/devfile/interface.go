package devfile

import (
	"github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"

	"github.com/che-incubator/devworkspace-handler/pkg/api"
)

// Client merges the editor description into the DevWorkspace of a DevfileContext
type Client interface {
	// Update finds the editor description and the dev container, merges the editor into the dev container,
	// then removes the editor description from the templates
	Update(devfileContext *api.DevfileContext) error
}

type DescriptionFinder interface {
	// Find returns the editor description component, searching the templates first, then the DevWorkspace
	Find(devfileContext *api.DevfileContext) (*v1alpha2.Component, error)
}

type DevContainerFinder interface {
	// Find returns the user dev container from the DevWorkspace, or nil if there is none
	Find(devfileContext *api.DevfileContext) (*v1alpha2.Component, error)
}

type Inserter interface {
	// Insert appends a copy of editorComponent to the DevWorkspace components and returns the appended component
	Insert(devfileContext *api.DevfileContext, editorComponent *v1alpha2.Component) (*v1alpha2.Component, error)
}

type Updater interface {
	// Update merges editorComponent into devContainer, recording the contribution in the attributes of devContainer
	Update(devfileContext *api.DevfileContext, editorComponent *v1alpha2.Component, devContainer *v1alpha2.Component, devContainerAlreadyExisted bool) error
}

type Remover interface {
	// RemoveRuntimeComponent removes the components named after component from every template
	RemoveRuntimeComponent(devfileContext *api.DevfileContext, component *v1alpha2.Component)
}

// ExtractClient reverses the merge
type ExtractClient interface {
	// Extract rebuilds the user devfile from the merged DevWorkspace, and returns it serialized as YAML
	Extract(devfile map[string]interface{}, devWorkspace *v1alpha2.DevWorkspace) (string, error)
	// ExtractContent is Extract with YAML inputs. devWorkspaceContent can be a multi-document stream.
	ExtractContent(devfileContent []byte, devWorkspaceContent []byte) (string, error)
}
