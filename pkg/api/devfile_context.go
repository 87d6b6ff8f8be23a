package api

import (
	"github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
)

// DevfileContext holds the documents of a single generate or extract invocation.
// It is mutated in place by the merge steps and discarded once serialized.
type DevfileContext struct {
	// Devfile is the user devfile, as parsed from its YAML content
	Devfile map[string]interface{}
	// DevWorkspace is built from the user devfile and receives the editor contribution
	DevWorkspace *v1alpha2.DevWorkspace
	// DevWorkspaceTemplates are built from the editor devfile
	DevWorkspaceTemplates []*v1alpha2.DevWorkspaceTemplate
	// Suffix is appended to the names of the generated templates
	Suffix string
}

// Components returns the components of the DevWorkspace template, or nil when there is no DevWorkspace
func (o *DevfileContext) Components() []v1alpha2.Component {
	if o.DevWorkspace == nil {
		return nil
	}
	return o.DevWorkspace.Spec.Template.Components
}

// EnsureDevWorkspace creates an empty DevWorkspace if the context has none, and returns it
func (o *DevfileContext) EnsureDevWorkspace() *v1alpha2.DevWorkspace {
	if o.DevWorkspace == nil {
		o.DevWorkspace = &v1alpha2.DevWorkspace{}
	}
	return o.DevWorkspace
}
