package devfile

import (
	"encoding/json"
	"fmt"

	"github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
)

// ComponentNotFoundError is returned when the editor description component is neither in the templates
// nor in the DevWorkspace
type ComponentNotFoundError struct {
	name string
}

func NewComponentNotFoundError(name string) ComponentNotFoundError {
	return ComponentNotFoundError{
		name: name,
	}
}

func (e ComponentNotFoundError) Error() string {
	return "Not able to find che-code-description component in DevWorkspace and its templates"
}

// Name returns the name of the searched component
func (e ComponentNotFoundError) Name() string {
	return e.name
}

// MissingContainerError is returned when the dev container is not a container component
type MissingContainerError struct{}

func NewMissingContainerError() MissingContainerError {
	return MissingContainerError{}
}

func (e MissingContainerError) Error() string {
	return `The dev container should be a component with type "container".`
}

// MissingEditorContainerError is returned when the editor description is not a container component
type MissingEditorContainerError struct{}

func NewMissingEditorContainerError() MissingEditorContainerError {
	return MissingEditorContainerError{}
}

func (e MissingEditorContainerError) Error() string {
	return `The che-code component should be a component with type "container".`
}

// MissingTemplateNameError is returned when a DevWorkspaceTemplate has no name and must be referenced as a plugin
type MissingTemplateNameError struct {
	template *v1alpha2.DevWorkspaceTemplate
}

func NewMissingTemplateNameError(template *v1alpha2.DevWorkspaceTemplate) MissingTemplateNameError {
	return MissingTemplateNameError{
		template: template,
	}
}

func (e MissingTemplateNameError) Error() string {
	content, err := json.MarshalIndent(e.template, "", "  ")
	if err != nil {
		content = []byte(fmt.Sprintf("%v", e.template))
	}
	return fmt.Sprintf("No name found for the template %s.", content)
}

// MissingTemplateError is returned when the DevWorkspace has no template
type MissingTemplateError struct{}

func NewMissingTemplateError() MissingTemplateError {
	return MissingTemplateError{}
}

func (e MissingTemplateError) Error() string {
	return "Requires a template in devWorkspace object"
}

// ContributionNotFoundError is returned when no component of the DevWorkspace carries the contributed container marker
type ContributionNotFoundError struct{}

func NewContributionNotFoundError() ContributionNotFoundError {
	return ContributionNotFoundError{}
}

func (e ContributionNotFoundError) Error() string {
	return "Unable to find contribution container"
}

// EditorNotFoundError is returned by the resolver when no editor description has been found
type EditorNotFoundError struct{}

func NewEditorNotFoundError() EditorNotFoundError {
	return EditorNotFoundError{}
}

func (e EditorNotFoundError) Error() string {
	return "No che-code editor description found in DevWorkspaceTemplate"
}

// NoDevWorkspaceDocumentError is returned when a YAML stream contains no DevWorkspace document
type NoDevWorkspaceDocumentError struct {
	documents int
}

func NewNoDevWorkspaceDocumentError(documents int) NoDevWorkspaceDocumentError {
	return NoDevWorkspaceDocumentError{
		documents: documents,
	}
}

func (e NoDevWorkspaceDocumentError) Error() string {
	return fmt.Sprintf("no document of kind DevWorkspace found in %d document(s)", e.documents)
}
