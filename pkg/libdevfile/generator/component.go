package generator

import (
	"github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
	"github.com/devfile/api/v2/pkg/attributes"
)

type ContainerComponentParams struct {
	Name       string
	Attributes *attributes.Attributes

	Container v1alpha2.Container
	Endpoints []v1alpha2.Endpoint
}

func GetContainerComponent(params ContainerComponentParams) v1alpha2.Component {
	cmp := v1alpha2.Component{
		Name: params.Name,
		ComponentUnion: v1alpha2.ComponentUnion{
			Container: &v1alpha2.ContainerComponent{
				Container: params.Container,
				Endpoints: params.Endpoints,
			},
		},
	}
	if params.Attributes != nil {
		cmp.Attributes = *params.Attributes
	}
	return cmp
}

type VolumeComponentParams struct {
	Name   string
	Volume v1alpha2.Volume
}

func GetVolumeComponent(params VolumeComponentParams) v1alpha2.Component {
	return v1alpha2.Component{
		Name: params.Name,
		ComponentUnion: v1alpha2.ComponentUnion{
			Volume: &v1alpha2.VolumeComponent{
				Volume: params.Volume,
			},
		},
	}
}

// PluginComponentParams describes a plugin component referencing a DevWorkspaceTemplate by its name
type PluginComponentParams struct {
	Name string
	// TemplateName is the name of the referenced DevWorkspaceTemplate
	TemplateName string
	// TemplateNamespace is optional, the template is looked up in the namespace of the DevWorkspace when empty
	TemplateNamespace string
}

func GetPluginComponent(params PluginComponentParams) v1alpha2.Component {
	return v1alpha2.Component{
		Name: params.Name,
		ComponentUnion: v1alpha2.ComponentUnion{
			Plugin: &v1alpha2.PluginComponent{
				ImportReference: v1alpha2.ImportReference{
					ImportReferenceUnion: v1alpha2.ImportReferenceUnion{
						Kubernetes: &v1alpha2.KubernetesCustomResourceImportReference{
							Name:      params.TemplateName,
							Namespace: params.TemplateNamespace,
						},
					},
				},
			},
		},
	}
}
