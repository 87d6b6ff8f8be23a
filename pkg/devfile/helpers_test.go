package devfile

import (
	"github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
	"github.com/devfile/api/v2/pkg/attributes"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/che-incubator/devworkspace-handler/pkg/api"
	"github.com/che-incubator/devworkspace-handler/pkg/libdevfile/generator"
)

const (
	udiImage     = "quay.io/devfile/universal-developer-image:ubi8-latest"
	cheCodeImage = "quay.io/che-incubator/che-code:latest"
)

func getEditorComponent() v1alpha2.Component {
	return generator.GetContainerComponent(generator.ContainerComponentParams{
		Name: DefaultDescriptionComponentName,
		Container: v1alpha2.Container{
			Image:       cheCodeImage,
			Command:     []string{"/checode/entrypoint-volume.sh"},
			MemoryLimit: "1024Mi",
			CpuLimit:    "500m",
			CpuRequest:  "30m",
			VolumeMounts: []v1alpha2.VolumeMount{
				{Name: "checode", Path: "/checode"},
			},
		},
		Endpoints: []v1alpha2.Endpoint{
			{
				Name:       "che-code",
				TargetPort: 3100,
				Exposure:   v1alpha2.PublicEndpointExposure,
				Secure:     pointerTo(false),
				Protocol:   v1alpha2.HTTPSEndpointProtocol,
				Attributes: attributes.Attributes{}.PutString("type", "main"),
			},
		},
	})
}

func getToolsComponent(container v1alpha2.Container) v1alpha2.Component {
	if container.Image == "" {
		container.Image = udiImage
	}
	return generator.GetContainerComponent(generator.ContainerComponentParams{
		Name:      "tools",
		Container: container,
	})
}

func getEditorTemplate(name string, components ...v1alpha2.Component) *v1alpha2.DevWorkspaceTemplate {
	template := generator.GetDevWorkspaceTemplate(generator.DevWorkspaceTemplateParams{
		ObjectMeta: metav1.ObjectMeta{Name: name},
	})
	template.Spec.Components = components
	return &template
}

func getDevfileContext(components []v1alpha2.Component, templates ...*v1alpha2.DevWorkspaceTemplate) *api.DevfileContext {
	devWorkspace := generator.GetDevWorkspace(generator.DevWorkspaceParams{
		ObjectMeta: metav1.ObjectMeta{Name: "nodejs"},
		Started:    true,
	})
	devWorkspace.Spec.Template.Components = components
	return &api.DevfileContext{
		Devfile: map[string]interface{}{
			"schemaVersion": "2.2.0",
			"metadata":      map[string]interface{}{"name": "nodejs"},
		},
		DevWorkspace:          &devWorkspace,
		DevWorkspaceTemplates: templates,
		Suffix:                "nodejs",
	}
}

func componentNamed(devfileContext *api.DevfileContext, name string) *v1alpha2.Component {
	for i, component := range devfileContext.Components() {
		if component.Name == name {
			return &devfileContext.DevWorkspace.Spec.Template.Components[i]
		}
	}
	return nil
}

func componentNames(components []v1alpha2.Component) []string {
	var names []string
	for _, component := range components {
		names = append(names, component.Name)
	}
	return names
}

func pointerTo[T any](value T) *T {
	return &value
}
