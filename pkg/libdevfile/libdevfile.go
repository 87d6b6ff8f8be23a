package libdevfile

import (
	"github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
)

// GetContainerComponentIndexes returns the indexes of the container components, in order
func GetContainerComponentIndexes(components []v1alpha2.Component) []int {
	var indexes []int
	for i := range components {
		if IsComponentType(components[i], v1alpha2.ContainerComponentType) {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

// GetVolumeNames returns the names of the volume components of every template
func GetVolumeNames(templates []*v1alpha2.DevWorkspaceTemplate) map[string]struct{} {
	names := map[string]struct{}{}
	for _, template := range templates {
		if template == nil {
			continue
		}
		for _, component := range template.Spec.Components {
			if component.Volume != nil {
				names[component.Name] = struct{}{}
			}
		}
	}
	return names
}

// GetComponentByName returns a pointer to the first component with the given name, or nil
func GetComponentByName(components []v1alpha2.Component, name string) *v1alpha2.Component {
	if i, found := FindComponent(components, name); found {
		return &components[i]
	}
	return nil
}
