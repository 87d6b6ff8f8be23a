package libdevfile

import (
	"github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
	"github.com/devfile/library/v2/pkg/devfile/parser/data/v2/common"
)

// IsComponentType returns true if the component is of the given type.
// Components with no type set are never of any type.
func IsComponentType(component v1alpha2.Component, componentType v1alpha2.ComponentType) bool {
	t, err := common.GetComponentType(component)
	if err != nil {
		return false
	}
	return t == componentType
}

// FindComponent returns the index of the first component with the given name
func FindComponent(components []v1alpha2.Component, name string) (int, bool) {
	for i := range components {
		if components[i].Name == name {
			return i, true
		}
	}
	return -1, false
}

// HasVolumeComponent returns true if a volume component with the given name exists
func HasVolumeComponent(components []v1alpha2.Component, name string) bool {
	for _, component := range components {
		if component.Name == name && component.Volume != nil {
			return true
		}
	}
	return false
}

// RemoveComponents removes in place the components matching the predicate, and returns the shortened slice.
// The returned slice is nil when no component is left.
func RemoveComponents(components []v1alpha2.Component, match func(v1alpha2.Component) bool) []v1alpha2.Component {
	for i := len(components) - 1; i >= 0; i-- {
		if match(components[i]) {
			components = append(components[:i], components[i+1:]...)
		}
	}
	if len(components) == 0 {
		return nil
	}
	return components
}
