package devfile

import (
	"github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
	"k8s.io/klog/v2"

	"github.com/che-incubator/devworkspace-handler/pkg/api"
	"github.com/che-incubator/devworkspace-handler/pkg/libdevfile"
	"github.com/che-incubator/devworkspace-handler/pkg/log"
)

const (
	// DefaultDescriptionComponentName is the name of the component describing the che-code runtime in the editor devfile
	DefaultDescriptionComponentName = "che-code-runtime-description"

	// MergeContributionAttribute marks the container chosen to receive editor contributions
	MergeContributionAttribute = "controller.devfile.io/merge-contribution"
)

// CheCodeDescriptionComponentFinder implements DescriptionFinder
type CheCodeDescriptionComponentFinder struct {
	componentName string
}

var _ DescriptionFinder = (*CheCodeDescriptionComponentFinder)(nil)

func NewCheCodeDescriptionComponentFinder(componentName string) *CheCodeDescriptionComponentFinder {
	if componentName == "" {
		componentName = DefaultDescriptionComponentName
	}
	return &CheCodeDescriptionComponentFinder{
		componentName: componentName,
	}
}

func (o *CheCodeDescriptionComponentFinder) Find(devfileContext *api.DevfileContext) (*v1alpha2.Component, error) {
	for _, template := range devfileContext.DevWorkspaceTemplates {
		if template == nil {
			continue
		}
		if component := libdevfile.GetComponentByName(template.Spec.Components, o.componentName); component != nil {
			klog.V(4).Infof("editor description %q found in template %q", o.componentName, template.Name)
			return component, nil
		}
	}
	if component := libdevfile.GetComponentByName(devfileContext.Components(), o.componentName); component != nil {
		klog.V(4).Infof("editor description %q found in the DevWorkspace", o.componentName)
		return component, nil
	}
	return nil, NewComponentNotFoundError(o.componentName)
}

// DevContainerComponentFinder implements DevContainerFinder
type DevContainerComponentFinder struct {
	// editorComponentName is never considered as a dev container
	editorComponentName string
}

var _ DevContainerFinder = (*DevContainerComponentFinder)(nil)

func NewDevContainerComponentFinder(editorComponentName string) *DevContainerComponentFinder {
	if editorComponentName == "" {
		editorComponentName = DefaultDescriptionComponentName
	}
	return &DevContainerComponentFinder{
		editorComponentName: editorComponentName,
	}
}

// Find returns the container marked with the merge-contribution attribute if any,
// the first container mounting the sources otherwise
func (o *DevContainerComponentFinder) Find(devfileContext *api.DevfileContext) (*v1alpha2.Component, error) {
	components := devfileContext.Components()

	var candidates []int
	for _, i := range libdevfile.GetContainerComponentIndexes(components) {
		component := components[i]
		if component.Name == o.editorComponentName {
			continue
		}
		if !component.Container.GetMountSources() {
			klog.V(4).Infof("container %q does not mount the sources, skipping", component.Name)
			continue
		}
		candidates = append(candidates, i)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	for _, i := range candidates {
		if components[i].Attributes.Exists(MergeContributionAttribute) {
			var err error
			if components[i].Attributes.GetBoolean(MergeContributionAttribute, &err) && err == nil {
				return &components[i], nil
			}
		}
	}
	if len(candidates) > 1 {
		log.Warningf("%d containers could receive the editor, using the first one %q", len(candidates), components[candidates[0]].Name)
	}
	return &components[candidates[0]], nil
}
