package devfile

import (
	"github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
	"github.com/devfile/api/v2/pkg/attributes"
	"k8s.io/klog/v2"

	"github.com/che-incubator/devworkspace-handler/pkg/api"
	"github.com/che-incubator/devworkspace-handler/pkg/k8s"
	"github.com/che-incubator/devworkspace-handler/pkg/libdevfile"
	"github.com/che-incubator/devworkspace-handler/pkg/libdevfile/generator"
)

// DevContainerComponentUpdater implements Updater
type DevContainerComponentUpdater struct {
	unitsClient k8s.Client
	// insertTemplatesAsPlugin adds to the DevWorkspace a plugin component referencing each template
	insertTemplatesAsPlugin bool
}

var _ Updater = (*DevContainerComponentUpdater)(nil)

func NewDevContainerComponentUpdater(unitsClient k8s.Client, insertTemplatesAsPlugin bool) *DevContainerComponentUpdater {
	return &DevContainerComponentUpdater{
		unitsClient:             unitsClient,
		insertTemplatesAsPlugin: insertTemplatesAsPlugin,
	}
}

// Update merges the editor container into the dev container.
// Resource sums and template names are checked before the dev container is modified.
func (o *DevContainerComponentUpdater) Update(
	devfileContext *api.DevfileContext,
	editorComponent *v1alpha2.Component,
	devContainer *v1alpha2.Component,
	devContainerAlreadyExisted bool,
) error {
	if devContainer.Container == nil {
		return NewMissingContainerError()
	}
	if editorComponent.Container == nil {
		return NewMissingEditorContainerError()
	}
	if o.insertTemplatesAsPlugin {
		for _, template := range devfileContext.DevWorkspaceTemplates {
			if template.Name == "" {
				return NewMissingTemplateNameError(template)
			}
		}
	}

	// the editor component may share its storage with the DevWorkspace components
	editorContainer := editorComponent.Container.DeepCopy()
	container := devContainer.Container
	contribution := NewContribution(devContainer.Name)
	contribution.Inserted = !devContainerAlreadyExisted

	resources, err := o.mergeResources(editorContainer, container, devContainerAlreadyExisted, contribution)
	if err != nil {
		return err
	}

	// entrypoint
	contribution.EntryPoint = true
	if container.Command != nil {
		contribution.OriginalEntryPoint = append([]string{}, container.Command...)
	} else {
		container.Command = editorContainer.Command
	}

	// volume mounts not already defined in the dev container
	mounted := map[string]struct{}{}
	for _, volumeMount := range container.VolumeMounts {
		mounted[volumeMount.Name] = struct{}{}
	}
	var insertedVolumeMounts []v1alpha2.VolumeMount
	for _, volumeMount := range editorContainer.VolumeMounts {
		if _, found := mounted[volumeMount.Name]; found {
			continue
		}
		mounted[volumeMount.Name] = struct{}{}
		insertedVolumeMounts = append(insertedVolumeMounts, volumeMount)
		contribution.VolumeMounts[volumeMount.Name] = volumeMount.Path
	}
	container.VolumeMounts = append(container.VolumeMounts, insertedVolumeMounts...)

	// volume components backing the inserted volume mounts, unless the DevWorkspace or a template defines them
	var toAppend []v1alpha2.Component
	components := devfileContext.Components()
	templateVolumes := libdevfile.GetVolumeNames(devfileContext.DevWorkspaceTemplates)
	for _, volumeMount := range insertedVolumeMounts {
		if libdevfile.HasVolumeComponent(components, volumeMount.Name) {
			continue
		}
		if _, found := templateVolumes[volumeMount.Name]; found {
			continue
		}
		toAppend = append(toAppend, generator.GetVolumeComponent(generator.VolumeComponentParams{
			Name: volumeMount.Name,
		}))
		contribution.VolumeComponents = append(contribution.VolumeComponents, volumeMount.Name)
	}

	// every endpoint is added, even when an endpoint with the same name exists
	for _, endpoint := range editorContainer.Endpoints {
		if endpoint.Attributes == nil {
			endpoint.Attributes = attributes.Attributes{}
		}
		endpoint.Attributes.PutString(ContributedByAttribute, ContributedByValue)
		devContainer.Container.Endpoints = append(devContainer.Container.Endpoints, endpoint)
		contribution.Endpoints[endpoint.Name] = endpoint.TargetPort
	}

	for _, resource := range Resources {
		if value, found := resources[resource]; found {
			*resourceField(&container.Container, resource) = value
		}
	}

	if o.insertTemplatesAsPlugin {
		for _, template := range devfileContext.DevWorkspaceTemplates {
			toAppend = append(toAppend, generator.GetPluginComponent(generator.PluginComponentParams{
				Name:         template.Name,
				TemplateName: template.Name,
			}))
			contribution.PluginComponents = append(contribution.PluginComponents, template.Name)
		}
	}

	devContainer.Attributes, err = contribution.Encode(devContainer.Attributes)
	if err != nil {
		return err
	}
	klog.V(3).Infof("editor %q merged into dev container %q", editorComponent.Name, devContainer.Name)

	// appending may move the components, devContainer must not be used after this point
	if len(toAppend) > 0 {
		devWorkspace := devfileContext.EnsureDevWorkspace()
		devWorkspace.Spec.Template.Components = append(devWorkspace.Spec.Template.Components, toAppend...)
	}
	return nil
}

// mergeResources computes the resource values of the dev container, without modifying it.
// When the dev container already existed, values defined on both sides are summed.
func (o *DevContainerComponentUpdater) mergeResources(
	from *v1alpha2.ContainerComponent,
	to *v1alpha2.ContainerComponent,
	devContainerAlreadyExisted bool,
	contribution *Contribution,
) (map[Resource]string, error) {
	result := map[Resource]string{}
	for _, resource := range Resources {
		editorValue := *resourceField(&from.Container, resource)
		if editorValue == "" {
			continue
		}
		contribution.Resources[resource] = true
		devValue := *resourceField(&to.Container, resource)
		if !devContainerAlreadyExisted || devValue == "" {
			result[resource] = editorValue
			continue
		}
		sum, err := o.unitsClient.SumUnits(editorValue, devValue, metric(resource))
		if err != nil {
			return nil, err
		}
		contribution.OriginalResources[resource] = devValue
		result[resource] = sum
	}
	return result, nil
}

func resourceField(container *v1alpha2.Container, resource Resource) *string {
	switch resource {
	case MemoryLimit:
		return &container.MemoryLimit
	case MemoryRequest:
		return &container.MemoryRequest
	case CpuLimit:
		return &container.CpuLimit
	case CpuRequest:
		return &container.CpuRequest
	}
	panic("unknown resource " + string(resource))
}

func metric(resource Resource) k8s.Metric {
	if resource == CpuLimit || resource == CpuRequest {
		return k8s.CpuMetric
	}
	return k8s.MemoryMetric
}
