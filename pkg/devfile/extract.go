package devfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
	"github.com/tidwall/gjson"
	yamlv3 "gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
	"sigs.k8s.io/yaml"

	"github.com/che-incubator/devworkspace-handler/pkg/libdevfile"
	"github.com/che-incubator/devworkspace-handler/pkg/libdevfile/generator"
)

// CheCodeDevfileExtract implements ExtractClient
type CheCodeDevfileExtract struct{}

var _ ExtractClient = (*CheCodeDevfileExtract)(nil)

func NewCheCodeDevfileExtract() *CheCodeDevfileExtract {
	return &CheCodeDevfileExtract{}
}

func (o *CheCodeDevfileExtract) Extract(devfile map[string]interface{}, devWorkspace *v1alpha2.DevWorkspace) (string, error) {
	if devWorkspace == nil || reflect.DeepEqual(devWorkspace.Spec.Template, v1alpha2.DevWorkspaceTemplateSpec{}) {
		return "", NewMissingTemplateError()
	}
	template := devWorkspace.Spec.Template.DeepCopy()

	index := -1
	for i := range template.Components {
		if template.Components[i].Attributes.Exists(ContributeContainer) {
			index = i
			break
		}
	}
	if index < 0 {
		return "", NewContributionNotFoundError()
	}
	contribution, err := DecodeContribution(template.Components[index].Attributes)
	if err != nil {
		return "", err
	}
	klog.V(3).Infof("contribution found on component %q", template.Components[index].Name)

	if contribution.Inserted {
		// the whole dev container comes from the editor
		template.Components = append(template.Components[:index], template.Components[index+1:]...)
	} else {
		component := &template.Components[index]
		if component.Container != nil {
			removeContributedVolumeMounts(component.Container, contribution)
			removeContributedEndpoints(component.Container, contribution)
			restoreEntrypoint(&component.Container.Container, contribution)
			restoreResources(&component.Container.Container, contribution)
		}
		component.Attributes = StripContribution(component.Attributes)
	}

	volumeComponents := toSet(contribution.VolumeComponents)
	pluginComponents := toSet(contribution.PluginComponents)
	template.Components = libdevfile.RemoveComponents(template.Components, func(c v1alpha2.Component) bool {
		if _, found := volumeComponents[c.Name]; found && c.Volume != nil {
			return true
		}
		if _, found := pluginComponents[c.Name]; found && c.Plugin != nil {
			return true
		}
		return false
	})

	built, err := toMap(template)
	if err != nil {
		return "", err
	}
	for _, key := range []string{"schemaVersion", "metadata"} {
		if value, found := devfile[key]; found {
			built[key] = value
		}
	}
	content, err := yaml.Marshal(built)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func (o *CheCodeDevfileExtract) ExtractContent(devfileContent []byte, devWorkspaceContent []byte) (string, error) {
	devfile := map[string]interface{}{}
	if err := yaml.Unmarshal(devfileContent, &devfile); err != nil {
		return "", fmt.Errorf("unable to parse the devfile: %w", err)
	}

	devWorkspaceJSON, err := findDevWorkspaceDocument(devWorkspaceContent)
	if err != nil {
		return "", err
	}
	if !gjson.GetBytes(devWorkspaceJSON, "spec.template").Exists() {
		return "", NewMissingTemplateError()
	}
	var devWorkspace v1alpha2.DevWorkspace
	if err = json.Unmarshal(devWorkspaceJSON, &devWorkspace); err != nil {
		return "", fmt.Errorf("unable to parse the DevWorkspace: %w", err)
	}
	return o.Extract(devfile, &devWorkspace)
}

// findDevWorkspaceDocument returns, as JSON, the first document of kind DevWorkspace in the YAML stream
func findDevWorkspaceDocument(content []byte) ([]byte, error) {
	decoder := yamlv3.NewDecoder(bytes.NewReader(content))
	documents := 0
	for {
		var document map[string]interface{}
		err := decoder.Decode(&document)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("unable to parse the DevWorkspace document %d: %w", documents+1, err)
		}
		if document == nil {
			continue
		}
		documents++
		documentJSON, err := json.Marshal(document)
		if err != nil {
			return nil, err
		}
		if gjson.GetBytes(documentJSON, "kind").String() == generator.DevWorkspaceKind {
			return documentJSON, nil
		}
	}
	return nil, NewNoDevWorkspaceDocumentError(documents)
}

func removeContributedVolumeMounts(container *v1alpha2.ContainerComponent, contribution *Contribution) {
	container.VolumeMounts = cleanupArray(container.VolumeMounts, func(volumeMount v1alpha2.VolumeMount) bool {
		_, contributed := contribution.VolumeMounts[volumeMount.Name]
		return !contributed
	})
}

// removeContributedEndpoints removes the endpoints added by the merge. An endpoint of the user
// with the same name as a contributed one is kept.
func removeContributedEndpoints(container *v1alpha2.ContainerComponent, contribution *Contribution) {
	container.Endpoints = cleanupArray(container.Endpoints, func(endpoint v1alpha2.Endpoint) bool {
		if _, contributed := contribution.Endpoints[endpoint.Name]; !contributed {
			return true
		}
		if !endpoint.Attributes.Exists(ContributedByAttribute) {
			return true
		}
		var err error
		return endpoint.Attributes.GetString(ContributedByAttribute, &err) != ContributedByValue
	})
}

func restoreEntrypoint(container *v1alpha2.Container, contribution *Contribution) {
	if contribution.EntryPoint {
		container.Command = nil
	}
	if contribution.OriginalEntryPoint != nil {
		container.Command = contribution.OriginalEntryPoint
	}
}

func restoreResources(container *v1alpha2.Container, contribution *Contribution) {
	for _, resource := range Resources {
		if contribution.Resources[resource] {
			*resourceField(container, resource) = ""
		}
		if original, found := contribution.OriginalResources[resource]; found {
			*resourceField(container, resource) = original
		}
	}
}

// cleanupArray keeps the items accepted by keep, and returns nil rather than an empty slice
func cleanupArray[T any](items []T, keep func(T) bool) []T {
	var result []T
	for _, item := range items {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// toMap converts an API object to its generic form
func toMap(object interface{}) (map[string]interface{}, error) {
	content, err := json.Marshal(object)
	if err != nil {
		return nil, err
	}
	result := map[string]interface{}{}
	if err = json.Unmarshal(content, &result); err != nil {
		return nil, err
	}
	return result, nil
}
