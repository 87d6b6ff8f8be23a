package devfile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/devfile/api/v2/pkg/attributes"
)

const (
	// AttributePrefix is the namespace of every attribute written by the merge
	AttributePrefix = "che-code.eclipse.org/"

	ContributeVolumeMountPrefix     = AttributePrefix + "contribute-volume-mount/"
	ContributeVolumeComponentPrefix = AttributePrefix + "contribute-volume-component/"
	ContributeEndpointPrefix        = AttributePrefix + "contribute-endpoint/"
	ContributePluginComponentPrefix = AttributePrefix + "contribute-plugin-component/"
	ContributeContainer             = AttributePrefix + "contributed-container"
	ContributeEntryPoint            = AttributePrefix + "contribute-entry-point"
	ContributeOriginalEntryPoint    = AttributePrefix + "original-entry-point"
	ContributeInsertedContainer     = AttributePrefix + "inserted-container"
	ContributePrefix                = AttributePrefix + "contribute-"
	ContributeOriginalPrefix        = AttributePrefix + "original-"

	// ContributedByAttribute is set on every endpoint added to the dev container
	ContributedByAttribute = "contributed-by"
	ContributedByValue     = "che-code.eclipse.org"
)

// Resource is a resource field of a container
type Resource string

const (
	MemoryLimit   Resource = "memoryLimit"
	MemoryRequest Resource = "memoryRequest"
	CpuLimit      Resource = "cpuLimit"
	CpuRequest    Resource = "cpuRequest"
)

// Resources lists the resource fields handled by the merge, in the order they are processed
var Resources = []Resource{MemoryLimit, MemoryRequest, CpuLimit, CpuRequest}

// Contribution records what the merge added to, or changed in, the dev container.
// It is stored in the attributes of the dev container and read back by the extraction.
type Contribution struct {
	// ContainerName is the name of the component which received the contribution
	ContainerName string
	// Inserted is true when the dev container itself was inserted from the editor component
	Inserted bool

	EntryPoint         bool
	OriginalEntryPoint []string

	// VolumeMounts maps the name of each added volume mount to its path
	VolumeMounts map[string]string
	// VolumeComponents are the names of the added volume components
	VolumeComponents []string
	// Endpoints maps the name of each added endpoint to its target port
	Endpoints map[string]int
	// PluginComponents are the names of the added plugin components
	PluginComponents []string

	// Resources are the resource fields set by the merge
	Resources map[Resource]bool
	// OriginalResources are the values of the resource fields before the merge
	OriginalResources map[Resource]string
}

// NewContribution returns an empty contribution for the named container
func NewContribution(containerName string) *Contribution {
	return &Contribution{
		ContainerName:     containerName,
		VolumeMounts:      map[string]string{},
		Endpoints:         map[string]int{},
		Resources:         map[Resource]bool{},
		OriginalResources: map[Resource]string{},
	}
}

// Encode writes the contribution into attrs and returns the resulting attributes
func (o *Contribution) Encode(attrs attributes.Attributes) (attributes.Attributes, error) {
	if attrs == nil {
		attrs = attributes.Attributes{}
	}
	var err error
	if o.EntryPoint {
		attrs.PutBoolean(ContributeEntryPoint, true)
	}
	if o.OriginalEntryPoint != nil {
		attrs.Put(ContributeOriginalEntryPoint, o.OriginalEntryPoint, &err)
	}
	for _, name := range sortedKeys(o.VolumeMounts) {
		attrs.PutString(ContributeVolumeMountPrefix+name, o.VolumeMounts[name])
	}
	for _, name := range o.VolumeComponents {
		attrs.PutBoolean(ContributeVolumeComponentPrefix+name, true)
	}
	for _, name := range sortedKeys(o.Endpoints) {
		attrs.Put(ContributeEndpointPrefix+name, o.Endpoints[name], &err)
	}
	for _, resource := range Resources {
		if o.Resources[resource] {
			attrs.PutBoolean(ContributePrefix+string(resource), true)
		}
		if original, ok := o.OriginalResources[resource]; ok {
			attrs.PutString(ContributeOriginalPrefix+string(resource), original)
		}
	}
	if o.Inserted {
		attrs.PutBoolean(ContributeInsertedContainer, true)
	}
	attrs.PutString(ContributeContainer, o.ContainerName)
	for _, name := range o.PluginComponents {
		attrs.PutBoolean(ContributePluginComponentPrefix+name, true)
	}
	if err != nil {
		return nil, err
	}
	return attrs, nil
}

// DecodeContribution reads a contribution from the attributes of a dev container.
// It returns nil when the attributes carry no contributed container marker.
func DecodeContribution(attrs attributes.Attributes) (*Contribution, error) {
	if !attrs.Exists(ContributeContainer) {
		return nil, nil
	}
	var err error
	result := NewContribution(attrs.GetString(ContributeContainer, &err))
	if attrs.Exists(ContributeInsertedContainer) {
		result.Inserted = attrs.GetBoolean(ContributeInsertedContainer, &err)
	}
	if attrs.Exists(ContributeEntryPoint) {
		result.EntryPoint = attrs.GetBoolean(ContributeEntryPoint, &err)
	}
	if attrs.Exists(ContributeOriginalEntryPoint) {
		if e := attrs.GetInto(ContributeOriginalEntryPoint, &result.OriginalEntryPoint); e != nil {
			return nil, fmt.Errorf("unable to read %s: %w", ContributeOriginalEntryPoint, e)
		}
	}
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		switch {
		case strings.HasPrefix(key, ContributeVolumeMountPrefix):
			result.VolumeMounts[strings.TrimPrefix(key, ContributeVolumeMountPrefix)] = attrs.GetString(key, &err)
		case strings.HasPrefix(key, ContributeVolumeComponentPrefix):
			result.VolumeComponents = append(result.VolumeComponents, strings.TrimPrefix(key, ContributeVolumeComponentPrefix))
		case strings.HasPrefix(key, ContributeEndpointPrefix):
			var port int
			if e := attrs.GetInto(key, &port); e != nil {
				return nil, fmt.Errorf("unable to read %s: %w", key, e)
			}
			result.Endpoints[strings.TrimPrefix(key, ContributeEndpointPrefix)] = port
		case strings.HasPrefix(key, ContributePluginComponentPrefix):
			result.PluginComponents = append(result.PluginComponents, strings.TrimPrefix(key, ContributePluginComponentPrefix))
		}
	}
	for _, resource := range Resources {
		if attrs.Exists(ContributePrefix + string(resource)) {
			result.Resources[resource] = attrs.GetBoolean(ContributePrefix+string(resource), &err)
		}
		if attrs.Exists(ContributeOriginalPrefix + string(resource)) {
			result.OriginalResources[resource] = attrs.GetString(ContributeOriginalPrefix+string(resource), &err)
		}
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// StripContribution removes every attribute of the che-code namespace.
// It returns nil when no attribute is left.
func StripContribution(attrs attributes.Attributes) attributes.Attributes {
	for key := range attrs {
		if strings.HasPrefix(key, AttributePrefix) {
			delete(attrs, key)
		}
	}
	if len(attrs) == 0 {
		return nil
	}
	return attrs
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
