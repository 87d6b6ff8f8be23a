// Package validate checks devfiles before they are merged
package validate

import (
	"fmt"
	"strings"

	"github.com/blang/semver"
	"github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
	"github.com/devfile/library/v2/pkg/devfile"
	"github.com/devfile/library/v2/pkg/devfile/parser"
	"k8s.io/apimachinery/pkg/api/resource"
	"k8s.io/klog/v2"
	"k8s.io/utils/pointer"

	"github.com/che-incubator/devworkspace-handler/pkg/k8s"
	"github.com/che-incubator/devworkspace-handler/pkg/log"
)

// SupportedMajorVersion is the only major schemaVersion accepted
const SupportedMajorVersion = 2

// ValidateHeader checks the schemaVersion of a devfile
func ValidateHeader(devfile map[string]interface{}) error {
	value, found := devfile["schemaVersion"]
	if !found {
		return NewUnsupportedSchemaVersionError("", "schemaVersion is required")
	}
	schemaVersion, ok := value.(string)
	if !ok {
		return NewUnsupportedSchemaVersionError(fmt.Sprintf("%v", value), "schemaVersion must be a string")
	}
	version, err := semver.Make(schemaVersion)
	if err != nil {
		return NewUnsupportedSchemaVersionError(schemaVersion, err.Error())
	}
	if version.Major != SupportedMajorVersion {
		return NewUnsupportedSchemaVersionError(schemaVersion, fmt.Sprintf("major version must be %d", SupportedMajorVersion))
	}
	return nil
}

// ValidateResources checks the resources of the container components. A quantity is rejected only when
// neither Kubernetes nor the handler units can read it. Quantities only the handler units read, such as "512K"
// or "2gi", are merged but reported with a warning.
func ValidateResources(components []v1alpha2.Component) error {
	units := k8s.NewUnitsClient()
	for _, component := range components {
		if component.Container == nil {
			continue
		}
		container := component.Container
		for _, field := range []struct {
			name  string
			value string
		}{
			{name: "memoryLimit", value: container.MemoryLimit},
			{name: "memoryRequest", value: container.MemoryRequest},
			{name: "cpuLimit", value: container.CpuLimit},
			{name: "cpuRequest", value: container.CpuRequest},
		} {
			if field.value == "" {
				continue
			}
			_, quantityErr := resource.ParseQuantity(field.value)
			if quantityErr == nil {
				continue
			}
			if _, err := units.UnitToNumber(field.value); err != nil {
				return NewInvalidResourceError(component.Name, field.name, field.value, quantityErr)
			}
			log.Warningf("%s %q of component %q is not a Kubernetes quantity: %v", field.name, field.value, component.Name, quantityErr)
		}
	}
	return nil
}

// ValidateWithLibrary parses and validates the devfile content with the devfile library.
// Parent and plugin references are not resolved.
func ValidateWithLibrary(content []byte) error {
	_, varWarnings, err := devfile.ParseDevfileAndValidate(parser.ParserArgs{
		Data:                          content,
		FlattenedDevfile:              pointer.Bool(false),
		ConvertKubernetesContentInUri: pointer.Bool(false),
	})
	if err != nil {
		return err
	}
	klog.V(4).Info("devfile validated by the devfile library")

	// display warnings related to variable substitution
	for variable, messages := range varWarnings.Commands {
		log.Warningf(variableWarning("commands", variable, messages))
	}
	for variable, messages := range varWarnings.Components {
		log.Warningf(variableWarning("components", variable, messages))
	}
	for variable, messages := range varWarnings.Projects {
		log.Warningf(variableWarning("projects", variable, messages))
	}
	for variable, messages := range varWarnings.StarterProjects {
		log.Warningf(variableWarning("starterProjects", variable, messages))
	}
	return nil
}

func variableWarning(section string, variable string, messages []string) string {
	quotedVars := []string{}
	for _, v := range messages {
		quotedVars = append(quotedVars, fmt.Sprintf("%q", v))
	}
	return fmt.Sprintf("Invalid variable(s) %s in %q section with name %q. ", strings.Join(quotedVars, ","), section, variable)
}
