// Package generate turns a user devfile and an editor devfile into a DevWorkspace and its templates
package generate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
	"github.com/pborman/uuid"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/klog/v2"
	"sigs.k8s.io/yaml"

	"github.com/che-incubator/devworkspace-handler/pkg/api"
	"github.com/che-incubator/devworkspace-handler/pkg/devfile"
	"github.com/che-incubator/devworkspace-handler/pkg/devfile/validate"
	"github.com/che-incubator/devworkspace-handler/pkg/libdevfile/generator"
)

// DefaultDevWorkspacePrefix prefixes the name of a DevWorkspace built from a devfile without name
const DefaultDevWorkspacePrefix = "devworkspace-"

const documentSeparator = "---\n"

// GenerateClient implements Client
type GenerateClient struct {
	resolver devfile.Client
}

var _ Client = (*GenerateClient)(nil)

func NewGenerateClient(resolver devfile.Client) *GenerateClient {
	return &GenerateClient{
		resolver: resolver,
	}
}

func (o *GenerateClient) Generate(devfileContent []byte, editorContent []byte) (*api.DevfileContext, error) {
	userDevfile, err := parseDocument("devfile", devfileContent)
	if err != nil {
		return nil, err
	}
	editorDevfile, err := parseDocument("editor devfile", editorContent)
	if err != nil {
		return nil, err
	}
	if err = validate.ValidateHeader(userDevfile); err != nil {
		return nil, err
	}
	if err = validate.ValidateHeader(editorDevfile); err != nil {
		return nil, err
	}

	devWorkspaceSpec, err := toTemplateSpec(userDevfile)
	if err != nil {
		return nil, fmt.Errorf("unable to read the devfile content: %w", err)
	}
	templateSpec, err := toTemplateSpec(editorDevfile)
	if err != nil {
		return nil, fmt.Errorf("unable to read the editor devfile content: %w", err)
	}
	if err = validate.ValidateResources(devWorkspaceSpec.Components); err != nil {
		return nil, err
	}
	if err = validate.ValidateResources(templateSpec.Components); err != nil {
		return nil, err
	}

	suffix := metadataName(userDevfile)
	devWorkspaceName := suffix
	if devWorkspaceName == "" {
		devWorkspaceName = DefaultDevWorkspacePrefix + uuid.NewSHA1(uuid.NameSpace_OID, devfileContent).String()[:8]
	}
	templateName := joinNonEmpty("-", metadataName(editorDevfile), suffix)

	devWorkspace := generator.GetDevWorkspace(generator.DevWorkspaceParams{
		ObjectMeta: metav1.ObjectMeta{Name: devWorkspaceName},
		Started:    true,
		Template:   *devWorkspaceSpec,
	})
	template := generator.GetDevWorkspaceTemplate(generator.DevWorkspaceTemplateParams{
		ObjectMeta: metav1.ObjectMeta{Name: templateName},
		Spec:       *templateSpec,
	})
	devfileContext := &api.DevfileContext{
		Devfile:               userDevfile,
		DevWorkspace:          &devWorkspace,
		DevWorkspaceTemplates: []*v1alpha2.DevWorkspaceTemplate{&template},
		Suffix:                suffix,
	}
	klog.V(2).Infof("generating DevWorkspace %q with template %q", devWorkspaceName, templateName)

	if err = o.resolver.Update(devfileContext); err != nil {
		return nil, err
	}
	return devfileContext, nil
}

func (o *GenerateClient) Serialize(devfileContext *api.DevfileContext) ([]byte, error) {
	var documents [][]byte
	for _, template := range devfileContext.DevWorkspaceTemplates {
		content, err := serializeObject(template)
		if err != nil {
			return nil, fmt.Errorf("unable to serialize the template %q: %w", template.Name, err)
		}
		documents = append(documents, content)
	}
	if devfileContext.DevWorkspace != nil {
		content, err := serializeObject(devfileContext.DevWorkspace)
		if err != nil {
			return nil, fmt.Errorf("unable to serialize the DevWorkspace %q: %w", devfileContext.DevWorkspace.Name, err)
		}
		documents = append(documents, content)
	}
	return bytes.Join(documents, []byte(documentSeparator)), nil
}

func parseDocument(name string, content []byte) (map[string]interface{}, error) {
	document := map[string]interface{}{}
	if err := yaml.Unmarshal(content, &document); err != nil {
		return nil, NewInvalidDocumentError(name, err)
	}
	return document, nil
}

// toTemplateSpec reads the content of a devfile, all but its header, as a template spec
func toTemplateSpec(document map[string]interface{}) (*v1alpha2.DevWorkspaceTemplateSpec, error) {
	content := make(map[string]interface{}, len(document))
	for key, value := range document {
		if key == "schemaVersion" || key == "metadata" {
			continue
		}
		content[key] = value
	}
	raw, err := json.Marshal(content)
	if err != nil {
		return nil, err
	}
	var spec v1alpha2.DevWorkspaceTemplateSpec
	if err = json.Unmarshal(raw, &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

func metadataName(document map[string]interface{}) string {
	metadata, ok := document["metadata"].(map[string]interface{})
	if !ok {
		return ""
	}
	name, _ := metadata["name"].(string)
	return name
}

func joinNonEmpty(separator string, parts ...string) string {
	var kept []string
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, separator)
}

// serializeObject drops the fields the handler never sets before marshalling to YAML
func serializeObject(object interface{}) ([]byte, error) {
	raw, err := json.Marshal(object)
	if err != nil {
		return nil, err
	}
	content := map[string]interface{}{}
	if err = json.Unmarshal(raw, &content); err != nil {
		return nil, err
	}
	delete(content, "status")
	if metadata, ok := content["metadata"].(map[string]interface{}); ok {
		delete(metadata, "creationTimestamp")
	}
	return yaml.Marshal(content)
}
