package generate

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/tidwall/gjson"
	"sigs.k8s.io/yaml"

	"github.com/che-incubator/devworkspace-handler/pkg/api"
	"github.com/che-incubator/devworkspace-handler/pkg/devfile"
	"github.com/che-incubator/devworkspace-handler/pkg/devfile/validate"
)

const userDevfile = `schemaVersion: 2.2.0
metadata:
  name: nodejs
components:
  - name: tools
    container:
      image: quay.io/devfile/universal-developer-image:ubi8-latest
      memoryLimit: 2Gi
      mountSources: true
  - name: m2
    volume:
      size: 1G
commands:
  - id: run
    exec:
      component: tools
      commandLine: npm start
`

const editorDevfile = `schemaVersion: 2.2.0
metadata:
  name: che-code
commands:
  - id: init-container-command
    apply:
      component: che-code-injector
events:
  preStart:
    - init-container-command
components:
  - name: che-code-runtime-description
    container:
      image: quay.io/devfile/universal-developer-image:ubi8-latest
      command:
        - /checode/entrypoint-volume.sh
      volumeMounts:
        - name: checode
          path: /checode
      memoryLimit: 1024Mi
      cpuLimit: 500m
      endpoints:
        - name: che-code
          targetPort: 3100
          exposure: public
          protocol: https
          attributes:
            type: main
  - name: che-code-injector
    container:
      image: quay.io/che-incubator/che-code:latest
      command: ["/entrypoint-init-container.sh"]
      volumeMounts:
        - name: checode
          path: /checode
  - name: checode
    volume: {}
`

func TestGenerateClient_Generate(t *testing.T) {
	o := NewGenerateClient(devfile.NewDefaultCheCodeDevfileResolver(devfile.DefaultDescriptionComponentName, false))

	got, err := o.Generate([]byte(userDevfile), []byte(editorDevfile))
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if got.Suffix != "nodejs" {
		t.Errorf("Generate() suffix = %q, want %q", got.Suffix, "nodejs")
	}
	if got.DevWorkspace.Name != "nodejs" {
		t.Errorf("Generate() DevWorkspace name = %q, want %q", got.DevWorkspace.Name, "nodejs")
	}
	if !got.DevWorkspace.Spec.Started {
		t.Errorf("Generate() DevWorkspace should be started")
	}
	if len(got.DevWorkspaceTemplates) != 1 {
		t.Fatalf("Generate() templates = %d, want 1", len(got.DevWorkspaceTemplates))
	}
	template := got.DevWorkspaceTemplates[0]
	if template.Name != "che-code-nodejs" {
		t.Errorf("Generate() template name = %q, want %q", template.Name, "che-code-nodejs")
	}

	var templateComponents []string
	for _, component := range template.Spec.Components {
		templateComponents = append(templateComponents, component.Name)
	}
	if diff := cmp.Diff([]string{"che-code-injector", "checode"}, templateComponents); diff != "" {
		t.Errorf("Generate() template components mismatch (-want +got):\n%s", diff)
	}
	if template.Spec.Events == nil || len(template.Spec.Events.PreStart) != 1 {
		t.Errorf("Generate() template events should be kept, got %v", template.Spec.Events)
	}

	var components []string
	for _, component := range got.DevWorkspace.Spec.Template.Components {
		components = append(components, component.Name)
	}
	if diff := cmp.Diff([]string{"tools", "m2"}, components); diff != "" {
		t.Errorf("Generate() DevWorkspace components mismatch (-want +got):\n%s", diff)
	}
	tools := got.DevWorkspace.Spec.Template.Components[0]
	if tools.Container.MemoryLimit != "3Gi" {
		t.Errorf("Generate() memoryLimit = %q, want %q", tools.Container.MemoryLimit, "3Gi")
	}
	if !tools.Attributes.Exists(devfile.ContributeContainer) {
		t.Errorf("Generate() the dev container should carry the contribution")
	}
}

func TestGenerateClient_Generate_UnitsQuantities(t *testing.T) {
	devfileContent := strings.Replace(userDevfile, "      memoryLimit: 2Gi\n", "      memoryLimit: 2gi\n      memoryRequest: 512K\n", 1)
	o := NewGenerateClient(devfile.NewDefaultCheCodeDevfileResolver(devfile.DefaultDescriptionComponentName, false))

	got, err := o.Generate([]byte(devfileContent), []byte(editorDevfile))
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	tools := got.DevWorkspace.Spec.Template.Components[0]
	if tools.Container.MemoryLimit != "3Gi" {
		t.Errorf("Generate() memoryLimit = %q, want %q", tools.Container.MemoryLimit, "3Gi")
	}
	if tools.Container.MemoryRequest != "512K" {
		t.Errorf("Generate() memoryRequest = %q, want %q", tools.Container.MemoryRequest, "512K")
	}
}

func TestGenerateClient_Generate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		devfile string
		editor  string
		check   func(t *testing.T, err error)
	}{
		{
			name:    "devfile is not a YAML object",
			devfile: "- a\n- b\n",
			editor:  editorDevfile,
			check: func(t *testing.T, err error) {
				var target InvalidDocumentError
				if !errors.As(err, &target) {
					t.Errorf("error = %v, want InvalidDocumentError", err)
				}
			},
		},
		{
			name:    "unsupported schemaVersion",
			devfile: strings.Replace(userDevfile, "schemaVersion: 2.2.0", "schemaVersion: 1.0.0", 1),
			editor:  editorDevfile,
			check: func(t *testing.T, err error) {
				var target validate.UnsupportedSchemaVersionError
				if !errors.As(err, &target) {
					t.Errorf("error = %v, want UnsupportedSchemaVersionError", err)
				}
			},
		},
		{
			name:    "invalid resource",
			devfile: strings.Replace(userDevfile, "memoryLimit: 2Gi", "memoryLimit: two gigs", 1),
			editor:  editorDevfile,
			check: func(t *testing.T, err error) {
				var target validate.InvalidResourceError
				if !errors.As(err, &target) {
					t.Errorf("error = %v, want InvalidResourceError", err)
				}
			},
		},
		{
			name:    "no editor description",
			devfile: userDevfile,
			editor:  strings.Replace(editorDevfile, "che-code-runtime-description", "runtime", 1),
			check: func(t *testing.T, err error) {
				var target devfile.ComponentNotFoundError
				if !errors.As(err, &target) {
					t.Errorf("error = %v, want ComponentNotFoundError", err)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewGenerateClient(devfile.NewDefaultCheCodeDevfileResolver(devfile.DefaultDescriptionComponentName, false))
			_, err := o.Generate([]byte(tt.devfile), []byte(tt.editor))
			if err == nil {
				t.Fatalf("Generate() expected an error")
			}
			tt.check(t, err)
		})
	}
}

func TestGenerateClient_Generate_Resolver(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := devfile.NewMockClient(ctrl)
	resolver.EXPECT().Update(gomock.Any()).DoAndReturn(func(devfileContext *api.DevfileContext) error {
		if devfileContext.DevWorkspace == nil || len(devfileContext.DevWorkspaceTemplates) != 1 {
			t.Errorf("Update() called with an incomplete context")
		}
		return nil
	})

	noName := strings.Replace(userDevfile, "metadata:\n  name: nodejs\n", "", 1)
	o := NewGenerateClient(resolver)
	got, err := o.Generate([]byte(noName), []byte(editorDevfile))
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if got.Suffix != "" {
		t.Errorf("Generate() suffix = %q, want empty", got.Suffix)
	}
	if !strings.HasPrefix(got.DevWorkspace.Name, DefaultDevWorkspacePrefix) || len(got.DevWorkspace.Name) != len(DefaultDevWorkspacePrefix)+8 {
		t.Errorf("Generate() DevWorkspace name = %q, want %s<8 characters>", got.DevWorkspace.Name, DefaultDevWorkspacePrefix)
	}
	if got.DevWorkspaceTemplates[0].Name != "che-code" {
		t.Errorf("Generate() template name = %q, want %q", got.DevWorkspaceTemplates[0].Name, "che-code")
	}
}

func TestGenerateClient_Serialize(t *testing.T) {
	o := NewGenerateClient(devfile.NewDefaultCheCodeDevfileResolver(devfile.DefaultDescriptionComponentName, false))
	devfileContext, err := o.Generate([]byte(userDevfile), []byte(editorDevfile))
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	got, err := o.Serialize(devfileContext)
	if err != nil {
		t.Fatalf("Serialize() unexpected error: %v", err)
	}

	documents := bytes.Split(got, []byte(documentSeparator))
	if len(documents) != 2 {
		t.Fatalf("Serialize() documents = %d, want 2", len(documents))
	}
	template, err := yaml.YAMLToJSON(documents[0])
	if err != nil {
		t.Fatal(err)
	}
	devWorkspace, err := yaml.YAMLToJSON(documents[1])
	if err != nil {
		t.Fatal(err)
	}

	for _, check := range []struct {
		document []byte
		path     string
		want     string
	}{
		{document: template, path: "kind", want: "DevWorkspaceTemplate"},
		{document: template, path: "apiVersion", want: "workspace.devfile.io/v1alpha2"},
		{document: template, path: "metadata.name", want: "che-code-nodejs"},
		{document: devWorkspace, path: "kind", want: "DevWorkspace"},
		{document: devWorkspace, path: "metadata.name", want: "nodejs"},
		{document: devWorkspace, path: "spec.started", want: "true"},
		{document: devWorkspace, path: "spec.template.components.0.container.memoryLimit", want: "3Gi"},
		{document: devWorkspace, path: "spec.template.components.0.container.endpoints.0.attributes.contributed-by", want: devfile.ContributedByValue},
	} {
		if got := gjson.GetBytes(check.document, check.path).String(); got != check.want {
			t.Errorf("Serialize() %s = %q, want %q", check.path, got, check.want)
		}
	}
	for _, path := range []string{"status", "metadata.creationTimestamp"} {
		if gjson.GetBytes(devWorkspace, path).Exists() {
			t.Errorf("Serialize() DevWorkspace should not contain %s", path)
		}
		if gjson.GetBytes(template, path).Exists() {
			t.Errorf("Serialize() template should not contain %s", path)
		}
	}

	// same input, same output
	again, err := o.Generate([]byte(userDevfile), []byte(editorDevfile))
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	serializedAgain, err := o.Serialize(again)
	if err != nil {
		t.Fatalf("Serialize() unexpected error: %v", err)
	}
	if diff := cmp.Diff(string(got), string(serializedAgain)); diff != "" {
		t.Errorf("Serialize() is not deterministic (-first +second):\n%s", diff)
	}
}
