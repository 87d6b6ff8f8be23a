package devfile

import (
	"errors"
	"testing"

	"github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
	"github.com/google/go-cmp/cmp"
	"sigs.k8s.io/yaml"

	"github.com/che-incubator/devworkspace-handler/pkg/libdevfile/generator"
)

func TestCheCodeDevfileExtract_Extract_Errors(t *testing.T) {
	devfile := map[string]interface{}{"schemaVersion": "2.2.0"}
	emptyTemplate := generator.GetDevWorkspace(generator.DevWorkspaceParams{})
	notMerged := getDevfileContext([]v1alpha2.Component{getToolsComponent(v1alpha2.Container{})}).DevWorkspace

	tests := []struct {
		name         string
		devWorkspace *v1alpha2.DevWorkspace
		wantErr      error
	}{
		{
			name:         "no DevWorkspace",
			devWorkspace: nil,
			wantErr:      MissingTemplateError{},
		},
		{
			name:         "DevWorkspace without template",
			devWorkspace: &emptyTemplate,
			wantErr:      MissingTemplateError{},
		},
		{
			name:         "DevWorkspace never merged",
			devWorkspace: notMerged,
			wantErr:      ContributionNotFoundError{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCheCodeDevfileExtract().Extract(devfile, tt.devWorkspace)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Extract() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheCodeDevfileExtract_ExtractContent(t *testing.T) {
	devfileContent := []byte(`schemaVersion: 2.2.0
metadata:
  name: nodejs
components:
  - name: tools
    container:
      image: ` + udiImage + `
      memoryLimit: 2Gi
`)
	devfileContext := getDevfileContext(
		[]v1alpha2.Component{getToolsComponent(v1alpha2.Container{MemoryLimit: "2Gi"})},
		getEditorTemplate("che-code-nodejs", getEditorComponent()),
	)
	if err := getResolver(false).Update(devfileContext); err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	devWorkspaceContent, err := yaml.Marshal(devfileContext.DevWorkspace)
	if err != nil {
		t.Fatal(err)
	}
	templateContent, err := yaml.Marshal(devfileContext.DevWorkspaceTemplates[0])
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name                string
		devWorkspaceContent []byte
		wantErr             error
	}{
		{
			name:                "single document",
			devWorkspaceContent: devWorkspaceContent,
		},
		{
			name:                "DevWorkspace after a DevWorkspaceTemplate",
			devWorkspaceContent: append(append(append([]byte{}, templateContent...), []byte("---\n")...), devWorkspaceContent...),
		},
		{
			name:                "no DevWorkspace document",
			devWorkspaceContent: templateContent,
			wantErr:             NoDevWorkspaceDocumentError{documents: 1},
		},
		{
			name: "DevWorkspace without template",
			devWorkspaceContent: []byte(`kind: DevWorkspace
apiVersion: workspace.devfile.io/v1alpha2
metadata:
  name: nodejs
spec:
  started: true
`),
			wantErr: MissingTemplateError{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewCheCodeDevfileExtract().ExtractContent(devfileContent, tt.devWorkspaceContent)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ExtractContent() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractContent() unexpected error: %v", err)
			}
			var gotDevfile, wantDevfile map[string]interface{}
			if err = yaml.Unmarshal([]byte(got), &gotDevfile); err != nil {
				t.Fatal(err)
			}
			if err = yaml.Unmarshal(devfileContent, &wantDevfile); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(wantDevfile, gotDevfile); diff != "" {
				t.Errorf("ExtractContent() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCleanupArray(t *testing.T) {
	keepEven := func(i int) bool { return i%2 == 0 }
	if got := cleanupArray([]int{1, 3}, keepEven); got != nil {
		t.Errorf("cleanupArray() = %v, want nil", got)
	}
	if diff := cmp.Diff([]int{2, 4}, cleanupArray([]int{1, 2, 3, 4}, keepEven)); diff != "" {
		t.Errorf("cleanupArray() mismatch (-want +got):\n%s", diff)
	}
}
