package generator

import (
	"github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const (
	DevWorkspaceKind         = "DevWorkspace"
	DevWorkspaceTemplateKind = "DevWorkspaceTemplate"
)

// APIVersion is the apiVersion of the generated DevWorkspace and DevWorkspaceTemplate objects
var APIVersion = v1alpha2.SchemeGroupVersion.String()

type DevWorkspaceParams struct {
	ObjectMeta metav1.ObjectMeta
	Started    bool
	Template   v1alpha2.DevWorkspaceTemplateSpec
}

func GetDevWorkspace(params DevWorkspaceParams) v1alpha2.DevWorkspace {
	return v1alpha2.DevWorkspace{
		TypeMeta: metav1.TypeMeta{
			APIVersion: APIVersion,
			Kind:       DevWorkspaceKind,
		},
		ObjectMeta: params.ObjectMeta,
		Spec: v1alpha2.DevWorkspaceSpec{
			Started:  params.Started,
			Template: params.Template,
		},
	}
}

type DevWorkspaceTemplateParams struct {
	ObjectMeta metav1.ObjectMeta
	Spec       v1alpha2.DevWorkspaceTemplateSpec
}

func GetDevWorkspaceTemplate(params DevWorkspaceTemplateParams) v1alpha2.DevWorkspaceTemplate {
	return v1alpha2.DevWorkspaceTemplate{
		TypeMeta: metav1.TypeMeta{
			APIVersion: APIVersion,
			Kind:       DevWorkspaceTemplateKind,
		},
		ObjectMeta: params.ObjectMeta,
		Spec:       params.Spec,
	}
}
