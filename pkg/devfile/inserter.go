package devfile

import (
	"github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
	"k8s.io/klog/v2"

	"github.com/che-incubator/devworkspace-handler/pkg/api"
)

// DevContainerComponentInserter implements Inserter
type DevContainerComponentInserter struct{}

var _ Inserter = (*DevContainerComponentInserter)(nil)

func NewDevContainerComponentInserter() *DevContainerComponentInserter {
	return &DevContainerComponentInserter{}
}

func (o *DevContainerComponentInserter) Insert(devfileContext *api.DevfileContext, editorComponent *v1alpha2.Component) (*v1alpha2.Component, error) {
	devWorkspace := devfileContext.EnsureDevWorkspace()
	template := &devWorkspace.Spec.Template
	template.Components = append(template.Components, *editorComponent.DeepCopy())
	klog.V(2).Infof("no dev container found, inserting %q as dev container", editorComponent.Name)
	return &template.Components[len(template.Components)-1], nil
}
