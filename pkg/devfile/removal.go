package devfile

import (
	"github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"

	"github.com/che-incubator/devworkspace-handler/pkg/api"
	"github.com/che-incubator/devworkspace-handler/pkg/libdevfile"
)

// CheCodeDescriptionComponentRemoval implements Remover
type CheCodeDescriptionComponentRemoval struct{}

var _ Remover = (*CheCodeDescriptionComponentRemoval)(nil)

func NewCheCodeDescriptionComponentRemoval() *CheCodeDescriptionComponentRemoval {
	return &CheCodeDescriptionComponentRemoval{}
}

func (o *CheCodeDescriptionComponentRemoval) RemoveRuntimeComponent(devfileContext *api.DevfileContext, component *v1alpha2.Component) {
	name := component.Name
	for _, template := range devfileContext.DevWorkspaceTemplates {
		if template == nil {
			continue
		}
		template.Spec.Components = libdevfile.RemoveComponents(template.Spec.Components, func(c v1alpha2.Component) bool {
			return c.Name == name
		})
	}
}
