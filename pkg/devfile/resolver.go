package devfile

import (
	"k8s.io/klog/v2"

	"github.com/che-incubator/devworkspace-handler/pkg/api"
	"github.com/che-incubator/devworkspace-handler/pkg/k8s"
)

// CheCodeDevfileResolver implements Client
type CheCodeDevfileResolver struct {
	descriptionFinder  DescriptionFinder
	devContainerFinder DevContainerFinder
	inserter           Inserter
	updater            Updater
	remover            Remover
}

var _ Client = (*CheCodeDevfileResolver)(nil)

func NewCheCodeDevfileResolver(
	descriptionFinder DescriptionFinder,
	devContainerFinder DevContainerFinder,
	inserter Inserter,
	updater Updater,
	remover Remover,
) *CheCodeDevfileResolver {
	return &CheCodeDevfileResolver{
		descriptionFinder:  descriptionFinder,
		devContainerFinder: devContainerFinder,
		inserter:           inserter,
		updater:            updater,
		remover:            remover,
	}
}

// NewDefaultCheCodeDevfileResolver returns a resolver looking for the editor description named descriptionComponentName
func NewDefaultCheCodeDevfileResolver(descriptionComponentName string, insertTemplatesAsPlugin bool) *CheCodeDevfileResolver {
	return NewCheCodeDevfileResolver(
		NewCheCodeDescriptionComponentFinder(descriptionComponentName),
		NewDevContainerComponentFinder(descriptionComponentName),
		NewDevContainerComponentInserter(),
		NewDevContainerComponentUpdater(k8s.NewUnitsClient(), insertTemplatesAsPlugin),
		NewCheCodeDescriptionComponentRemoval(),
	)
}

func (o *CheCodeDevfileResolver) Update(devfileContext *api.DevfileContext) error {
	editorComponent, err := o.descriptionFinder.Find(devfileContext)
	if err != nil {
		return err
	}
	if editorComponent == nil {
		return NewEditorNotFoundError()
	}
	// keep the editor away from the mutations of the DevWorkspace components
	editorComponent = editorComponent.DeepCopy()

	devContainer, err := o.devContainerFinder.Find(devfileContext)
	if err != nil {
		return err
	}
	devContainerAlreadyExisted := devContainer != nil
	if !devContainerAlreadyExisted {
		devContainer, err = o.inserter.Insert(devfileContext, editorComponent)
		if err != nil {
			return err
		}
	}
	klog.V(2).Infof("merging editor %q into dev container %q", editorComponent.Name, devContainer.Name)

	err = o.updater.Update(devfileContext, editorComponent, devContainer, devContainerAlreadyExisted)
	if err != nil {
		return err
	}
	o.remover.RemoveRuntimeComponent(devfileContext, editorComponent)
	return nil
}
