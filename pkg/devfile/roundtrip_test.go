package devfile

import (
	"github.com/devfile/api/v2/pkg/apis/workspaces/v1alpha2"
	"github.com/devfile/api/v2/pkg/attributes"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"sigs.k8s.io/yaml"

	"github.com/che-incubator/devworkspace-handler/pkg/api"
	"github.com/che-incubator/devworkspace-handler/pkg/libdevfile/generator"
)

var _ = Describe("merging che-code into a DevWorkspace and extracting it back", func() {
	var (
		devfileContext *api.DevfileContext
		userTemplate   *v1alpha2.DevWorkspaceTemplateSpec
		asPlugin       bool
	)

	expectRoundTrip := func() {
		Expect(getResolver(asPlugin).Update(devfileContext)).To(Succeed())

		extracted, err := NewCheCodeDevfileExtract().Extract(devfileContext.Devfile, devfileContext.DevWorkspace)
		Expect(err).ToNot(HaveOccurred())

		want, err := toMap(userTemplate)
		Expect(err).ToNot(HaveOccurred())
		want["schemaVersion"] = "2.2.0"
		want["metadata"] = map[string]interface{}{"name": "nodejs"}

		var got map[string]interface{}
		Expect(yaml.Unmarshal([]byte(extracted), &got)).To(Succeed())
		Expect(got).To(Equal(want))
	}

	BeforeEach(func() {
		asPlugin = false
	})

	When("the user devfile has a dev container", func() {
		BeforeEach(func() {
			tools := getToolsComponent(v1alpha2.Container{
				Command:      []string{"sleep", "infinity"},
				MemoryLimit:  "2Gi",
				CpuRequest:   "100m",
				VolumeMounts: []v1alpha2.VolumeMount{{Name: "m2", Path: "/home/user/.m2"}},
			})
			tools.Attributes = attributes.Attributes{}.PutString("app.kubernetes.io/part-of", "nodejs")
			tools.Container.Endpoints = []v1alpha2.Endpoint{
				{Name: "http", TargetPort: 3000},
				{Name: "che-code", TargetPort: 8080},
			}
			devfileContext = getDevfileContext(
				[]v1alpha2.Component{
					tools,
					generator.GetVolumeComponent(generator.VolumeComponentParams{Name: "m2"}),
				},
				getEditorTemplate("che-code-nodejs", getEditorComponent()),
			)
			userTemplate = devfileContext.DevWorkspace.Spec.Template.DeepCopy()
		})

		It("should merge the editor into the dev container", func() {
			Expect(getResolver(false).Update(devfileContext)).To(Succeed())

			Expect(componentNames(devfileContext.Components())).To(Equal([]string{"tools", "m2", "checode"}))
			Expect(devfileContext.DevWorkspaceTemplates[0].Spec.Components).To(BeEmpty())

			tools := componentNamed(devfileContext, "tools")
			Expect(tools.Container.Command).To(Equal([]string{"sleep", "infinity"}))
			Expect(tools.Container.MemoryLimit).To(Equal("3Gi"))
			Expect(tools.Container.CpuLimit).To(Equal("500m"))
			Expect(tools.Container.CpuRequest).To(Equal("130m"))
			Expect(tools.Container.Endpoints).To(HaveLen(3))
			Expect(tools.Attributes.Exists(ContributeContainer)).To(BeTrue())
		})

		It("should extract the user devfile", func() {
			expectRoundTrip()
		})

		When("templates are referenced as plugins", func() {
			BeforeEach(func() {
				asPlugin = true
			})

			It("should extract the user devfile", func() {
				expectRoundTrip()
			})
		})
	})

	When("the user devfile has no dev container", func() {
		BeforeEach(func() {
			devfileContext = getDevfileContext(
				[]v1alpha2.Component{
					generator.GetVolumeComponent(generator.VolumeComponentParams{Name: "m2"}),
				},
				getEditorTemplate("che-code-nodejs",
					getEditorComponent(),
					generator.GetVolumeComponent(generator.VolumeComponentParams{Name: "checode"}),
				),
			)
			userTemplate = devfileContext.DevWorkspace.Spec.Template.DeepCopy()
		})

		It("should insert the editor as dev container", func() {
			Expect(getResolver(false).Update(devfileContext)).To(Succeed())

			Expect(componentNames(devfileContext.Components())).To(Equal([]string{"m2", DefaultDescriptionComponentName}))
			Expect(componentNames(devfileContext.DevWorkspaceTemplates[0].Spec.Components)).To(Equal([]string{"checode"}))
		})

		It("should extract the user devfile", func() {
			expectRoundTrip()
		})
	})
})
