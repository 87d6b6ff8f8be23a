// Package clientset is used to inject clients inside commands
//
// To use this package:
// From a command definition, use the `Add` function to declare the clients needed by the command
// Then, from the `SetClientset` method of the `Runnable` interface, you can access the clients
//
// To add a new client to this package:
// - add a new constant for the client
// - if the client has sub-dependencies, define a new entry in the map of sub-dependencies
// - add the packages's client to the Clientset structure
// - complete the Fetch function to instantiate the package's client
package clientset

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	envcontext "github.com/che-incubator/devworkspace-handler/pkg/config/context"
	"github.com/che-incubator/devworkspace-handler/pkg/devfile"
	"github.com/che-incubator/devworkspace-handler/pkg/generate"
	"github.com/che-incubator/devworkspace-handler/pkg/log"
	"github.com/che-incubator/devworkspace-handler/pkg/testingutil/filesystem"
)

const (
	// EXTRACT instantiates client for pkg/devfile extraction
	EXTRACT = "DEP_EXTRACT"
	// FILESYSTEM instantiates client for pkg/testingutil/filesystem
	FILESYSTEM = "DEP_FILESYSTEM"
	// GENERATE instantiates client for pkg/generate
	GENERATE = "DEP_GENERATE"
	// RESOLVER instantiates client for pkg/devfile merging
	RESOLVER = "DEP_RESOLVER"
	/* Add key for new package here */
)

// subdeps defines the sub-dependencies
// Clients will be created only once and be reused for sub-dependencies
var subdeps map[string][]string = map[string][]string{
	EXTRACT:  {FILESYSTEM},
	GENERATE: {FILESYSTEM, RESOLVER},
	/* Add sub-dependencies here, if any */
}

type Clientset struct {
	ExtractClient  devfile.ExtractClient
	FS             filesystem.Filesystem
	GenerateClient generate.Client
	ResolverClient devfile.Client
	Stderr         io.Writer
	Stdout         io.Writer
	/* Add client by alphabetic order */
}

func Add(command *cobra.Command, dependencies ...string) {
	if command.Annotations == nil {
		command.Annotations = map[string]string{}
	}
	for _, dependency := range dependencies {
		_, ok := command.Annotations[dependency]
		// prevent infinite loop with circular dependencies
		if !ok {
			command.Annotations[dependency] = "true"
			Add(command, subdeps[dependency]...)
		}
	}
}

func isDefined(command *cobra.Command, dependency string) bool {
	_, ok := command.Annotations[dependency]
	return ok
}

// Fetch instantiates the clients declared by command. Clients set in testClientset are used instead of the default ones.
func Fetch(command *cobra.Command, testClientset Clientset) (*Clientset, error) {
	var (
		dep = Clientset{}
		ctx = command.Context()
	)

	dep.Stdout = os.Stdout
	if testClientset.Stdout != nil {
		dep.Stdout = testClientset.Stdout
	}
	dep.Stderr = os.Stderr
	if testClientset.Stderr != nil {
		dep.Stderr = testClientset.Stderr
	}
	log.SetStdout(dep.Stdout)
	log.SetStderr(dep.Stderr)

	/* Without sub-dependencies */
	if isDefined(command, FILESYSTEM) {
		if testClientset.FS != nil {
			dep.FS = testClientset.FS
		} else {
			dep.FS = filesystem.DefaultFs{}
		}
	}
	if isDefined(command, RESOLVER) {
		if testClientset.ResolverClient != nil {
			dep.ResolverClient = testClientset.ResolverClient
		} else {
			envConfig := envcontext.GetEnvConfig(ctx)
			klog.V(3).Infof("editor description component %q, templates inserted as plugins: %v",
				envConfig.CheCodeDescriptionComponentName, envConfig.InsertDevWorkspaceTemplatesAsPlugin)
			dep.ResolverClient = devfile.NewDefaultCheCodeDevfileResolver(
				envConfig.CheCodeDescriptionComponentName,
				envConfig.InsertDevWorkspaceTemplatesAsPlugin,
			)
		}
	}
	if isDefined(command, EXTRACT) {
		if testClientset.ExtractClient != nil {
			dep.ExtractClient = testClientset.ExtractClient
		} else {
			dep.ExtractClient = devfile.NewCheCodeDevfileExtract()
		}
	}

	/* With sub-dependencies */
	if isDefined(command, GENERATE) {
		if testClientset.GenerateClient != nil {
			dep.GenerateClient = testClientset.GenerateClient
		} else {
			dep.GenerateClient = generate.NewGenerateClient(dep.ResolverClient)
		}
	}

	/* Instantiate new clients here. Take care to instantiate after all sub-dependencies */
	return &dep, nil
}
