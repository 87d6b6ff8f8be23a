package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"testing"

	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/che-incubator/devworkspace-handler/pkg/config"
	envcontext "github.com/che-incubator/devworkspace-handler/pkg/config/context"
	"github.com/che-incubator/devworkspace-handler/pkg/handler/cli"
	"github.com/che-incubator/devworkspace-handler/pkg/handler/genericclioptions/clientset"
	"github.com/che-incubator/devworkspace-handler/pkg/log"
	"github.com/che-incubator/devworkspace-handler/pkg/testingutil/filesystem"
)

func resetGlobalFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	klog.InitFlags(nil)
}

type runOptions struct {
	config map[string]string
}

func runCommand(
	t *testing.T,
	args []string,
	options runOptions,
	clientset clientset.Clientset,
	populateFS func(fs filesystem.Filesystem) error,
	f func(err error, stdout, stderr string),
) {
	if populateFS != nil {
		err := populateFS(clientset.FS)
		if err != nil {
			t.Fatal(err)
		}
	}

	ctx := context.Background()
	envConfig, err := config.GetConfigurationWith(envconfig.MapLookuper(options.config))
	if err != nil {
		t.Fatal(err)
	}
	ctx = envcontext.WithEnvConfig(ctx, *envConfig)

	resetGlobalFlags()

	var stdoutB, stderrB bytes.Buffer
	previousStdout, previousStderr := log.GetStdout(), log.GetStderr()
	defer func() {
		log.SetStdout(previousStdout)
		log.SetStderr(previousStderr)
	}()

	clientset.Stdout = &stdoutB
	clientset.Stderr = &stderrB
	root := cli.NewCmdHandler(ctx, cli.HandlerRecommendedName, cli.HandlerRecommendedName, clientset)

	root.SetOut(&stdoutB)
	root.SetErr(&stderrB)

	root.SetArgs(args)

	err = root.ExecuteContext(ctx)

	stdout := stdoutB.String()
	stderr := stderrB.String()

	f(err, stdout, stderr)
}

func writeFiles(files map[string]string) func(fs filesystem.Filesystem) error {
	return func(fs filesystem.Filesystem) error {
		for name, content := range files {
			if err := fs.WriteFile(name, []byte(content), 0644); err != nil {
				return err
			}
		}
		return nil
	}
}

func checkEqual[T comparable](t *testing.T, a, b T) {
	if a != b {
		t.Errorf("value should be \"%v\" but is \"%v\"", b, a)
	}
}
