package main

import (
	"context"
	"flag"

	"k8s.io/klog/v2"

	"github.com/che-incubator/devworkspace-handler/pkg/config"
	envcontext "github.com/che-incubator/devworkspace-handler/pkg/config/context"
	"github.com/che-incubator/devworkspace-handler/pkg/handler/cli"
	"github.com/che-incubator/devworkspace-handler/pkg/handler/genericclioptions/clientset"
	"github.com/che-incubator/devworkspace-handler/pkg/handler/util"
)

func main() {
	klog.InitFlags(nil)
	defer klog.Flush()

	ctx := context.Background()
	envConfig, err := config.GetConfiguration()
	if err != nil {
		util.LogErrorAndExit(err, "unable to read the configuration from the environment")
	}
	ctx = envcontext.WithEnvConfig(ctx, *envConfig)

	// create the complete command
	root := cli.NewCmdHandler(ctx, cli.HandlerRecommendedName, cli.HandlerRecommendedName, clientset.Clientset{})
	// override usage so that flag.Parse uses root command's usage instead of default one when invoked with -h
	flag.Usage = func() {
		_ = root.Help()
	}

	util.LogErrorAndExit(root.ExecuteContext(ctx), "")
}
