package genericclioptions

import (
	"context"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/che-incubator/devworkspace-handler/pkg/handler/genericclioptions/clientset"
)

type Runnable interface {
	SetClientset(clientset *clientset.Clientset)
	Complete(ctx context.Context, cmd *cobra.Command, args []string) error
	Validate(ctx context.Context) error
	Run(ctx context.Context) error
}

// GenericRun fetches the clients declared by cmd, then completes, validates and runs o
func GenericRun(o Runnable, testClientset clientset.Clientset, cmd *cobra.Command, args []string) error {
	deps, err := clientset.Fetch(cmd, testClientset)
	if err != nil {
		return err
	}
	o.SetClientset(deps)

	ctx := cmd.Context()
	klog.V(4).Infof("running command %q with args %v", cmd.CommandPath(), args)
	if err = o.Complete(ctx, cmd, args); err != nil {
		return err
	}
	if err = o.Validate(ctx); err != nil {
		return err
	}
	return o.Run(ctx)
}
