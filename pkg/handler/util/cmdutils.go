package util

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/che-incubator/devworkspace-handler/pkg/log"
)

// GetFullName generates a command's full name based on its parent's full name and its own name
func GetFullName(parentName, name string) string {
	return parentName + " " + name
}

// VisitCommands visits each command within the Command tree
// It also accepts a function which is run on each command visited
func VisitCommands(cmd *cobra.Command, f func(*cobra.Command)) {
	f(cmd)
	for _, child := range cmd.Commands() {
		VisitCommands(child, f)
	}
}

// CapitalizeFlagDescriptions changes the first letter of each flag description to uppercase
func CapitalizeFlagDescriptions(f *pflag.FlagSet) string {
	f.VisitAll(func(f *pflag.Flag) {
		if f.Usage != "" {
			f.Usage = strings.ToUpper(f.Usage[:1]) + f.Usage[1:]
		}
	})
	return f.FlagUsages()
}

// LogErrorAndExit prints the cause of the given error and exits the code with an
// exit code of 1.
// If the context is provided, then that is printed, if not, then the cause is
// printed.
func LogErrorAndExit(err error, context string, a ...interface{}) {
	if err != nil {
		klog.V(4).Infof("Error:\n%v", err)
		if context == "" {
			log.Errorf("%v", err)
		} else {
			log.Errorf("%s: %v", fmt.Sprintf(context, a...), err)
		}
		os.Exit(1)
	}
}
