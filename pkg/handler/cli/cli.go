package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	envcontext "github.com/che-incubator/devworkspace-handler/pkg/config/context"
	"github.com/che-incubator/devworkspace-handler/pkg/handler/cli/extract"
	"github.com/che-incubator/devworkspace-handler/pkg/handler/cli/generate"
	"github.com/che-incubator/devworkspace-handler/pkg/handler/cli/version"
	"github.com/che-incubator/devworkspace-handler/pkg/handler/genericclioptions/clientset"
	"github.com/che-incubator/devworkspace-handler/pkg/handler/util"
)

// HandlerRecommendedName is the recommended command name
const HandlerRecommendedName = "devworkspace-handler"

var (
	handlerLong = `devworkspace-handler merges the che-code editor into the DevWorkspace built from a devfile,
and extracts the original devfile back from a merged DevWorkspace.`

	handlerExample = `  # Build a DevWorkspace and its editor template from a devfile
  %[1]s generate --devfile-path devfile.yaml --editor-path che-code.yaml --output-file all-in-one.yaml

  # Get the devfile back
  %[1]s extract --devfile-path devfile.yaml --devworkspace-path all-in-one.yaml --output-file extracted.yaml`

	rootUsageTemplate = `Usage:{{if .Runnable}}
  {{if .HasAvailableFlags}}{{appendIfNotPresent .UseLine "[flags]"}}{{else}}{{.UseLine}}{{end}}{{end}}{{if .HasAvailableSubCommands}}
  {{ .CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{ .Example }}{{end}}{{ if .HasAvailableSubCommands}}

Commands:{{range .Commands}}{{if eq .Annotations.command "main"}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

Utility Commands:{{range .Commands}}{{if or (eq .Annotations.command "utility") (eq .Name "help") }}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{ if .HasAvailableLocalFlags}}

Flags:
{{CapitalizeFlagDescriptions .LocalFlags | trimRightSpace }}{{end}}{{ if .HasAvailableInheritedFlags}}

Global Flags:
{{CapitalizeFlagDescriptions .InheritedFlags | trimRightSpace}}{{end}}{{ if .HasAvailableSubCommands }}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`

	rootDefaultHelp = handlerLong + `

Generate a DevWorkspace from a devfile and the che-code editor devfile:

 devworkspace-handler generate --devfile-path devfile.yaml --editor-path che-code.yaml --output-file all-in-one.yaml

To see a full list of commands, run 'devworkspace-handler --help'`
)

// NewCmdHandler creates the root command. The klog flags must have been registered on the go flag.CommandLine before.
func NewCmdHandler(ctx context.Context, name, fullName string, testClientset clientset.Clientset) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               name,
		Short:             "DevWorkspace handler for che-code",
		Long:              handlerLong,
		RunE:              ShowHelp,
		Example:           fmt.Sprintf(handlerExample, fullName),
		PersistentPreRunE: applyLogLevel,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	rootCmd.SetContext(ctx)

	// Here we add the necessary "logging" flags.. However, we choose to hide some of these from the user
	// as they are not necessarily needed and more for advanced debugging
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	for _, flagName := range []string{
		"add_dir_header", "alsologtostderr", "log_backtrace_at", "log_dir", "log_file", "log_file_max_size",
		"logtostderr", "one_output", "skip_headers", "skip_log_headers", "stderrthreshold", "vmodule",
	} {
		_ = pflag.CommandLine.MarkHidden(flagName)
	}

	// Override the verbosity flag description
	if verbosity := pflag.Lookup("v"); verbosity != nil {
		verbosity.Usage += ". Level varies from 0 to 9 (default 0)."
	}

	rootCmd.SetUsageTemplate(rootUsageTemplate)
	cobra.AddTemplateFunc("CapitalizeFlagDescriptions", util.CapitalizeFlagDescriptions)

	rootCmd.AddCommand(
		generate.NewCmdGenerate(generate.RecommendedCommandName, util.GetFullName(fullName, generate.RecommendedCommandName), testClientset),
		extract.NewCmdExtract(extract.RecommendedCommandName, util.GetFullName(fullName, extract.RecommendedCommandName), testClientset),
		version.NewCmdVersion(version.RecommendedCommandName, util.GetFullName(fullName, version.RecommendedCommandName), testClientset),
	)

	util.VisitCommands(rootCmd, reconfigureCmdWithSubcmd)

	return rootCmd
}

// applyLogLevel sets the klog verbosity from DEVWORKSPACE_HANDLER_LOG_LEVEL when the -v flag is not given
func applyLogLevel(cmd *cobra.Command, args []string) error {
	level := envcontext.GetEnvConfig(cmd.Context()).DevworkspaceHandlerLogLevel
	if level == nil {
		return nil
	}
	verbosity := pflag.Lookup("v")
	if verbosity == nil || verbosity.Changed {
		return nil
	}
	if err := verbosity.Value.Set(strconv.Itoa(*level)); err != nil {
		return fmt.Errorf("invalid DEVWORKSPACE_HANDLER_LOG_LEVEL %d: %w", *level, err)
	}
	klog.V(4).Infof("log level set to %d from the environment", *level)
	return nil
}

// reconfigureCmdWithSubcmd reconfigures each root command with a list of all subcommands and lists them
// beside the help output
// Adapted from: https://github.com/cppforlife/knctl/blob/612840d3c9729b1c57b20ca0450acab0d6eceeeb/pkg/knctl/cmd/knctl.go#L224
func reconfigureCmdWithSubcmd(cmd *cobra.Command) {
	if len(cmd.Commands()) == 0 {
		return
	}

	if cmd.Args == nil {
		cmd.Args = cobra.ArbitraryArgs
	}
	if cmd.RunE == nil {
		cmd.RunE = ShowSubcommands
	}

	var strs []string
	for _, subcmd := range cmd.Commands() {
		if !subcmd.Hidden {
			strs = append(strs, strings.Split(subcmd.Use, " ")[0])
		}
	}

	cmd.Short += " (" + strings.Join(strs, ", ") + ")"
}

// ShowSubcommands shows all available subcommands.
// Adapted from: https://github.com/cppforlife/knctl/blob/612840d3c9729b1c57b20ca0450acab0d6eceeeb/pkg/knctl/cmd/knctl.go#L224
func ShowSubcommands(cmd *cobra.Command, args []string) error {
	var strs []string
	for _, subcmd := range cmd.Commands() {
		if !subcmd.Hidden {
			strs = append(strs, subcmd.Name())
		}
	}
	return fmt.Errorf("subcommand not found, use one of the available commands: %s", strings.Join(strs, ", "))
}

// ShowHelp will show the help correctly (and whether or not the command is invalid...)
// Taken from: https://github.com/cppforlife/knctl/blob/612840d3c9729b1c57b20ca0450acab0d6eceeeb/pkg/knctl/cmd/knctl.go#L71
func ShowHelp(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		// Print out the default "help" usage
		fmt.Fprintln(cmd.OutOrStdout(), rootDefaultHelp)
		return nil
	}

	_ = cmd.Help()
	return fmt.Errorf("invalid command - see available commands/subcommands above")
}
