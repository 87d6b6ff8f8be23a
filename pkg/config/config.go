// Package config reads the configuration of the handler from the environment
package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

type Configuration struct {
	// CheCodeDescriptionComponentName is the name of the editor component describing the che-code runtime
	CheCodeDescriptionComponentName string `env:"CHE_CODE_DESCRIPTION_COMPONENT_NAME,default=che-code-runtime-description"`
	// DevworkspaceHandlerLogLevel sets the klog verbosity when -v is not passed
	DevworkspaceHandlerLogLevel *int `env:"DEVWORKSPACE_HANDLER_LOG_LEVEL,noinit"`
	// InsertDevWorkspaceTemplatesAsPlugin references each generated template from the DevWorkspace
	InsertDevWorkspaceTemplatesAsPlugin bool `env:"INSERT_DEV_WORKSPACE_TEMPLATES_AS_PLUGIN,default=false"`
}

// GetConfiguration initializes a Configuration by using the system environment.
func GetConfiguration() (*Configuration, error) {
	return GetConfigurationWith(envconfig.OsLookuper())
}

// GetConfigurationWith initializes a Configuration by using the given lookuper
func GetConfigurationWith(lookuper envconfig.Lookuper) (*Configuration, error) {
	var s Configuration
	err := envconfig.ProcessWith(context.Background(), &s, lookuper)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
