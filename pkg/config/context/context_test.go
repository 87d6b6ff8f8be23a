package context

import (
	"context"
	"testing"

	"github.com/che-incubator/devworkspace-handler/pkg/config"
)

func TestEnvConfig(t *testing.T) {
	ctx := WithEnvConfig(context.Background(), config.Configuration{CheCodeDescriptionComponentName: "my-editor"})
	if got := GetEnvConfig(ctx).CheCodeDescriptionComponentName; got != "my-editor" {
		t.Errorf("GetEnvConfig() component name = %q, want %q", got, "my-editor")
	}

	defer func() {
		if recover() == nil {
			t.Errorf("GetEnvConfig() should panic when no configuration is set")
		}
	}()
	GetEnvConfig(context.Background())
}
