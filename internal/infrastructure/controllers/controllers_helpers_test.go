//go:build unit

package controllers_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/releasekit/internal/domain/entities"
)

// newTestCommand builds a cobra command wired to ctrl with an explicit config
// file, so no settings are picked up from the machine running the tests.
func newTestCommand(t *testing.T, ctrl entities.Controller, config string) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), ".releasekit.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(config), 0o600))

	cmd := &cobra.Command{Use: ctrl.GetBind().Use}
	cmd.Flags().String("config", "", "")
	require.NoError(t, cmd.Flags().Set("config", configPath))
	ctrl.AddFlags(cmd)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	return cmd, &stdout, &stderr
}
