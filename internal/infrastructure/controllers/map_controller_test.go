//go:build unit

package controllers_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/releasekit/internal/domain/entities"
	"github.com/rios0rios0/releasekit/internal/infrastructure/controllers"
	"github.com/rios0rios0/releasekit/test/domain/commanddoubles"
)

func TestMapController(t *testing.T) {
	t.Parallel()

	dependencyMap := entities.DependencyMap{
		"httpx":    {"certifi", "idna"},
		"requests": {"certifi"},
	}

	t.Run("should print the map as YAML by default", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubMapCommand{Result: dependencyMap}
		ctrl := controllers.NewMapController(stub, entities.NewDefaultSettings())
		cmd, stdout, _ := newTestCommand(t, ctrl, "lockfiles: [requirements.txt]\n")

		// when
		err := ctrl.Execute(cmd, []string{"a.txt", "b.txt"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "httpx:\n  - certifi\n  - idna\nrequests:\n  - certifi\n", stdout.String())
		assert.Equal(t, []string{"a.txt", "b.txt"}, stub.LastOpts.Lockfiles)
		assert.Equal(t, []string{"requirements.txt"}, stub.LastSettings.Lockfiles)
	})

	t.Run("should honour the output flag over the config file", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubMapCommand{Result: entities.DependencyMap{"requests": {"certifi"}}}
		ctrl := controllers.NewMapController(stub, entities.NewDefaultSettings())
		cmd, stdout, _ := newTestCommand(t, ctrl, "output: yaml\n")
		require.NoError(t, cmd.Flags().Set("output", "json"))

		// when
		err := ctrl.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.JSONEq(t, `{"requests": ["certifi"]}`, stdout.String())
	})

	t.Run("should print only the consumers of the why dependency", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubMapCommand{Result: dependencyMap}
		ctrl := controllers.NewMapController(stub, entities.NewDefaultSettings())
		cmd, stdout, _ := newTestCommand(t, ctrl, "")
		require.NoError(t, cmd.Flags().Set("why", "CERTIFI"))

		// when
		err := ctrl.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, "httpx\nrequests\n", stdout.String())
	})

	t.Run("should return error when nothing pulls in the why dependency", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubMapCommand{Result: dependencyMap}
		ctrl := controllers.NewMapController(stub, entities.NewDefaultSettings())
		cmd, _, _ := newTestCommand(t, ctrl, "")
		require.NoError(t, cmd.Flags().Set("why", "urllib3"))

		// when
		err := ctrl.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), `no consumer pulls in "urllib3"`)
	})

	t.Run("should reject an unknown output format before running", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubMapCommand{}
		ctrl := controllers.NewMapController(stub, entities.NewDefaultSettings())
		cmd, _, _ := newTestCommand(t, ctrl, "")
		require.NoError(t, cmd.Flags().Set("output", "xml"))

		// when
		err := ctrl.Execute(cmd, nil)

		// then
		require.ErrorIs(t, err, entities.ErrInvalidOutputFormat)
		assert.Equal(t, 0, stub.ExecuteCallCount)
	})

	t.Run("should pass the compile flag and wrap command errors", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubMapCommand{ExecuteErr: errors.New("boom")}
		ctrl := controllers.NewMapController(stub, entities.NewDefaultSettings())
		cmd, _, _ := newTestCommand(t, ctrl, "")
		require.NoError(t, cmd.Flags().Set("compile", "true"))

		// when
		err := ctrl.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "map failed: boom")
		assert.True(t, stub.LastOpts.Compile)
	})
}
