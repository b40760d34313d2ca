package nrfjprog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrfjprog-go/nrfjprog/pkg/errormsg"
)

func TestNewBindingError(t *testing.T) {
	assert.Nil(t, NewBindingError(errormsg.Success, "opening device", "", errormsg.SUCCESS))

	err := NewBindingError(errormsg.CouldNotOpenDevice, "opening device", "", errormsg.CANNOT_CONNECT)
	require.Error(t, err)

	var be *BindingError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, "CANNOT_CONNECT", be.LowLevelError)
	assert.ErrorIs(t, err, errormsg.Code(errormsg.CouldNotOpenDevice))
}

func TestErrorMatchesSentinel(t *testing.T) {
	cause := errors.New("connection reset")
	err := error(&Error{Step: "download", Target: "https://example.com/a.tar", Kind: ErrDownloadFailed, Err: cause})

	assert.ErrorIs(t, err, ErrDownloadFailed)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrInstallFailed)
	assert.Equal(t, "download https://example.com/a.tar: connection reset", err.Error())
}

func TestDefaultSettingsEnvironment(t *testing.T) {
	home := t.TempDir()
	t.Setenv("NRFJPROG_HOME", home)
	t.Setenv("NRFJPROG_LIB_DIR", "")

	s := DefaultSettings()
	assert.Equal(t, home, s.Home)
	assert.Equal(t, "10.12.1", s.RequiredVersion)
}

func TestEnsureInstalledRejectsBadSettings(t *testing.T) {
	s := DefaultSettings()
	s.StripComponents = -1

	_, err := EnsureInstalled(context.Background(), s)
	require.Error(t, err)

	s = DefaultSettings()
	s.RequiredVersion = "latest"

	_, err = EnsureInstalled(context.Background(), s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required version")
}
