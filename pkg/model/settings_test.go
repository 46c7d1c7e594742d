package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(b bool) *bool { return &b }

func TestSettingsLocalStorageIsNegationOfCloud(t *testing.T) {
	s := DefaultSettings()
	assert.True(t, s.CloudStorage)
	assert.False(t, s.LocalStorage())
	assert.Equal(t, SettingsRes{CloudStorage: true, LocalStorage: false}, s.Response())
}

func TestPatchSettingsApply(t *testing.T) {
	s := DefaultSettings()

	s, err := PatchSettingsReq{LocalStorage: ptr(true)}.Apply(s)
	require.NoError(t, err)
	assert.False(t, s.CloudStorage)

	s, err = PatchSettingsReq{CloudStorage: ptr(true), BiometricLock: ptr(true)}.Apply(s)
	require.NoError(t, err)
	assert.True(t, s.CloudStorage)
	assert.True(t, s.BiometricLock)

	s, err = PatchSettingsReq{CloudStorage: ptr(false), LocalStorage: ptr(true)}.Apply(s)
	require.NoError(t, err, "agreeing switches are fine")
	assert.False(t, s.CloudStorage)

	_, err = PatchSettingsReq{CloudStorage: ptr(true), LocalStorage: ptr(true)}.Apply(s)
	assert.ErrorIs(t, err, ErrConflictingStorage)

	unchanged, err := PatchSettingsReq{}.Apply(s)
	require.NoError(t, err)
	assert.Equal(t, s, unchanged)
}
