package model

import "errors"

var ErrConflictingStorage = errors.New("cloud_storage and local_storage cannot both be set to the same value")

// Settings holds one flag for the storage choice; local storage is shown
// as its negation rather than kept separately.
type Settings struct {
	CloudStorage  bool `json:"cloud_storage"`
	BiometricLock bool `json:"biometric_lock"`
}

func DefaultSettings() Settings {
	return Settings{CloudStorage: true}
}

func (s Settings) LocalStorage() bool { return !s.CloudStorage }

type SettingsRes struct {
	CloudStorage  bool `json:"cloud_storage"`
	LocalStorage  bool `json:"local_storage"`
	BiometricLock bool `json:"biometric_lock"`
}

func (s Settings) Response() SettingsRes {
	return SettingsRes{
		CloudStorage:  s.CloudStorage,
		LocalStorage:  s.LocalStorage(),
		BiometricLock: s.BiometricLock,
	}
}

// PatchSettingsReq flips individual switches; absent fields are left alone.
type PatchSettingsReq struct {
	CloudStorage  *bool `json:"cloud_storage"`
	LocalStorage  *bool `json:"local_storage"`
	BiometricLock *bool `json:"biometric_lock"`
}

// Apply returns s with the patch applied.
func (p PatchSettingsReq) Apply(s Settings) (Settings, error) {
	if p.CloudStorage != nil && p.LocalStorage != nil && *p.CloudStorage == *p.LocalStorage {
		return s, ErrConflictingStorage
	}
	if p.CloudStorage != nil {
		s.CloudStorage = *p.CloudStorage
	}
	if p.LocalStorage != nil {
		s.CloudStorage = !*p.LocalStorage
	}
	if p.BiometricLock != nil {
		s.BiometricLock = *p.BiometricLock
	}
	return s, nil
}
