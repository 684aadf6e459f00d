package common

import (
	"errors"
	"os"
	"testing"
)

func TestEnvError_Error(t *testing.T) {
	err := &EnvError{Op: "mkdir", Path: "test_dir", Err: os.ErrExist}
	want := "mkdir test_dir: file already exists"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestEnvError_ErrorWithoutPath(t *testing.T) {
	err := &EnvError{Op: "current user", Err: errors.New("no such user")}
	want := "current user: no such user"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestEnvError_Unwrap(t *testing.T) {
	err := &EnvError{Op: "stat", Path: ".", Err: os.ErrPermission}
	if !errors.Is(err, os.ErrPermission) {
		t.Error("errors.Is should see through EnvError")
	}

	var envErr *EnvError
	if !errors.As(error(err), &envErr) {
		t.Error("errors.As should match *EnvError")
	}
}
