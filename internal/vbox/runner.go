// Package vbox is the VirtualBox boundary: it implements the machine
// package's handle interfaces by driving the VBoxManage utility, and it
// owns the mapping from symbolic configuration kinds to the platform's
// enumeration values.
package vbox

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	// ErrVBoxManageNotFound is returned when the VBoxManage utility is not
	// on PATH (or at the configured location).
	ErrVBoxManageNotFound = errors.New("VBoxManage not found")

	// ErrMachineNotExist is returned when opening a machine that is not
	// registered with VirtualBox.
	ErrMachineNotExist = errors.New("machine does not exist")
)

// Runner executes VBoxManage commands. It exists so machine and adapter
// handles can be exercised in tests without VirtualBox installed.
//
// In production this is satisfied by *CommandRunner.
type Runner interface {
	// Run executes VBoxManage with the given arguments.
	Run(args ...string) error

	// Output executes VBoxManage and returns its stdout.
	Output(args ...string) (string, error)
}

// CommandRunner runs VBoxManage as a subprocess.
type CommandRunner struct {
	// Path is the VBoxManage executable path.
	Path string

	// Verbose logs every executed command.
	Verbose bool
}

// NewRunner creates a CommandRunner using the platform's default
// VBoxManage location.
func NewRunner(verbose bool) *CommandRunner {
	return &CommandRunner{Path: DefaultPath(), Verbose: verbose}
}

// DefaultPath returns the default VBoxManage location: the bare command
// name on PATH, or the installation directory from the VirtualBox
// environment variables on Windows.
func DefaultPath() string {
	path := "VBoxManage"
	if runtime.GOOS == "windows" {
		p := "C:\\Program Files\\Oracle\\VirtualBox"
		if t := os.Getenv("VBOX_INSTALL_PATH"); t != "" {
			p = t
		} else if t = os.Getenv("VBOX_MSI_INSTALL_PATH"); t != "" {
			p = t
		}
		path = filepath.Join(p, "VBoxManage.exe")
	}
	return path
}

// Run implements Runner.
func (r *CommandRunner) Run(args ...string) error {
	cmd := exec.Command(r.Path, args...)
	if r.Verbose {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		log.Printf("executing: %v %v", r.Path, strings.Join(args, " "))
	}
	if err := cmd.Run(); err != nil {
		return r.wrap(err)
	}
	return nil
}

// Output implements Runner.
func (r *CommandRunner) Output(args ...string) (string, error) {
	cmd := exec.Command(r.Path, args...)
	if r.Verbose {
		log.Printf("executing: %v %v", r.Path, strings.Join(args, " "))
	}
	b, err := cmd.Output()
	if err != nil {
		return string(b), r.wrap(err)
	}
	return string(b), nil
}

// wrap maps exec errors to package errors and surfaces stderr text so
// callers can match on VBoxManage's messages.
func (r *CommandRunner) wrap(err error) error {
	var ee *exec.Error
	if errors.As(err, &ee) && errors.Is(ee.Err, exec.ErrNotFound) {
		return ErrVBoxManageNotFound
	}
	var xe *exec.ExitError
	if errors.As(err, &xe) && len(xe.Stderr) > 0 {
		return fmt.Errorf("%s: %w", strings.TrimSpace(string(xe.Stderr)), err)
	}
	return err
}
