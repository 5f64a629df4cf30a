package vbox

import (
	"fmt"
	"strconv"

	"github.com/chassis-vm/chassis/internal/machine"
)

// DefaultSetters builds the generic scalar setter table over modifyvm.
// Every machine property that is not network or storage is resolved
// through this table; keys carry the values as they come out of the YAML
// document (ints, bools, strings, lists).
func DefaultSetters(r Runner) machine.SetterTable {
	modify := func(m machine.Machine, args ...string) error {
		return r.Run(append([]string{"modifyvm", m.Name()}, args...)...)
	}

	return machine.SetterTable{
		"memory": func(m machine.Machine, v any) error {
			mb, err := intArg(v)
			if err != nil {
				return err
			}
			return modify(m, "--memory", mb)
		},
		"cpus": func(m machine.Machine, v any) error {
			n, err := intArg(v)
			if err != nil {
				return err
			}
			return modify(m, "--cpus", n)
		},
		"vram": func(m machine.Machine, v any) error {
			mb, err := intArg(v)
			if err != nil {
				return err
			}
			return modify(m, "--vram", mb)
		},
		"osType": func(m machine.Machine, v any) error {
			s, err := stringArg(v)
			if err != nil {
				return err
			}
			return modify(m, "--ostype", s)
		},
		"description": func(m machine.Machine, v any) error {
			s, err := stringArg(v)
			if err != nil {
				return err
			}
			return modify(m, "--description", s)
		},
		"firmware": func(m machine.Machine, v any) error {
			s, err := stringArg(v)
			if err != nil {
				return err
			}
			return modify(m, "--firmware", s)
		},
		"acpi": func(m machine.Machine, v any) error {
			s, err := boolArg(v)
			if err != nil {
				return err
			}
			return modify(m, "--acpi", s)
		},
		"ioapic": func(m machine.Machine, v any) error {
			s, err := boolArg(v)
			if err != nil {
				return err
			}
			return modify(m, "--ioapic", s)
		},
		"rtcUseUTC": func(m machine.Machine, v any) error {
			s, err := boolArg(v)
			if err != nil {
				return err
			}
			return modify(m, "--rtcuseutc", s)
		},
		"bootOrder": func(m machine.Machine, v any) error {
			devices, err := bootOrderArgs(v)
			if err != nil {
				return err
			}
			args := make([]string, 0, 8)
			for i, dev := range devices {
				args = append(args, fmt.Sprintf("--boot%d", i+1), dev)
			}
			return modify(m, args...)
		},
	}
}

// bootOrderArgs turns a boot order list into the four --bootN values,
// padding unused positions with "none".
func bootOrderArgs(v any) ([]string, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("bootOrder must be a list, got %T", v)
	}
	if len(list) > 4 {
		return nil, fmt.Errorf("bootOrder holds at most 4 entries, got %d", len(list))
	}
	devices := []string{"none", "none", "none", "none"}
	for i, entry := range list {
		s, err := stringArg(entry)
		if err != nil {
			return nil, fmt.Errorf("bootOrder[%d]: %w", i, err)
		}
		switch s {
		case "none", "floppy", "dvd", "disk", "net":
			devices[i] = s
		default:
			return nil, fmt.Errorf("bootOrder[%d]: unknown boot device %q", i, s)
		}
	}
	return devices, nil
}

func intArg(v any) (string, error) {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n), nil
	case int64:
		return strconv.FormatInt(n, 10), nil
	case uint64:
		return strconv.FormatUint(n, 10), nil
	case float64:
		if n != float64(int64(n)) {
			return "", fmt.Errorf("expected an integer, got %v", v)
		}
		return strconv.FormatInt(int64(n), 10), nil
	default:
		return "", fmt.Errorf("expected an integer, got %T", v)
	}
}

func boolArg(v any) (string, error) {
	b, ok := v.(bool)
	if !ok {
		return "", fmt.Errorf("expected a boolean, got %T", v)
	}
	if b {
		return "on", nil
	}
	return "off", nil
}

func stringArg(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected a string, got %T", v)
	}
	return s, nil
}
