package domain

import (
	"path/filepath"
	"runtime"
	"strings"
)

// Rules describes the target filesystem's constraints on file names.
type Rules struct {
	// InvalidChars are characters that may not appear in a name.
	InvalidChars string
	// Reserved are device names (upper-case, extension stripped) the OS
	// refuses regardless of extension.
	Reserved map[string]bool
	// NoTrailingDotSpace rejects names ending in '.' or ' '.
	NoTrailingDotSpace bool
	// MaxNameLen is the longest permitted name in bytes; 0 means unlimited.
	MaxNameLen int
}

var windowsReserved = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// WindowsRules are the NTFS/Win32 naming constraints.
func WindowsRules() Rules {
	return Rules{
		InvalidChars:       `<>:"/\|?*` + "\x00",
		Reserved:           windowsReserved,
		NoTrailingDotSpace: true,
		MaxNameLen:         255,
	}
}

// UnixRules are the POSIX naming constraints.
func UnixRules() Rules {
	return Rules{
		InvalidChars: "/\x00",
		MaxNameLen:   255,
	}
}

// RulesFor returns the rules for a GOOS value.
func RulesFor(goos string) Rules {
	if goos == "windows" {
		return WindowsRules()
	}
	return UnixRules()
}

// HostRules returns the rules for the running OS.
func HostRules() Rules {
	return RulesFor(runtime.GOOS)
}

// Check returns a non-empty reason when name is not a valid file name
// under these rules.
func (r Rules) Check(name string) string {
	if strings.TrimSpace(name) == "" {
		return "empty name"
	}
	if strings.ContainsAny(name, r.InvalidChars) {
		return "invalid characters"
	}
	if r.Reserved != nil {
		base := strings.TrimSuffix(name, filepath.Ext(name))
		if r.Reserved[strings.ToUpper(base)] {
			return "reserved name"
		}
	}
	if r.NoTrailingDotSpace && (strings.HasSuffix(name, ".") || strings.HasSuffix(name, " ")) {
		return "trailing dot or space"
	}
	if r.MaxNameLen > 0 && len(name) > r.MaxNameLen {
		return "name too long"
	}
	return ""
}
