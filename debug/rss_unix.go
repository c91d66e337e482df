//go:build unix

package debug

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// residentSetSize reads the resident page count from /proc/self/statm.
// Platforms without procfs report an error.
func residentSetSize() (uint64, error) {
	data, err := os.ReadFile("/proc/self/statm")
	if err != nil {
		return 0, err
	}
	var size, resident uint64
	if _, err := fmt.Sscan(string(data), &size, &resident); err != nil {
		return 0, fmt.Errorf("parse statm: %w", err)
	}
	return resident * uint64(unix.Getpagesize()), nil
}
