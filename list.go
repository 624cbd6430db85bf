package ptt

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

var devDir = "/dev"

var legacyPattern = regexp.MustCompile(`^ttyS(\d+)$`)

// ListPorts returns the legacy serial device nodes (/dev/ttyS*) present on
// the system, in port order.
func ListPorts() ([]string, error) {
	entries, err := os.ReadDir(devDir)
	if err != nil {
		return nil, err
	}

	var ports []string
	for _, entry := range entries {
		if !legacyPattern.MatchString(entry.Name()) {
			continue
		}
		fullPath := filepath.Join(devDir, entry.Name())
		// Verify it's a character device (not a directory or regular file)
		if isCharacterDevice(fullPath) {
			ports = append(ports, fullPath)
		}
	}

	sort.Slice(ports, func(i, j int) bool {
		return portNumber(ports[i]) < portNumber(ports[j])
	})
	return ports, nil
}

func portNumber(path string) int {
	m := legacyPattern.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return -1
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// isCharacterDevice checks if the given path is a character device
func isCharacterDevice(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// PortInfo describes one entry of the port address table
type PortInfo struct {
	Port    int
	Device  string
	Base    Address
	MCR     Address
	Present bool // device node exists
}

// Ports returns the address table for every supported port index.
func Ports() []PortInfo {
	infos := make([]PortInfo, 0, MaxPort+1)
	for port := 0; port <= MaxPort; port++ {
		base, _ := BaseAddress(port)
		mcr, _ := MCRAddress(port)
		device := filepath.Join(devDir, "ttyS"+strconv.Itoa(port))
		infos = append(infos, PortInfo{
			Port:    port,
			Device:  DeviceName(port),
			Base:    base,
			MCR:     mcr,
			Present: isCharacterDevice(device),
		})
	}
	return infos
}
