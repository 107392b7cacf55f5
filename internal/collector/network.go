package collector

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/prabalesh/uptop/internal/models"
)

var ErrInterfaceNotFound = errors.New("interface not found")

// ReadAllCounters parses every interface line of a /proc/net/dev style file,
// skipping loopback.
func ReadAllCounters(path string) ([]models.InterfaceCounters, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var interfaces []models.InterfaceCounters
	for _, counters := range parseNetDev(string(content)) {
		if counters.Name == "lo" {
			continue
		}
		interfaces = append(interfaces, counters)
	}
	return interfaces, nil
}

// ReadInterfaceCounters returns the byte counters of a single interface.
func ReadInterfaceCounters(path, name string) (models.InterfaceCounters, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return models.InterfaceCounters{}, fmt.Errorf("reading %s: %w", path, err)
	}

	for _, counters := range parseNetDev(string(content)) {
		if counters.Name == name {
			return counters, nil
		}
	}
	return models.InterfaceCounters{}, fmt.Errorf("%w: %q", ErrInterfaceNotFound, name)
}

func parseNetDev(content string) []models.InterfaceCounters {
	lines := strings.Split(content, "\n")
	var interfaces []models.InterfaceCounters

	for i, line := range lines {
		if i < 2 { // header
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Wide counters can run into the name ("eth0:123456"), so split on
		// the colon before splitting on whitespace.
		name, rest, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		parts := strings.Fields(rest)
		if len(parts) < 9 {
			continue
		}

		rxBytes, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			continue
		}
		txBytes, err := strconv.ParseUint(parts[8], 10, 64)
		if err != nil {
			continue
		}

		interfaces = append(interfaces, models.InterfaceCounters{
			Name:    strings.TrimSpace(name),
			RxBytes: rxBytes,
			TxBytes: txBytes,
		})
	}
	return interfaces
}

func BytesToMB(b uint64) float64 {
	return float64(b) / 1024 / 1024
}

// counterDelta returns zero for a counter that went backwards (interface
// reset or wrap).
func counterDelta(prev, cur models.InterfaceCounters) (rx, tx uint64) {
	if cur.RxBytes >= prev.RxBytes {
		rx = cur.RxBytes - prev.RxBytes
	}
	if cur.TxBytes >= prev.TxBytes {
		tx = cur.TxBytes - prev.TxBytes
	}
	return rx, tx
}
