package collector

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/host"
)

const procStatPath = "/proc/stat"

// BootTime asks the host first and falls back to the btime line of
// /proc/stat. When neither is readable the current time is returned.
func BootTime(ctx context.Context) time.Time {
	if secs, err := host.BootTimeWithContext(ctx); err == nil && secs > 0 {
		return time.Unix(int64(secs), 0)
	}
	if t, ok := readBootTime(procStatPath); ok {
		return t
	}
	return time.Now()
}

func readBootTime(path string) (time.Time, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		return time.Time{}, false
	}

	lines := strings.Split(string(content), "\n")
	for _, line := range lines {
		if strings.HasPrefix(line, "btime ") {
			fields := strings.Fields(line)
			if len(fields) > 1 {
				if bootTime, err := strconv.ParseInt(fields[1], 10, 64); err == nil {
					return time.Unix(bootTime, 0), true
				}
			}
		}
	}
	return time.Time{}, false
}
