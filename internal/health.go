// Package internal holds operational helpers that are not part of the
// delivery core.
package internal

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// HealthHandler reports liveness plus the process's own memory and CPU
// footprint, so a glance at /health shows whether slow consumers are
// piling up buffers.
func HealthHandler(log *slog.Logger) http.HandlerFunc {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Warn("Process self-stats unavailable", "error", err)
		p = nil
	}

	return func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339Nano),
			"pid":    os.Getpid(),
		}
		if p != nil {
			if memInfo, err := p.MemoryInfo(); err == nil {
				body["ram_bytes"] = memInfo.RSS
			}
			if cpu, err := p.CPUPercent(); err == nil {
				body["cpu_percent"] = cpu
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}
}
