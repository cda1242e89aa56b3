package models

import "time"

// StatsResponse is the payload of GET /stats.
type StatsResponse struct {
	Uptime        string    `json:"uptime"`
	UptimeSeconds int64     `json:"uptime_seconds"`
	StartTime     time.Time `json:"start_time"`
	GoRoutines    int       `json:"goroutines"`
	MemoryAllocMB float64   `json:"memory_alloc_mb"`
	SystemMemUsed float64   `json:"system_mem_used_percent"`
	HostUptimeSec uint64    `json:"host_uptime_seconds"`
	ZoneCount     int       `json:"zone_count"`
}
