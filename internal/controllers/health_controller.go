package controllers

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"gorm.io/gorm"
)

// HealthController serves the admin dashboard's host snapshot. Not
// part of the domain core; kept because the dashboard calls it.
type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// SystemHealth reports store connectivity and host OS metrics.
func (hc *HealthController) SystemHealth(c *gin.Context) {
	dbStatus := "Connected"
	if sqlDB, err := hc.db.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "Disconnected"
	}

	// The sampling window doubles as the latency probe the dashboard
	// displays.
	start := time.Now()
	cpuPercent := 0.0
	if percents, err := cpu.Percent(100*time.Millisecond, false); err == nil && len(percents) > 0 {
		cpuPercent = percents[0]
	}
	latency := time.Since(start)

	cpuModel := "unknown"
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		cpuModel = infos[0].ModelName
	}

	uptime, _ := host.Uptime()

	osType, osRelease := runtime.GOOS, "unknown"
	if info, err := host.Info(); err == nil {
		osType = info.OS
		osRelease = info.PlatformVersion
	}

	totalGB, freeGB, usedPercent := 0.0, 0.0, 0.0
	if vm, err := mem.VirtualMemory(); err == nil {
		totalGB = float64(vm.Total) / (1 << 30)
		freeGB = float64(vm.Available) / (1 << 30)
		usedPercent = vm.UsedPercent
	}

	c.JSON(http.StatusOK, gin.H{
		"database": gin.H{
			"status": dbStatus,
		},
		"uptimeHours":    fmt.Sprintf("%.2f", float64(uptime)/3600),
		"cpuUsage":       fmt.Sprintf("%.1f%%", cpuPercent),
		"cpuModel":       cpuModel,
		"numCPUs":        runtime.NumCPU(),
		"totalMem":       fmt.Sprintf("%.2f GB", totalGB),
		"freeMem":        fmt.Sprintf("%.2f GB", freeGB),
		"usedMemPercent": fmt.Sprintf("%.2f%%", usedPercent),
		"osType":         osType,
		"osRelease":      osRelease,
		"goVersion":      runtime.Version(),
		"apiLatency":     fmt.Sprintf("%.1f ms", float64(latency.Microseconds())/1000),
		"systemStatus":   "All Systems Operational",
	})
}
