package constants

import "time"

const (
	// Threshold notification percentages
	WarnThresholdPercent  = 80
	LimitThresholdPercent = 100

	// Persisted history retention
	HistoryRetentionDays = 30

	// Weekly report window
	WeeklyReportDays = 7

	// Temporary unlock window granted by the blocker's timer unlock
	TempUnlockDuration = 10 * time.Minute

	// Breathing guide phase length
	BreathPhase = 4 * time.Second

	// Default mindfulness session length
	DefaultMindfulDuration = 5 * time.Minute
)
