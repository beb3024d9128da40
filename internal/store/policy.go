package store

import "github.com/evanfuller/habitgrid/internal/models"

// normalizeFrequency is the single place the weekly-only product policy
// lives. New habits are created weekly, and every edit re-applies weekly
// regardless of input, which silently migrates legacy monthly habits the
// next time they are touched. Kept as one named function so the policy can
// be revisited without touching the create/edit paths.
func normalizeFrequency(models.Frequency) models.Frequency {
	return models.FrequencyWeekly
}
