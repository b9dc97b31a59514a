package services

import (
	"testing"
	"time"

	"vitalfit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func cycleWithHistory(lengths []int, lastStart time.Time) *models.MenstrualCycle {
	mc := &models.MenstrualCycle{
		IsTracking:          true,
		AveragePeriodLength: 5,
		LastPeriodStartDate: &lastStart,
	}
	for _, l := range lengths {
		mc.CycleHistory = append(mc.CycleHistory, models.CycleEntry{
			PeriodStartDate: lastStart,
			CycleLength:     l,
		})
	}
	return mc
}

func TestRecalcCycleUsesLastThreeCycles(t *testing.T) {
	lastStart := day(2026, 3, 1)
	// newest first: the 40-day outliers further back must not skew the mean
	mc := cycleWithHistory([]int{28, 30, 29, 40, 40}, lastStart)
	recalcCycle(mc)

	assert.Equal(t, 29, mc.AverageCycleLength)
	require.NotNil(t, mc.NextPeriodDate)
	assert.Equal(t, day(2026, 3, 30), *mc.NextPeriodDate)
}

func TestRecalcCycleFallsBackToDefault(t *testing.T) {
	lastStart := day(2026, 3, 1)
	mc := cycleWithHistory(nil, lastStart)
	recalcCycle(mc)

	assert.Equal(t, defaultCycleLength, mc.AverageCycleLength)
	require.NotNil(t, mc.NextPeriodDate)
	assert.Equal(t, lastStart.AddDate(0, 0, defaultCycleLength), *mc.NextPeriodDate)
}

func TestRecalcCyclePredictionWindow(t *testing.T) {
	lastStart := day(2026, 3, 1)
	mc := cycleWithHistory([]int{28, 28, 28}, lastStart)
	recalcCycle(mc)

	next := lastStart.AddDate(0, 0, 28)
	ovulation := next.AddDate(0, 0, -lutealPhaseDays)
	require.NotNil(t, mc.OvulationDate)
	assert.Equal(t, ovulation, *mc.OvulationDate)
	require.NotNil(t, mc.FertileWindowStart)
	assert.Equal(t, ovulation.AddDate(0, 0, -fertileWindowBefore), *mc.FertileWindowStart)
	require.NotNil(t, mc.FertileWindowEnd)
	assert.Equal(t, ovulation.AddDate(0, 0, fertileWindowAfter), *mc.FertileWindowEnd)
}

func TestRecalcCycleRegularity(t *testing.T) {
	lastStart := day(2026, 3, 1)

	regular := cycleWithHistory([]int{28, 29, 28}, lastStart)
	recalcCycle(regular)
	assert.Equal(t, "regular", regular.CycleRegularity)

	irregular := cycleWithHistory([]int{21, 35, 28}, lastStart)
	recalcCycle(irregular)
	assert.Equal(t, "irregular", irregular.CycleRegularity)

	// fewer than three logged cycles is not enough signal
	unknown := cycleWithHistory([]int{28, 28}, lastStart)
	recalcCycle(unknown)
	assert.Equal(t, "unknown", unknown.CycleRegularity)
}

func TestRecalcCycleAveragesPeriodLength(t *testing.T) {
	lastStart := day(2026, 3, 1)
	mc := cycleWithHistory([]int{28, 28, 28}, lastStart)
	mc.CycleHistory[0].PeriodLength = 4
	mc.CycleHistory[1].PeriodLength = 6
	recalcCycle(mc)
	assert.Equal(t, 5, mc.AveragePeriodLength)
}

func TestCyclePhase(t *testing.T) {
	lastStart := day(2026, 3, 1)
	mc := cycleWithHistory([]int{28, 28, 28}, lastStart)
	recalcCycle(mc)

	assert.Equal(t, "menstrual", cyclePhase(mc, day(2026, 3, 2)))
	assert.Equal(t, "follicular", cyclePhase(mc, day(2026, 3, 9)))
	assert.Equal(t, "ovulation", cyclePhase(mc, day(2026, 3, 15)))
	assert.Equal(t, "luteal", cyclePhase(mc, day(2026, 3, 22)))

	assert.Equal(t, "unknown", cyclePhase(&models.MenstrualCycle{AverageCycleLength: 28}, day(2026, 3, 2)))

	// an unrecalculated document may carry a zero average; must not panic
	zeroAvg := &models.MenstrualCycle{LastPeriodStartDate: &lastStart}
	assert.Equal(t, "unknown", cyclePhase(zeroAvg, day(2026, 3, 2)))
}
