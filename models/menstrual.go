package models

import "time"

type CycleEntry struct {
	PeriodStartDate time.Time  `json:"periodStartDate" bson:"periodStartDate"`
	PeriodEndDate   *time.Time `json:"periodEndDate,omitempty" bson:"periodEndDate,omitempty"`
	CycleLength     int        `json:"cycleLength,omitempty" bson:"cycleLength,omitempty"`
	PeriodLength    int        `json:"periodLength,omitempty" bson:"periodLength,omitempty"`
	Symptoms        []string   `json:"symptoms,omitempty" bson:"symptoms,omitempty"`
	FlowIntensity   []string   `json:"flowIntensity,omitempty" bson:"flowIntensity,omitempty"`
	Notes           string     `json:"notes,omitempty" bson:"notes,omitempty"`
}

type CycleNotifications struct {
	PeriodReminder        bool `json:"periodReminder" bson:"periodReminder"`
	FertileWindowReminder bool `json:"fertileWindowReminder" bson:"fertileWindowReminder"`
	DaysBeforeReminder    int  `json:"daysBeforeReminder" bson:"daysBeforeReminder"`
}

type MenstrualCycle struct {
	IsTracking          bool               `json:"isTracking" bson:"isTracking"`
	AverageCycleLength  int                `json:"averageCycleLength" bson:"averageCycleLength"`
	AveragePeriodLength int                `json:"averagePeriodLength" bson:"averagePeriodLength"`
	LastPeriodStartDate *time.Time         `json:"lastPeriodStartDate,omitempty" bson:"lastPeriodStartDate,omitempty"`
	LastPeriodEndDate   *time.Time         `json:"lastPeriodEndDate,omitempty" bson:"lastPeriodEndDate,omitempty"`
	CycleHistory        []CycleEntry       `json:"cycleHistory" bson:"cycleHistory"`
	NextPeriodDate      *time.Time         `json:"nextPeriodDate,omitempty" bson:"nextPeriodDate,omitempty"`
	FertileWindowStart  *time.Time         `json:"fertileWindowStart,omitempty" bson:"fertileWindowStart,omitempty"`
	FertileWindowEnd    *time.Time         `json:"fertileWindowEnd,omitempty" bson:"fertileWindowEnd,omitempty"`
	OvulationDate       *time.Time         `json:"ovulationDate,omitempty" bson:"ovulationDate,omitempty"`
	Notifications       CycleNotifications `json:"notifications" bson:"notifications"`
	CycleRegularity     string             `json:"cycleRegularity" bson:"cycleRegularity"`
	LastUpdated         time.Time          `json:"lastUpdated" bson:"lastUpdated"`
}
