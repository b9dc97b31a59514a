package services

import (
	"context"
	"log"
	"math"
	"sort"
	"time"

	"vitalfit/config/db"
	"vitalfit/models"
	"vitalfit/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	defaultCycleLength  = 28
	defaultPeriodLength = 5
	lutealPhaseDays     = 14
	fertileWindowBefore = 5
	fertileWindowAfter  = 1
	cycleHistoryLimit   = 12
	regularityStddevMax = 3.0
)

func cycleUser(c *gin.Context) (*models.User, error) {
	actor, err := ActorFromContext(c)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := db.FindOne(c, userColl(), bson.M{"_id": actor.ID}, &user); err != nil {
		return nil, util.NotFound(util.USER_NOT_FOUND)
	}
	return &user, nil
}

func trackingCycle(user *models.User) (*models.MenstrualCycle, error) {
	if user.MenstrualCycle == nil || !user.MenstrualCycle.IsTracking {
		return nil, util.BadRequest(util.TRACKING_NOT_ENABLED)
	}
	return user.MenstrualCycle, nil
}

func saveCycle(c *gin.Context, user *models.User, mc *models.MenstrualCycle) error {
	mc.LastUpdated = time.Now()
	_, err := db.UpdateOne(c, userColl(), bson.M{"_id": user.ID}, bson.M{"$set": bson.M{
		"menstrualCycle": mc,
		"updatedAt":      time.Now(),
	}})
	return err
}

/*
* Turn on cycle tracking for a female user
 */
func EnableCycleTracking(c *gin.Context) (*models.MenstrualCycle, error) {
	user, err := cycleUser(c)
	if err != nil {
		return nil, err
	}
	if user.Gender != "female" {
		return nil, util.Forbidden(util.TRACKING_FEMALE_ONLY)
	}
	if user.MenstrualCycle != nil && user.MenstrualCycle.IsTracking {
		return user.MenstrualCycle, nil
	}

	mc := user.MenstrualCycle
	if mc == nil {
		mc = &models.MenstrualCycle{
			AverageCycleLength:  defaultCycleLength,
			AveragePeriodLength: defaultPeriodLength,
			CycleHistory:        []models.CycleEntry{},
			Notifications: models.CycleNotifications{
				PeriodReminder:     true,
				DaysBeforeReminder: 2,
			},
			CycleRegularity: "unknown",
		}
	}
	mc.IsTracking = true
	if err := saveCycle(c, user, mc); err != nil {
		return nil, err
	}
	return mc, nil
}

func DisableCycleTracking(c *gin.Context) error {
	user, err := cycleUser(c)
	if err != nil {
		return err
	}
	mc, err := trackingCycle(user)
	if err != nil {
		return err
	}
	// history is kept so re-enabling resumes where the user left off
	mc.IsTracking = false
	return saveCycle(c, user, mc)
}

type LogPeriodInput struct {
	PeriodStartDate string   `json:"periodStartDate"`
	PeriodEndDate   string   `json:"periodEndDate"`
	Symptoms        []string `json:"symptoms"`
	FlowIntensity   []string `json:"flowIntensity"`
	Notes           string   `json:"notes"`
}

/*
* Record a period and refresh averages, predictions and regularity
 */
func LogPeriod(c *gin.Context, in LogPeriodInput) (*models.MenstrualCycle, error) {
	user, err := cycleUser(c)
	if err != nil {
		return nil, err
	}
	mc, err := trackingCycle(user)
	if err != nil {
		return nil, err
	}
	if in.PeriodStartDate == "" {
		return nil, util.MissingField("periodStartDate is required")
	}
	start, err := parseTimestamp(in.PeriodStartDate)
	if err != nil {
		return nil, util.InvalidDate("Invalid periodStartDate")
	}

	entry := models.CycleEntry{
		PeriodStartDate: start,
		Symptoms:        in.Symptoms,
		FlowIntensity:   in.FlowIntensity,
		Notes:           in.Notes,
	}
	if in.PeriodEndDate != "" {
		end, perr := parseTimestamp(in.PeriodEndDate)
		if perr != nil {
			return nil, util.InvalidDate("Invalid periodEndDate")
		}
		if end.Before(start) {
			return nil, util.InvalidRange("periodEndDate must not be before periodStartDate")
		}
		entry.PeriodEndDate = &end
		entry.PeriodLength = int(end.Sub(start).Hours()/24) + 1
	}
	if mc.LastPeriodStartDate != nil {
		gap := int(math.Round(start.Sub(*mc.LastPeriodStartDate).Hours() / 24))
		if gap > 0 {
			entry.CycleLength = gap
		}
	}

	mc.CycleHistory = append([]models.CycleEntry{entry}, mc.CycleHistory...)
	if len(mc.CycleHistory) > cycleHistoryLimit {
		mc.CycleHistory = mc.CycleHistory[:cycleHistoryLimit]
	}
	mc.LastPeriodStartDate = &start
	mc.LastPeriodEndDate = entry.PeriodEndDate

	recalcCycle(mc)
	if err := saveCycle(c, user, mc); err != nil {
		return nil, err
	}
	return mc, nil
}

func cycleLengths(mc *models.MenstrualCycle) []int {
	var lengths []int
	for _, entry := range mc.CycleHistory {
		if entry.CycleLength > 0 {
			lengths = append(lengths, entry.CycleLength)
		}
	}
	return lengths
}

/*
* Recompute averages, next-period and fertile-window predictions, and
* regularity from the history. Predictions use the mean of the last
* three cycles when available, ovulation is luteal-phase days before
* the predicted start.
 */
func recalcCycle(mc *models.MenstrualCycle) {
	lengths := cycleLengths(mc)

	avgCycle := defaultCycleLength
	if len(lengths) > 0 {
		window := lengths
		if len(window) > 3 {
			window = window[:3]
		}
		sum := 0
		for _, l := range window {
			sum += l
		}
		avgCycle = int(math.Round(float64(sum) / float64(len(window))))
	}
	mc.AverageCycleLength = avgCycle

	periodSum, periodCount := 0, 0
	for _, entry := range mc.CycleHistory {
		if entry.PeriodLength > 0 {
			periodSum += entry.PeriodLength
			periodCount++
		}
	}
	if periodCount > 0 {
		mc.AveragePeriodLength = int(math.Round(float64(periodSum) / float64(periodCount)))
	} else if mc.AveragePeriodLength == 0 {
		mc.AveragePeriodLength = defaultPeriodLength
	}

	if mc.LastPeriodStartDate != nil {
		next := mc.LastPeriodStartDate.AddDate(0, 0, avgCycle)
		ovulation := next.AddDate(0, 0, -lutealPhaseDays)
		fertileStart := ovulation.AddDate(0, 0, -fertileWindowBefore)
		fertileEnd := ovulation.AddDate(0, 0, fertileWindowAfter)
		mc.NextPeriodDate = &next
		mc.OvulationDate = &ovulation
		mc.FertileWindowStart = &fertileStart
		mc.FertileWindowEnd = &fertileEnd
	}

	mc.CycleRegularity = "unknown"
	if len(lengths) >= 3 {
		mean := 0.0
		for _, l := range lengths {
			mean += float64(l)
		}
		mean /= float64(len(lengths))
		variance := 0.0
		for _, l := range lengths {
			variance += (float64(l) - mean) * (float64(l) - mean)
		}
		variance /= float64(len(lengths))
		if math.Sqrt(variance) < regularityStddevMax {
			mc.CycleRegularity = "regular"
		} else {
			mc.CycleRegularity = "irregular"
		}
	}
}

/*
* Name the phase the cycle is in on the given day
 */
func cyclePhase(mc *models.MenstrualCycle, now time.Time) string {
	if mc.LastPeriodStartDate == nil || mc.AverageCycleLength <= 0 {
		return "unknown"
	}
	day := int(now.Sub(*mc.LastPeriodStartDate).Hours()/24) % mc.AverageCycleLength
	if day < 0 {
		return "unknown"
	}
	ovulationDay := mc.AverageCycleLength - lutealPhaseDays
	switch {
	case day < mc.AveragePeriodLength:
		return "menstrual"
	case day >= ovulationDay-1 && day <= ovulationDay+1:
		return "ovulation"
	case day < ovulationDay:
		return "follicular"
	default:
		return "luteal"
	}
}

func FetchCycleStatus(c *gin.Context) (map[string]interface{}, error) {
	user, err := cycleUser(c)
	if err != nil {
		return nil, err
	}
	mc, err := trackingCycle(user)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"cycle":        mc,
		"currentPhase": cyclePhase(mc, time.Now()),
	}, nil
}

type SymptomFrequency struct {
	Symptom string `json:"symptom"`
	Count   int    `json:"count"`
}

/*
* History-derived insights: most frequent symptoms and length trends
 */
func FetchCycleInsights(c *gin.Context) (map[string]interface{}, error) {
	user, err := cycleUser(c)
	if err != nil {
		return nil, err
	}
	mc, err := trackingCycle(user)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, entry := range mc.CycleHistory {
		for _, symptom := range entry.Symptoms {
			counts[symptom]++
		}
	}
	frequencies := make([]SymptomFrequency, 0, len(counts))
	for symptom, count := range counts {
		frequencies = append(frequencies, SymptomFrequency{Symptom: symptom, Count: count})
	}
	sort.Slice(frequencies, func(i, j int) bool {
		if frequencies[i].Count != frequencies[j].Count {
			return frequencies[i].Count > frequencies[j].Count
		}
		return frequencies[i].Symptom < frequencies[j].Symptom
	})
	if len(frequencies) > 5 {
		frequencies = frequencies[:5]
	}

	var daysUntilNextPeriod *int
	if mc.NextPeriodDate != nil {
		days := int(time.Until(*mc.NextPeriodDate).Hours() / 24)
		daysUntilNextPeriod = &days
	}

	return map[string]interface{}{
		"cyclesLogged":        len(mc.CycleHistory),
		"daysUntilNextPeriod": daysUntilNextPeriod,
		"averageCycleLength":  mc.AverageCycleLength,
		"averagePeriodLength": mc.AveragePeriodLength,
		"cycleRegularity":     mc.CycleRegularity,
		"topSymptoms":         frequencies,
		"nextPeriodDate":      mc.NextPeriodDate,
		"fertileWindowStart":  mc.FertileWindowStart,
		"fertileWindowEnd":    mc.FertileWindowEnd,
		"ovulationDate":       mc.OvulationDate,
	}, nil
}

func UpdateCycleNotifications(c *gin.Context, prefs models.CycleNotifications) (*models.MenstrualCycle, error) {
	user, err := cycleUser(c)
	if err != nil {
		return nil, err
	}
	mc, err := trackingCycle(user)
	if err != nil {
		return nil, err
	}
	if prefs.DaysBeforeReminder < 0 || prefs.DaysBeforeReminder > 7 {
		return nil, util.BadRequest("daysBeforeReminder must be between 0 and 7")
	}
	mc.Notifications = prefs
	if err := saveCycle(c, user, mc); err != nil {
		return nil, err
	}
	return mc, nil
}

/*
* Nightly sweep: mail users whose predicted period falls within their
* reminder window. Returns the number of reminders sent.
 */
func SendPeriodReminders(ctx context.Context) int {
	filter := bson.M{
		"menstrualCycle.isTracking":                   true,
		"menstrualCycle.notifications.periodReminder": true,
		"menstrualCycle.nextPeriodDate":               bson.M{"$gte": time.Now()},
	}
	var users []models.User
	if err := db.FindAll(ctx, userColl(), filter, nil, &users); err != nil {
		log.Println("Error while loading period reminder candidates: ", err)
		return 0
	}

	sent := 0
	now := time.Now()
	for _, user := range users {
		mc := user.MenstrualCycle
		if mc == nil || mc.NextPeriodDate == nil || user.Email == "" {
			continue
		}
		daysUntil := int(mc.NextPeriodDate.Sub(now).Hours() / 24)
		if daysUntil > mc.Notifications.DaysBeforeReminder {
			continue
		}
		if err := util.SendMail(user.Email, "Period reminder",
			"Your next period is predicted to start on "+mc.NextPeriodDate.Format("2006-01-02")+"."); err != nil {
			log.Println("Error while sending period reminder: ", err)
			continue
		}
		sent++
	}
	return sent
}
