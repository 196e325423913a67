package stats

import (
	"sort"
	"time"

	"github.com/amankaushik/achilles-workout-tracker/internal/workouts"
)

// UniqueExerciseNames returns the sorted, distinct exercise names of all completed workouts.
func UniqueExerciseNames(log workouts.WorkoutLog) []string {
	nameSet := make(map[string]struct{})
	for _, entry := range log {
		if !entry.Completed {
			continue
		}
		for _, ex := range entry.Exercises {
			nameSet[ex.Name] = struct{}{}
		}
	}

	names := make([]string, 0, len(nameSet))
	for name := range nameSet {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExerciseProgression returns the per day average weight of the exercise, for
// workouts completed in the last windowDays days (relative to now).
func ExerciseProgression(log workouts.WorkoutLog, exerciseName string, windowDays int, now time.Time) Progression {
	cutoff := now.AddDate(0, 0, -windowDays)

	type dayWeights struct {
		weights []float64
		entries int
	}
	day2weights := make(map[string]*dayWeights)

	for _, entry := range log {
		if !entry.IsComplete() {
			continue
		}
		completedAt := *entry.CompletedAt
		if completedAt.Before(cutoff) || completedAt.After(now) {
			continue
		}

		var weights []float64
		for _, ex := range entry.Exercises {
			if ex.Name == exerciseName {
				weights = append(weights, setWeights(ex.Sets)...)
			}
		}
		if len(weights) == 0 {
			continue
		}

		day := dateKey(completedAt, now.Location())
		dw, ok := day2weights[day]
		if !ok {
			dw = &dayWeights{}
			day2weights[day] = dw
		}
		dw.weights = append(dw.weights, weights...)
		dw.entries++
	}

	data := make([]ProgressionPoint, 0, len(day2weights))
	for day, dw := range day2weights {
		data = append(data, ProgressionPoint{
			Date:         day,
			AvgWeight:    mean(dw.weights),
			WorkoutCount: dw.entries,
		})
	}
	sort.Slice(data, func(i, j int) bool {
		return data[i].Date < data[j].Date
	})

	return Progression{
		ExerciseName: exerciseName,
		Data:         data,
	}
}

// WeeklyFrequency counts completed workouts per Monday-Sunday week, for the weekCount weeks
// ending with the current one. Weeks without workouts are included with a zero count.
func WeeklyFrequency(log workouts.WorkoutLog, weekCount int, now time.Time) []WeekBucket {
	if weekCount <= 0 {
		return []WeekBucket{}
	}

	currentMonday := mondayOf(now, now.Location())
	buckets := make([]WeekBucket, weekCount)
	week2idx := make(map[string]int, weekCount)
	for i := 0; i < weekCount; i++ {
		weekStart := currentMonday.AddDate(0, 0, -7*(weekCount-1-i)).Format(dateLayout)
		buckets[i] = WeekBucket{WeekStart: weekStart}
		week2idx[weekStart] = i
	}

	for _, entry := range log {
		if !entry.IsComplete() {
			continue
		}
		weekStart := mondayOf(*entry.CompletedAt, now.Location()).Format(dateLayout)
		if i, ok := week2idx[weekStart]; ok {
			buckets[i].WorkoutCount++
		}
	}

	return buckets
}

// WorkoutCalendar counts completed workouts per day, for the dayCount days ending today.
// Every day in the range is present, rest days with a zero count.
func WorkoutCalendar(log workouts.WorkoutLog, dayCount int, now time.Time) []CalendarDay {
	if dayCount <= 0 {
		return []CalendarDay{}
	}

	today := startOfDay(now, now.Location())
	days := make([]CalendarDay, dayCount)
	day2idx := make(map[string]int, dayCount)
	for i := 0; i < dayCount; i++ {
		date := today.AddDate(0, 0, -(dayCount - 1 - i)).Format(dateLayout)
		days[i] = CalendarDay{Date: date}
		day2idx[date] = i
	}

	for _, entry := range log {
		if !entry.IsComplete() {
			continue
		}
		if i, ok := day2idx[dateKey(*entry.CompletedAt, now.Location())]; ok {
			days[i].WorkoutCount++
		}
	}

	return days
}

func TotalCompletedWorkouts(log workouts.WorkoutLog) int {
	total := 0
	for _, entry := range log {
		if entry.Completed {
			total++
		}
	}
	return total
}

// CurrentStreak counts consecutive days with at least one completed workout.
// The streak ends today, or yesterday if nothing has been completed today yet;
// the first day without a workout stops it.
func CurrentStreak(log workouts.WorkoutLog, now time.Time) int {
	loc := now.Location()
	activeDays := make(map[string]struct{})
	for _, entry := range log {
		if entry.IsComplete() {
			activeDays[dateKey(*entry.CompletedAt, loc)] = struct{}{}
		}
	}

	day := startOfDay(now, loc)
	if _, ok := activeDays[day.Format(dateLayout)]; !ok {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := activeDays[day.Format(dateLayout)]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}

	return streak
}

// ThisWeekWorkoutCount counts the workouts completed since Monday of the current week.
func ThisWeekWorkoutCount(log workouts.WorkoutLog, now time.Time) int {
	monday := mondayOf(now, now.Location())
	count := 0
	for _, entry := range log {
		if !entry.IsComplete() {
			continue
		}
		completedAt := *entry.CompletedAt
		if !completedAt.Before(monday) && !completedAt.After(now) {
			count++
		}
	}
	return count
}

// BestWeight is the heaviest single set ever logged for the exercise.
func BestWeight(log workouts.WorkoutLog, exerciseName string) (float64, bool) {
	best, found := 0.0, false
	for _, entry := range log {
		if !entry.Completed {
			continue
		}
		for _, ex := range entry.Exercises {
			if ex.Name != exerciseName {
				continue
			}
			for _, w := range setWeights(ex.Sets) {
				if !found || w > best {
					best, found = w, true
				}
			}
		}
	}
	return best, found
}

// LatestWeight is the average set weight of the exercise in the most recently completed
// workout that has it. If that workout has no readable weights, there is no latest weight,
// older workouts are not looked at.
func LatestWeight(log workouts.WorkoutLog, exerciseName string) (float64, bool) {
	var latest *workouts.WorkoutLogEntry
	for key := range log {
		entry := log[key]
		if !entry.IsComplete() || !hasExercise(entry, exerciseName) {
			continue
		}
		if latest == nil || newerThan(entry, *latest) {
			latest = &entry
		}
	}
	if latest == nil {
		return 0, false
	}

	var weights []float64
	for _, ex := range latest.Exercises {
		if ex.Name == exerciseName {
			weights = append(weights, setWeights(ex.Sets)...)
		}
	}
	if len(weights) == 0 {
		return 0, false
	}
	return mean(weights), true
}

// PercentChange returns the change from oldValue to newValue in percents, 0 when oldValue is 0.
func PercentChange(oldValue, newValue float64) float64 {
	if oldValue == 0 {
		return 0
	}
	return (newValue - oldValue) / oldValue * 100
}

// MostImprovedExercise finds the exercise whose average weight grew the most
// (first vs last point) over the last 90 days. Ties go to the alphabetically first name.
func MostImprovedExercise(log workouts.WorkoutLog, now time.Time) (ImprovedExercise, bool) {
	var best ImprovedExercise
	found := false
	for _, name := range UniqueExerciseNames(log) {
		progression := ExerciseProgression(log, name, MostImprovedWindowDays, now)
		if !progression.Trendable() {
			continue
		}
		first := progression.Data[0].AvgWeight
		last := progression.Data[len(progression.Data)-1].AvgWeight
		change := PercentChange(first, last)
		if !found || change > best.PercentChange {
			best = ImprovedExercise{Name: name, PercentChange: change}
			found = true
		}
	}
	return best, found
}

func PersonalRecords(log workouts.WorkoutLog) []ExerciseRecord {
	names := UniqueExerciseNames(log)
	records := make([]ExerciseRecord, 0, len(names))
	for _, name := range names {
		record := ExerciseRecord{Name: name}
		if best, ok := BestWeight(log, name); ok {
			record.Best = &best
		}
		if latest, ok := LatestWeight(log, name); ok {
			record.Latest = &latest
		}
		records = append(records, record)
	}
	return records
}

func ComputeOverview(log workouts.WorkoutLog, now time.Time) Overview {
	overview := Overview{
		TotalCompleted: TotalCompletedWorkouts(log),
		CurrentStreak:  CurrentStreak(log, now),
		ThisWeek:       ThisWeekWorkoutCount(log, now),
		Progressions:   make([]Progression, 0),
		Weekly:         WeeklyFrequency(log, DefaultWeeks, now),
		Calendar:       WorkoutCalendar(log, DefaultCalendarDays, now),
		Records:        PersonalRecords(log),
	}
	overview.HasCompletedWorkouts = overview.TotalCompleted > 0

	if improved, ok := MostImprovedExercise(log, now); ok {
		overview.MostImproved = &improved
	}

	for _, name := range UniqueExerciseNames(log) {
		progression := ExerciseProgression(log, name, DefaultProgressionDays, now)
		if progression.Trendable() {
			overview.Progressions = append(overview.Progressions, progression)
		}
	}

	return overview
}

func setWeights(sets []workouts.SetData) []float64 {
	var weights []float64
	for _, set := range sets {
		if w, ok := ParseWeight(set.Weight); ok {
			weights = append(weights, w)
		}
	}
	return weights
}

func hasExercise(entry workouts.WorkoutLogEntry, exerciseName string) bool {
	for _, ex := range entry.Exercises {
		if ex.Name == exerciseName {
			return true
		}
	}
	return false
}

// newerThan orders by completion time, falling back to the key so the result does not
// depend on map iteration order.
func newerThan(a, b workouts.WorkoutLogEntry) bool {
	if !a.CompletedAt.Equal(*b.CompletedAt) {
		return a.CompletedAt.After(*b.CompletedAt)
	}
	return a.Key() > b.Key()
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func dateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dateLayout)
}

// mondayOf returns the midnight starting the Monday-Sunday week that t is in.
func mondayOf(t time.Time, loc *time.Location) time.Time {
	day := startOfDay(t, loc)
	offset := int(day.Weekday()) - 1
	if day.Weekday() == time.Sunday {
		offset = 6
	}
	return day.AddDate(0, 0, -offset)
}
