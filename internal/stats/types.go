package stats

const dateLayout = "2006-01-02"

const (
	DefaultProgressionDays = 30
	DefaultWeeks           = 4
	DefaultCalendarDays    = 28
	MostImprovedWindowDays = 90
	minTrendPoints         = 2
)

type ProgressionPoint struct {
	Date         string  `json:"date"`
	AvgWeight    float64 `json:"avgWeight"`
	WorkoutCount int     `json:"workoutCount"`
}

// Progression is the date ordered average weight series of one exercise.
type Progression struct {
	ExerciseName string             `json:"exerciseName"`
	Data         []ProgressionPoint `json:"data"`
}

// Trendable tells if the series has enough points to be drawn as a trend.
func (p Progression) Trendable() bool {
	return len(p.Data) >= minTrendPoints
}

type WeekBucket struct {
	WeekStart    string `json:"weekStart"`
	WorkoutCount int    `json:"workoutCount"`
}

type CalendarDay struct {
	Date         string `json:"date"`
	WorkoutCount int    `json:"workoutCount"`
}

type ImprovedExercise struct {
	Name          string  `json:"name"`
	PercentChange float64 `json:"percentChange"`
}

type ExerciseRecord struct {
	Name   string   `json:"name"`
	Best   *float64 `json:"best"`
	Latest *float64 `json:"latest"`
}

type StreakInfo struct {
	CurrentStreak  int `json:"currentStreak"`
	ThisWeek       int `json:"thisWeek"`
	TotalCompleted int `json:"totalCompleted"`
}

// Overview holds everything the stats screen shows.
type Overview struct {
	HasCompletedWorkouts bool              `json:"hasCompletedWorkouts"`
	TotalCompleted       int               `json:"totalCompleted"`
	CurrentStreak        int               `json:"currentStreak"`
	ThisWeek             int               `json:"thisWeek"`
	MostImproved         *ImprovedExercise `json:"mostImproved"`
	Progressions         []Progression     `json:"progressions"`
	Weekly               []WeekBucket      `json:"weekly"`
	Calendar             []CalendarDay     `json:"calendar"`
	Records              []ExerciseRecord  `json:"records"`
}
