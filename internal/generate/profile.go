package generate

import "fmt"

// UserProfile is the fitness profile sent to the generation service. It is
// validated client-side and otherwise passed through untouched.
type UserProfile struct {
	Name               string  `json:"name"`
	Gender             string  `json:"gender"`
	Age                int     `json:"age"`
	HeightCm           int     `json:"height"`
	WeightKg           int     `json:"weight"`
	BodyFatPct         float64 `json:"bfp,omitempty"` // optional, 0 = unset
	ExperienceLevel    string  `json:"experienceLevel"`
	FitnessGoal        string  `json:"fitnessGoal"`
	EquipmentAccess    string  `json:"equipmentAccess"`
	PreferredWorkouts  string  `json:"preferredWorkoutTypes"`
	TimeAvailable      string  `json:"timeAvailable"`
	Injuries           string  `json:"injuries,omitempty"`           // optional free text
	PersonalPreference string  `json:"personalPreference,omitempty"` // optional free text
}

// Selection options offered for the profile's enumerated fields. The
// generation service accepts these verbatim.
var (
	GenderOptions          = []string{"Male", "Female", "Other"}
	ExperienceLevelOptions = []string{"Beginner", "Intermediate", "Advanced"}
	FitnessGoalOptions     = []string{"Weight Loss", "Muscle Gain", "Strength", "Endurance", "General Fitness", "Athletic Performance"}
	EquipmentOptions       = []string{"No Equipment", "Basic Home Gym", "Full Gym Access"}
	WorkoutTypeOptions     = []string{"Strength Training", "Cardio", "HIIT"}
	TimeAvailableOptions   = []string{"Less than 30 minutes", "30-45 minutes", "45-60 minutes", "60-90 minutes", "More than 90 minutes"}
)

// Numeric bounds enforced before any network call.
const (
	minAge, maxAge       = 16, 90
	minHeight, maxHeight = 140, 220
	minWeight, maxWeight = 40, 200
	minBFP, maxBFP       = 3.0, 50.0
)

// Validate checks every profile field and returns a ValidationError listing
// all failures, or nil when the profile is well formed.
func (p UserProfile) Validate() error {
	var verr ValidationError

	if p.Name == "" {
		verr.add("name", "name is required")
	}
	if !oneOf(p.Gender, GenderOptions) {
		verr.add("gender", "gender must be selected")
	}
	if p.Age < minAge || p.Age > maxAge {
		verr.add("age", fmt.Sprintf("age must be between %d-%d years", minAge, maxAge))
	}
	if p.HeightCm < minHeight || p.HeightCm > maxHeight {
		verr.add("height", fmt.Sprintf("height must be between %d-%d cm", minHeight, maxHeight))
	}
	if p.WeightKg < minWeight || p.WeightKg > maxWeight {
		verr.add("weight", fmt.Sprintf("weight must be between %d-%d kg", minWeight, maxWeight))
	}
	if p.BodyFatPct != 0 && (p.BodyFatPct < minBFP || p.BodyFatPct > maxBFP) {
		verr.add("bfp", fmt.Sprintf("body fat %% must be between %.0f-%.0f%%", minBFP, maxBFP))
	}
	if !oneOf(p.ExperienceLevel, ExperienceLevelOptions) {
		verr.add("experienceLevel", "experience level must be selected")
	}
	if !oneOf(p.FitnessGoal, FitnessGoalOptions) {
		verr.add("fitnessGoal", "fitness goal must be selected")
	}
	if !oneOf(p.EquipmentAccess, EquipmentOptions) {
		verr.add("equipmentAccess", "equipment access must be selected")
	}
	if !oneOf(p.PreferredWorkouts, WorkoutTypeOptions) {
		verr.add("preferredWorkoutTypes", "workout type must be selected")
	}
	if !oneOf(p.TimeAvailable, TimeAvailableOptions) {
		verr.add("timeAvailable", "time available must be selected")
	}

	if len(verr.Fields) > 0 {
		return &verr
	}
	return nil
}

func oneOf(v string, options []string) bool {
	for _, o := range options {
		if v == o {
			return true
		}
	}
	return false
}
