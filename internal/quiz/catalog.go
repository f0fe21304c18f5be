package quiz

import "fmt"

// QuestionType selects the scoring rule for a question.
type QuestionType string

const (
	TypeYesNo          QuestionType = "yes_no"
	TypeFrequency      QuestionType = "frequency"
	TypeImpact         QuestionType = "impact"
	TypeScale          QuestionType = "scale"
	TypeSingleChoice   QuestionType = "single_choice"
	TypeMultipleChoice QuestionType = "multiple_choice"
)

// Section keys. A session always starts in basic_info; concern sections
// are visited in the order the user selected them.
const (
	SectionBasicInfo    = "basic_info"
	SectionMainConcerns = "main_concerns"
	SectionStress       = "stress_academic"
	SectionAnxiety      = "anxiety_worry"
	SectionLowMood      = "low_mood_sadness"
	SectionSleep        = "sleep_problems"
)

// MaxLevel is the deepest tier a concern section can reach.
const MaxLevel = 3

// Question is an immutable catalog entry.
type Question struct {
	ID       string       `json:"question_id"`
	Prompt   string       `json:"question"`
	Type     QuestionType `json:"type"`
	Options  []string     `json:"options,omitempty"`
	Scale    []int        `json:"scale,omitempty"`
	Weight   int          `json:"weight"`
	Critical bool         `json:"critical,omitempty"`
	Required bool         `json:"required,omitempty"`
	Section  string       `json:"section"`
	Level    int          `json:"level,omitempty"`
}

// concernLabels maps the multi-select option text to section keys.
// Selections without a mapping ("Other", free text) are skipped by
// navigation but still recorded in the responses.
var concernLabels = map[string]string{
	"Stress & Academic Pressure": SectionStress,
	"Anxiety / Worry":            SectionAnxiety,
	"Low Mood / Sadness":         SectionLowMood,
	"Sleep Problems":             SectionSleep,
}

// concernMoods maps a concern label to the mood suggested when that
// concern carries the highest score.
var concernMoods = map[string]string{
	"Stress & Academic Pressure": "stressed",
	"Anxiety / Worry":            "anxious",
	"Low Mood / Sadness":         "sad",
	"Sleep Problems":             "tired",
}

var basicInfoQuestions = []Question{
	{
		ID:       "age_group",
		Prompt:   "What is your age group?",
		Type:     TypeSingleChoice,
		Options:  []string{"18-20", "21-23", "24+"},
		Required: true,
		Section:  SectionBasicInfo,
	},
	{
		ID:       "year_of_study",
		Prompt:   "What year of study are you in?",
		Type:     TypeSingleChoice,
		Options:  []string{"1st year", "2nd year", "3rd year", "4th year", "Postgraduate"},
		Required: true,
		Section:  SectionBasicInfo,
	},
	{
		ID:       "living_situation",
		Prompt:   "What is your current living situation?",
		Type:     TypeSingleChoice,
		Options:  []string{"Hostel", "With family", "Rented accommodation", "Living alone"},
		Required: true,
		Section:  SectionBasicInfo,
	},
}

var concernSelection = Question{
	ID:     "concern_selection",
	Prompt: "What is your main area of concern? (Select all that apply)",
	Type:   TypeMultipleChoice,
	Options: []string{
		"Stress & Academic Pressure",
		"Anxiety / Worry",
		"Low Mood / Sadness",
		"Sleep Problems",
		"Other",
	},
	Required: true,
	Section:  SectionMainConcerns,
}

// concernQuestions holds the three levels of every concern section.
// Weight 0 marks informational questions that never score.
var concernQuestions = map[string][][]Question{
	SectionStress: {
		{
			{ID: "stress_overwhelmed", Prompt: "Do you often feel overwhelmed by your studies?", Type: TypeYesNo, Weight: 2},
			{ID: "stress_deadlines", Prompt: "Do deadlines or exams cause you too much tension?", Type: TypeYesNo, Weight: 2},
		},
		{
			{ID: "stress_frequency", Prompt: "How many days in a week do you feel stressed?", Type: TypeScale, Scale: []int{0, 1, 2, 3, 4, 5, 6, 7}, Weight: 1},
			{ID: "stress_balance", Prompt: "Do you find it hard to balance study, sleep, and free time?", Type: TypeFrequency, Options: []string{"Never", "Sometimes", "Often", "Always"}, Weight: 1},
			{ID: "stress_triggers", Prompt: "What usually triggers your stress?", Type: TypeMultipleChoice, Options: []string{"Exams", "Assignments", "Time management", "Social pressure", "Financial concerns", "Other"}, Weight: 0},
		},
		{
			{ID: "stress_academic_impact", Prompt: "How much is stress affecting your academic performance?", Type: TypeImpact, Options: []string{"Not at all", "A little", "Moderately", "A lot"}, Weight: 2},
			{ID: "stress_physical", Prompt: "Do you face physical symptoms due to stress (headache, tiredness, lack of sleep)?", Type: TypeYesNo, Weight: 1},
			{ID: "stress_support", Prompt: "What would help you most?", Type: TypeSingleChoice, Options: []string{"Self-help tips", "Time management tools", "Talk to a counselor", "Peer support", "Professional help"}, Weight: 0},
		},
	},
	SectionAnxiety: {
		{
			{ID: "anxiety_nervous", Prompt: "Do you often feel nervous or worried?", Type: TypeYesNo, Weight: 2},
			{ID: "anxiety_overthink", Prompt: "Do small problems make you overthink a lot?", Type: TypeYesNo, Weight: 2},
		},
		{
			{ID: "anxiety_frequency", Prompt: "How often do you feel anxious in a week?", Type: TypeFrequency, Options: []string{"Rarely", "Sometimes", "Often", "Almost daily"}, Weight: 2},
			{ID: "anxiety_relax", Prompt: "Do you find it hard to relax when you're worried?", Type: TypeYesNo, Weight: 1},
			{ID: "anxiety_triggers", Prompt: "What situations make you anxious?", Type: TypeMultipleChoice, Options: []string{"Exams", "Social interactions", "Future plans", "Public speaking", "Meeting new people", "Other"}, Weight: 0},
		},
		{
			{ID: "anxiety_avoidance", Prompt: "Does anxiety stop you from attending classes or focusing on work?", Type: TypeFrequency, Options: []string{"Never", "Sometimes", "Often", "Always"}, Weight: 2},
			{ID: "anxiety_physical", Prompt: "Do you feel physical symptoms like sweating, fast heartbeat, or panic?", Type: TypeYesNo, Weight: 2},
			{ID: "anxiety_support", Prompt: "What type of support would you prefer?", Type: TypeSingleChoice, Options: []string{"Breathing/relaxation exercises", "Peer support", "Professional counseling", "Self-help resources", "Medication consultation"}, Weight: 0},
		},
	},
	SectionLowMood: {
		{
			{ID: "mood_sad_interest", Prompt: "Do you often feel sad or lose interest in daily activities?", Type: TypeYesNo, Weight: 3},
			{ID: "mood_duration", Prompt: "Have you been feeling low for more than 2 weeks?", Type: TypeYesNo, Weight: 3},
		},
		{
			{ID: "mood_energy", Prompt: "Do you feel tired or low on energy most days?", Type: TypeYesNo, Weight: 2},
			{ID: "mood_concentration", Prompt: "Do you face trouble concentrating on studies?", Type: TypeYesNo, Weight: 2},
			{ID: "mood_self_negative", Prompt: "Do you feel negative about yourself?", Type: TypeYesNo, Weight: 2},
		},
		{
			{ID: "mood_impact", Prompt: "How much is sadness affecting your studies or relationships?", Type: TypeImpact, Options: []string{"Not at all", "A little", "Moderately", "A lot"}, Weight: 2},
			{ID: "mood_suicidal", Prompt: "Do you sometimes feel life is not worth living?", Type: TypeFrequency, Options: []string{"Never", "Sometimes", "Often", "Very often"}, Weight: 5, Critical: true},
			{ID: "mood_support", Prompt: "What type of support would be most helpful?", Type: TypeSingleChoice, Options: []string{"Motivational resources", "Peer support groups", "Professional counseling", "Self-help tools", "Crisis intervention"}, Weight: 0},
		},
	},
	SectionSleep: {
		{
			{ID: "sleep_falling_asleep", Prompt: "Do you often have trouble falling asleep?", Type: TypeYesNo, Weight: 2},
			{ID: "sleep_wake_unrested", Prompt: "Do you wake up frequently at night or feel unrested?", Type: TypeYesNo, Weight: 2},
		},
		{
			{ID: "sleep_hours", Prompt: "How many hours of sleep do you usually get?", Type: TypeSingleChoice, Options: []string{"Less than 4 hours", "4-6 hours", "6-8 hours", "More than 8 hours"}, Weight: 1},
			{ID: "sleep_screen_time", Prompt: "Do you use your phone or laptop late at night?", Type: TypeYesNo, Weight: 1},
			{ID: "sleep_next_day_focus", Prompt: "Do sleep problems affect your next-day focus?", Type: TypeYesNo, Weight: 2},
		},
		{
			{ID: "sleep_impact", Prompt: "How badly are sleep issues affecting your studies or mood?", Type: TypeImpact, Options: []string{"Not at all", "A little", "Moderately", "A lot"}, Weight: 2},
			{ID: "sleep_remedies_tried", Prompt: "Have you tried remedies like reducing caffeine, meditation, or exercise?", Type: TypeYesNo, Weight: 0},
			{ID: "sleep_support", Prompt: "What would you prefer for better sleep?", Type: TypeSingleChoice, Options: []string{"Sleep hygiene tips", "Relaxation techniques", "Professional consultation", "Sleep tracking tools", "Lifestyle changes"}, Weight: 0},
		},
	},
}

func init() {
	for section, levels := range concernQuestions {
		for li := range levels {
			for qi := range levels[li] {
				levels[li][qi].Section = section
				levels[li][qi].Level = li + 1
			}
		}
	}
}

// levelQuestions returns the questions of one level of a concern
// section. Referencing an undefined section or level is a programming
// error: the catalog is closed-world and the navigator only generates
// valid combinations.
func levelQuestions(section string, level int) []Question {
	levels, ok := concernQuestions[section]
	if !ok {
		panic(fmt.Sprintf("quiz: unknown concern section %q", section))
	}
	if level < 1 || level > len(levels) {
		panic(fmt.Sprintf("quiz: section %q has no level %d", section, level))
	}
	return levels[level-1]
}

// selectedSections resolves the concern labels the user picked into
// section keys, preserving selection order and dropping unknown labels.
func selectedSections(labels []string) []string {
	var sections []string
	for _, label := range labels {
		if key, ok := concernLabels[label]; ok {
			sections = append(sections, key)
		}
	}
	return sections
}

// CatalogVersion identifies the compiled-in question set. Bump when
// question ids, weights, or thresholds change so stored results can be
// told apart.
const CatalogVersion = "2024-09"
