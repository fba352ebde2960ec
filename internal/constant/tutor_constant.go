package constant

const (
	SessionModeTutor  = "tutor"
	SessionModeBrowse = "browse"

	SessionStatusActive   = "active"
	SessionStatusArchived = "archived"

	MessageRoleUser   = "user"
	MessageRoleTutor  = "tutor"
	MessageRoleSystem = "system"

	ActivityTypeChat       = "chat"
	ActivityTypeAssessment = "assessment"
)

// Proficiency is binary in the current grading rubric: 1 means mastered,
// anything below means not yet mastered. The summary labels still cover
// the open (0,1) interval for future partial-credit scoring.
const (
	ProficiencyMastered = 1.0

	ProficiencyLabelMastered   = "mastered"
	ProficiencyLabelInProgress = "in progress"
	ProficiencyLabelNotStarted = "not started"
)
