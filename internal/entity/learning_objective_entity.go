package entity

// LearningObjective is a catalog entry. The catalog is immutable at
// runtime and totally ordered by Id, which defines the default
// progression through the curriculum.
type LearningObjective struct {
	Id        int
	Topic     string
	Objective string
}
