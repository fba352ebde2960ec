package model

type LearningObjective struct {
	Id        int    `gorm:"primaryKey;autoIncrement:false"`
	Topic     string `gorm:"type:text;not null"`
	Objective string `gorm:"type:text;not null"`
}

func (LearningObjective) TableName() string {
	return "learning_objectives"
}
