package dto

type ObjectiveResponse struct {
	Id        int    `json:"id"`
	Topic     string `json:"topic"`
	Objective string `json:"objective"`
}
