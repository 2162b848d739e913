package model

// Note domain object defining the free text written for a single day
// swagger:model
type Note struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	UserID  uint   `json:"userId" gorm:"index;not null"`
	Date    Date   `json:"date" gorm:"type:date;index;not null"`
	Content string `json:"content" gorm:"not null"`
}
