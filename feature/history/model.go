package history

import "time"

// Entry is one recorded translation.
type Entry struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	RunID     string    `gorm:"size:36;index" json:"run_id"`
	Locale    string    `gorm:"size:32;index:idx_history_locale_name" json:"locale"`
	Name      string    `gorm:"size:255;index:idx_history_locale_name" json:"name"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the default table name.
func (Entry) TableName() string {
	return "translation_history"
}
