package models

// Draft is the raw editable text persisted for one document key.
type Draft struct {
	Name string `json:"name" gorm:"primaryKey"`
	Text string `json:"text" gorm:"type:text;not null"`
}

func (Draft) TableName() string {
	return "texts"
}

// StoreMeta records the schema version a store was created with.
type StoreMeta struct {
	Name    string `gorm:"primaryKey"`
	Version int    `gorm:"not null"`
}

func (StoreMeta) TableName() string {
	return "store_meta"
}
