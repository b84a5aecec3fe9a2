package entity

import (
	"time"

	"github.com/google/uuid"
)

// HapticResult is the classification payload returned to clients and stored in the result cache
type HapticResult struct {
	MainClass      string  `json:"main_class,omitempty"`
	SubClass       string  `json:"sub_class"`
	Position       string  `json:"position"`
	FirstPosition  *string `json:"first_position"`
	SecondPosition *string `json:"second_position"`
}

// AudioFile returns the name of the audio cue associated with the result
func (r *HapticResult) AudioFile() string {
	return r.SubClass + ".wav"
}

// Classification is a persisted record of a fresh (non-cached) classification
type Classification struct {
	ID             uuid.UUID    `json:"id" gorm:"type:uuid;primary_key"`
	Text           string       `json:"text" gorm:"type:text;not null"`
	Mode           TaxonomyMode `json:"mode" gorm:"type:varchar(20);not null"`
	MainClass      string       `json:"main_class,omitempty" gorm:"type:varchar(100)"`
	SubClass       string       `json:"sub_class" gorm:"type:varchar(100);not null;index"`
	Position       string       `json:"position" gorm:"type:varchar(20);not null"`
	FirstPosition  *string      `json:"first_position" gorm:"type:varchar(20)"`
	SecondPosition *string      `json:"second_position" gorm:"type:varchar(20)"`
	LatencyMs      int64        `json:"latency_ms" gorm:"default:0"`
	CreatedAt      time.Time    `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for GORM
func (Classification) TableName() string {
	return "classifications"
}

// NewClassification creates a record for a classified text
func NewClassification(text string, mode TaxonomyMode, result *HapticResult, latencyMs int64) *Classification {
	return &Classification{
		ID:             uuid.New(),
		Text:           text,
		Mode:           mode,
		MainClass:      result.MainClass,
		SubClass:       result.SubClass,
		Position:       result.Position,
		FirstPosition:  result.FirstPosition,
		SecondPosition: result.SecondPosition,
		LatencyMs:      latencyMs,
	}
}

// Result returns the client-facing payload of the record
func (c *Classification) Result() *HapticResult {
	return &HapticResult{
		MainClass:      c.MainClass,
		SubClass:       c.SubClass,
		Position:       c.Position,
		FirstPosition:  c.FirstPosition,
		SecondPosition: c.SecondPosition,
	}
}
