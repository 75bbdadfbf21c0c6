package db_models

import (
	"time"

	"tripgenius/pkg/utils"
)

type BaseModel struct {
	ID        string `json:"id"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

// Stamp assigns a fresh record id and creation timestamps.
// Repositories call this on insert.
func (b *BaseModel) Stamp() {
	if b.ID == "" {
		b.ID = utils.NewRecordID()
	}
	now := time.Now().Unix()
	b.CreatedAt = now
	b.UpdatedAt = now
}

func (b *BaseModel) Touch() {
	b.UpdatedAt = time.Now().Unix()
}
