package model

import (
	"encoding/json"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Assignment: tugas yang bisa dinilai. Hanya pemilik (Email) yang boleh ubah/hapus.
// Field body yang tidak dikenal disimpan apa adanya di Extra dan ikut dikembalikan saat GET.
type Assignment struct {
	ID          primitive.ObjectID `json:"_id"                 bson:"_id"`
	Title       string             `json:"title"               bson:"title"`
	Description string             `json:"description"         bson:"description"`
	Difficulty  string             `json:"difficulty"          bson:"difficulty"`
	Marks       float64            `json:"marks"               bson:"marks"`
	Email       string             `json:"email"               bson:"email"`
	DueDate     string             `json:"due_date,omitempty"  bson:"due_date,omitempty"`
	Thumbnail   string             `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	CreatedAt   time.Time          `json:"created_at"          bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"          bson:"updated_at"`

	Extra map[string]any `json:"-" bson:",inline"`
}

// KnownFields: key JSON yang dipetakan ke field struct; sisanya masuk Extra.
var KnownFields = map[string]struct{}{
	"_id": {}, "title": {}, "description": {}, "difficulty": {}, "marks": {},
	"email": {}, "due_date": {}, "thumbnail": {}, "created_at": {}, "updated_at": {},
}

// ExtraFields memilah key body yang bukan field bawaan.
// Key kosong, diawali "$", atau mengandung "." ditolak (tidak aman untuk mongo).
func ExtraFields(body map[string]any) (map[string]any, []string) {
	var extra map[string]any
	var invalid []string
	for k, v := range body {
		if _, ok := KnownFields[k]; ok {
			continue
		}
		if k == "" || strings.HasPrefix(k, "$") || strings.Contains(k, ".") {
			invalid = append(invalid, k)
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[k] = v
	}
	return extra, invalid
}

type assignmentAlias Assignment

func (a Assignment) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(assignmentAlias(a))
	if err != nil || len(a.Extra) == 0 {
		return base, err
	}

	out := make(map[string]json.RawMessage, len(a.Extra)+len(KnownFields))
	if err := json.Unmarshal(base, &out); err != nil {
		return nil, err
	}
	for k, v := range a.Extra {
		if _, taken := out[k]; taken {
			continue
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		out[k] = raw
	}
	return json.Marshal(out)
}

func (a *Assignment) UnmarshalJSON(data []byte) error {
	var alias assignmentAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	*a = Assignment(alias)
	a.Extra, _ = ExtraFields(all)
	return nil
}

type AssignmentFilter struct {
	Difficulty string
}

// AssignmentUpdate: patch parsial; field nil tidak disentuh. Email sengaja tidak ada.
type AssignmentUpdate struct {
	Title       *string
	Description *string
	Difficulty  *string
	Marks       *float64
	DueDate     *string
	Thumbnail   *string
	Extra       map[string]any
}

func (u AssignmentUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Difficulty == nil &&
		u.Marks == nil && u.DueDate == nil && u.Thumbnail == nil && len(u.Extra) == 0
}

// Apply dipakai driver yang tidak punya $set (bolt).
func (u AssignmentUpdate) Apply(a *Assignment) {
	if u.Title != nil {
		a.Title = *u.Title
	}
	if u.Description != nil {
		a.Description = *u.Description
	}
	if u.Difficulty != nil {
		a.Difficulty = *u.Difficulty
	}
	if u.Marks != nil {
		a.Marks = *u.Marks
	}
	if u.DueDate != nil {
		a.DueDate = *u.DueDate
	}
	if u.Thumbnail != nil {
		a.Thumbnail = *u.Thumbnail
	}
	if len(u.Extra) > 0 && a.Extra == nil {
		a.Extra = make(map[string]any, len(u.Extra))
	}
	for k, v := range u.Extra {
		a.Extra[k] = v
	}
}
