package models

import (
	"bytes"
	"strconv"
)

// Project is one showcased entry from the static projects file.
// Records are immutable once loaded.
type Project struct {
	ID          ProjectID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Language    string     `json:"language"`
	Age         string     `json:"age"`
	Icon        string     `json:"icon"`
	Difficulty  Difficulty `json:"difficulty"`
	Tags        []string   `json:"tags"`
}

// ProjectID is the stable reference key of a Project. The projects file
// uses bare numbers, but quoted ids are accepted too.
type ProjectID string

// UnmarshalJSON accepts either a JSON number or a JSON string.
func (id *ProjectID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		*id = ProjectID(s)
		return nil
	}
	if _, err := strconv.ParseFloat(string(data), 64); err != nil {
		return err
	}
	*id = ProjectID(data)
	return nil
}

func (id ProjectID) String() string { return string(id) }
