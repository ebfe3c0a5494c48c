package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestFolderIsRoot(t *testing.T) {
	parent := "parent-1"
	tests := []struct {
		name     string
		parentID *string
		want     bool
	}{
		{"nil parent", nil, true},
		{"has parent", &parent, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := Folder{ID: "f-1", ParentID: tc.parentID}
			if got := f.IsRoot(); got != tc.want {
				t.Errorf("IsRoot() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOwnerNeverSerialized(t *testing.T) {
	now := time.Now()
	folder := Folder{ID: "f-1", OwnerID: "owner-1", Name: "A", CreatedAt: now, UpdatedAt: now}
	file := File{ID: "d-1", OwnerID: "owner-1", FolderID: "f-1", Name: "a.pdf", ContentKey: "key-1"}

	for _, v := range []any{folder, folder.Summary(), file} {
		raw, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if strings.Contains(string(raw), "owner-1") {
			t.Errorf("owner leaked into JSON: %s", raw)
		}
		if strings.Contains(string(raw), "key-1") {
			t.Errorf("content key leaked into JSON: %s", raw)
		}
	}
}
