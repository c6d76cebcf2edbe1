package task

import (
	"testing"
)

func TestResolveAssignees(t *testing.T) {
	uintPtr := func(v uint) *uint { return &v }

	tests := []struct {
		name   string
		single *uint
		many   []uint
		want   []uint
	}{
		{name: "neither set", single: nil, many: nil, want: []uint{}},
		{name: "single only", single: uintPtr(7), many: nil, want: []uint{7}},
		{name: "many only", single: nil, many: []uint{1, 2}, want: []uint{1, 2}},
		{name: "many wins over single", single: uintPtr(7), many: []uint{1, 2}, want: []uint{1, 2}},
		{name: "empty many falls back to single", single: uintPtr(7), many: []uint{}, want: []uint{7}},
		{name: "duplicates dropped", single: nil, many: []uint{3, 1, 3, 2, 1}, want: []uint{3, 1, 2}},
		{name: "order preserved", single: nil, many: []uint{9, 4, 6}, want: []uint{9, 4, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveAssignees(tt.single, tt.many)
			if len(got) != len(tt.want) {
				t.Fatalf("ResolveAssignees() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ResolveAssignees()[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestResolveAssigneesNeverNil(t *testing.T) {
	if got := ResolveAssignees(nil, nil); got == nil {
		t.Error("ResolveAssignees(nil, nil) = nil, want empty slice")
	}
}
