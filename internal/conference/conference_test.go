package conference

import (
	"reflect"
	"testing"
)

func TestDisciplines(t *testing.T) {
	tests := []struct {
		name     string
		category string
		confName string
		want     []string
	}{
		{name: "Category finance", category: "Finance", confName: "Spring Meeting", want: []string{"fin"}},
		{name: "Category accounting", category: "Accounting", confName: "Spring Meeting", want: []string{"acct"}},
		{name: "Category economics", category: "Economics", confName: "Spring Meeting", want: []string{"econ"}},
		{
			name:     "Multi-network category",
			category: "Finance,Economics",
			confName: "Macro-Finance Workshop",
			want:     []string{"econ", "fin"},
		},
		{
			name:     "Name adds a discipline",
			category: "Finance",
			confName: "Conference on Accounting and Capital Markets",
			want:     []string{"acct", "fin"},
		},
		{
			name:     "Macroeconomics in name",
			category: "",
			confName: "Workshop on Macroeconomic Policy",
			want:     []string{"econ"},
		},
		{name: "Default", category: "", confName: "Annual Research Summit", want: []string{"fin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Disciplines(tt.category, tt.confName); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Disciplines(%q, %q) = %v, want %v", tt.category, tt.confName, got, tt.want)
			}
		})
	}
}

func TestInferConfidence(t *testing.T) {
	tests := []struct {
		start string
		want  string
	}{
		{"", ""},
		{"2026-07-01", ConfidenceMonth},
		{"2026-07-11", ConfidenceDay},
	}
	for _, tt := range tests {
		if got := InferConfidence(tt.start); got != tt.want {
			t.Errorf("InferConfidence(%q) = %q, want %q", tt.start, got, tt.want)
		}
	}
}
