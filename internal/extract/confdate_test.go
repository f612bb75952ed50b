package extract

import "testing"

func TestConfDate(t *testing.T) {
	w := Window{Min: 2025, Max: 2028}

	tests := []struct {
		name        string
		text        string
		wantStart   string
		wantDisplay string
		wantOK      bool
	}{
		{
			name:        "Labelled range",
			text:        "Conference Dates: 11 Jul 2026 - 12 Jul 2026",
			wantStart:   "2026-07-11",
			wantDisplay: "Jul 11-12",
			wantOK:      true,
		},
		{
			name:        "Labelled single day",
			text:        "Conference Date: 11 Jul 2026",
			wantStart:   "2026-07-11",
			wantDisplay: "Jul 11",
			wantOK:      true,
		},
		{
			name:        "Standalone Date line",
			text:        "Some Conference\nDate: 11 Jul 2026\nLocation: Amsterdam",
			wantStart:   "2026-07-11",
			wantDisplay: "Jul 11",
			wantOK:      true,
		},
		{
			name:        "Held on, day first",
			text:        "The workshop will be held on 11 July 2026 at the university.",
			wantStart:   "2026-07-11",
			wantDisplay: "Jul 11",
			wantOK:      true,
		},
		{
			name:        "Scheduled for, month first",
			text:        "The symposium is scheduled for July 11, 2026.",
			wantStart:   "2026-07-11",
			wantDisplay: "July 11, 2026",
			wantOK:      true,
		},
		{
			name:        "Takes place",
			text:        "The meeting takes place on 3 June 2026.",
			wantStart:   "2026-06-03",
			wantDisplay: "Jun 3",
			wantOK:      true,
		},
		{
			name:   "Out-of-window year rejected",
			text:   "Conference Dates: 11 Jul 2019 - 12 Jul 2019",
			wantOK: false,
		},
		{
			name:   "No date",
			text:   "Venue and dates to be announced.",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, display, ok := ConfDate(tt.text, w)
			if ok != tt.wantOK {
				t.Fatalf("ConfDate(%q) ok = %v, want %v (got %q, %q)", tt.text, ok, tt.wantOK, start, display)
			}
			if start != tt.wantStart || display != tt.wantDisplay {
				t.Errorf("ConfDate(%q) = (%q, %q), want (%q, %q)",
					tt.text, start, display, tt.wantStart, tt.wantDisplay)
			}
		})
	}
}
