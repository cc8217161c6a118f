package ports

import (
	"testing"
	"time"
)

func TestFileTimes_Preferred(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	modified := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		times  FileTimes
		want   time.Time
		wantOK bool
	}{
		{"creation wins even when older", FileTimes{Created: created, Modified: modified}, created, true},
		{"modification as fallback", FileTimes{Modified: modified}, modified, true},
		{"neither", FileTimes{}, time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.times.Preferred()
			if ok != tt.wantOK || !got.Equal(tt.want) {
				t.Errorf("Preferred() = %v, %v; want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
