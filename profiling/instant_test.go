package profiling

import "testing"

func TestDurationSince(t *testing.T) {
	testCases := []struct {
		name    string
		earlier Container
		later   Container
		want    Container
		ok      bool
	}{
		{"normal", 100, 350, 250, true},
		{"equal", 42, 42, 0, true},
		{"wrapped", 350, 100, 0, false},
	}

	for _, tc := range testCases {
		d, ok := InstantFromTicks(tc.later).DurationSince(InstantFromTicks(tc.earlier))
		if ok != tc.ok {
			t.Errorf("%s: ok = %v, want %v", tc.name, ok, tc.ok)
			continue
		}
		if ok && d.Microseconds() != tc.want {
			t.Errorf("%s: duration = %d, want %d", tc.name, d.Microseconds(), tc.want)
		}
	}
}

func TestSnapshotString(t *testing.T) {
	s := &Snapshot{Name: "sensor-read", Duration: Duration(1000)}
	if got, want := s.String(), "<EPSS sensor-read: 1000µs>"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
