package timegrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{"10:00", TimeOfDay{10, 0}, false},
		{"9:05", TimeOfDay{9, 5}, false},
		{"00:00", TimeOfDay{0, 0}, false},
		{"23:59", TimeOfDay{23, 59}, false},
		{"24:00", TimeOfDay{}, true},
		{"12:60", TimeOfDay{}, true},
		{"-1:00", TimeOfDay{}, true},
		{"noon", TimeOfDay{}, true},
		{"12", TimeOfDay{}, true},
		{"", TimeOfDay{}, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "Parse(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "Parse(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "09:30", "19:00", "23:59"} {
		parsed, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, parsed.String())
	}
}

func TestGenerateReferenceGrid(t *testing.T) {
	start := TimeOfDay{10, 0}
	end := TimeOfDay{19, 0}

	slots, err := Generate(start, end, 30)
	require.NoError(t, err)

	// 10:00 through 19:00 at 30 minutes is exactly 19 slots.
	require.Len(t, slots, 19)
	assert.Equal(t, start, slots[0])
	assert.Equal(t, end, slots[len(slots)-1])
	assert.Equal(t, "10:30", slots[1].String())
	assert.Equal(t, "18:30", slots[17].String())
}

func TestGenerateStrictlyIncreasingAndBounded(t *testing.T) {
	cases := []struct {
		start, end TimeOfDay
		interval   int
	}{
		{TimeOfDay{10, 0}, TimeOfDay{19, 0}, 30},
		{TimeOfDay{9, 15}, TimeOfDay{17, 45}, 45},
		{TimeOfDay{0, 0}, TimeOfDay{23, 59}, 7},
		{TimeOfDay{8, 0}, TimeOfDay{8, 0}, 15},
	}

	for _, tc := range cases {
		slots, err := Generate(tc.start, tc.end, tc.interval)
		require.NoError(t, err)
		require.NotEmpty(t, slots)
		assert.Equal(t, tc.start, slots[0])
		for i := 1; i < len(slots); i++ {
			assert.True(t, slots[i-1].Before(slots[i]), "slots must be strictly increasing")
		}
		assert.False(t, slots[len(slots)-1].After(tc.end), "last slot must not exceed end")
	}
}

func TestGenerateUnevenInterval(t *testing.T) {
	// 50 minutes does not divide 10:00-19:00; the grid stops at the last
	// in-bounds multiple with no short final slot.
	slots, err := Generate(TimeOfDay{10, 0}, TimeOfDay{19, 0}, 50)
	require.NoError(t, err)
	assert.Equal(t, "18:20", slots[len(slots)-1].String())
}

func TestGenerateErrors(t *testing.T) {
	_, err := Generate(TimeOfDay{10, 0}, TimeOfDay{19, 0}, 0)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = Generate(TimeOfDay{10, 0}, TimeOfDay{19, 0}, -30)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = Generate(TimeOfDay{19, 0}, TimeOfDay{10, 0}, 30)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = Generate(TimeOfDay{25, 0}, TimeOfDay{26, 0}, 30)
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestResolveExactlyOneStatus(t *testing.T) {
	booked := map[TimeOfDay]struct{}{
		{10, 0}:  {},
		{14, 30}: {},
	}
	selected := &TimeOfDay{11, 0}

	grid, err := Generate(TimeOfDay{10, 0}, TimeOfDay{19, 0}, 30)
	require.NoError(t, err)

	for _, slot := range grid {
		st := Resolve(slot, booked, selected)
		switch {
		case slot == *selected:
			assert.Equal(t, StatusSelected, st)
		case slot == TimeOfDay{10, 0} || slot == TimeOfDay{14, 30}:
			assert.Equal(t, StatusBooked, st)
		default:
			assert.Equal(t, StatusAvailable, st)
		}
	}
}

func TestResolveNilSelection(t *testing.T) {
	booked := map[TimeOfDay]struct{}{{12, 0}: {}}

	assert.Equal(t, StatusBooked, Resolve(TimeOfDay{12, 0}, booked, nil))
	assert.Equal(t, StatusAvailable, Resolve(TimeOfDay{12, 30}, booked, nil))
}

func TestResolveSelectedWinsOverBooked(t *testing.T) {
	// The precedence is explicit: a slot both selected and booked reports
	// selected. ClearConflictingSelection exists to keep this state from
	// persisting.
	slot := TimeOfDay{10, 0}
	booked := map[TimeOfDay]struct{}{slot: {}}

	assert.Equal(t, StatusSelected, Resolve(slot, booked, &slot))
}

func TestClearConflictingSelection(t *testing.T) {
	slot := TimeOfDay{10, 0}
	other := TimeOfDay{11, 0}
	booked := map[TimeOfDay]struct{}{slot: {}}

	assert.Nil(t, ClearConflictingSelection(&slot, booked))
	assert.Equal(t, &other, ClearConflictingSelection(&other, booked))
	assert.Nil(t, ClearConflictingSelection(nil, booked))
}
