package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	"nourishcoach/internal/timegrid"
)

// memoryLedger is the demo-mode ledger: day-keyed sets behind a mutex, no
// persistence. Safe for concurrent callers; TryCommit holds the lock across
// the check and the insert so both sides of the race see set semantics.
type memoryLedger struct {
	mu     sync.Mutex
	days   map[string]map[timegrid.TimeOfDay]*Appointment
	nextID int
}

func NewMemoryLedger() Ledger {
	return &memoryLedger{
		days:   make(map[string]map[timegrid.TimeOfDay]*Appointment),
		nextID: 1,
	}
}

// NewSeededMemoryLedger pre-books the demo busy slots relative to today:
// a few taken times today, tomorrow and the day after.
func NewSeededMemoryLedger() Ledger {
	l := &memoryLedger{
		days:   make(map[string]map[timegrid.TimeOfDay]*Appointment),
		nextID: 1,
	}

	seed := map[int][]string{
		0: {"10:00", "10:30", "14:00", "17:30"},
		1: {"12:00", "12:30", "13:00", "16:00"},
		2: {"11:00", "11:30", "15:00"},
	}
	ctx := context.Background()
	for offset, times := range seed {
		date := time.Now().AddDate(0, 0, offset).Format("2006-01-02")
		for _, s := range times {
			t, err := timegrid.Parse(s)
			if err != nil {
				continue
			}
			l.TryCommit(ctx, &Appointment{
				Date:  date,
				Time:  t.String(),
				Name:  "Reserved",
				Phone: "0000000",
			})
		}
	}

	return l
}

func (l *memoryLedger) IsBooked(ctx context.Context, date string, t timegrid.TimeOfDay) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	day, ok := l.days[date]
	if !ok {
		return false, nil
	}
	_, booked := day[t]
	return booked, nil
}

func (l *memoryLedger) BookedTimes(ctx context.Context, date string) ([]timegrid.TimeOfDay, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	day := l.days[date]
	times := make([]timegrid.TimeOfDay, 0, len(day))
	for t := range day {
		times = append(times, t)
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	return times, nil
}

func (l *memoryLedger) TryCommit(ctx context.Context, appt *Appointment) (bool, error) {
	t, err := timegrid.Parse(appt.Time)
	if err != nil {
		return false, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	day, ok := l.days[appt.Date]
	if !ok {
		// Entries are created lazily on first booking for a date.
		day = make(map[timegrid.TimeOfDay]*Appointment)
		l.days[appt.Date] = day
	}

	if _, booked := day[t]; booked {
		return false, nil
	}

	appt.ID = l.nextID
	appt.CreatedAt = time.Now()
	l.nextID++
	day[t] = appt

	return true, nil
}
