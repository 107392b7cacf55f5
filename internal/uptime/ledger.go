package uptime

// Ledger collects session durations per day label. Every label of the
// window is present, even with no sessions.
type Ledger struct {
	labels    []string
	durations map[string][]int
}

func NewLedger(labels []string) *Ledger {
	l := &Ledger{
		labels:    append([]string(nil), labels...),
		durations: make(map[string][]int, len(labels)),
	}
	for _, label := range labels {
		l.durations[label] = []int{}
	}
	return l
}

// Add appends a session to its day. Labels outside the window are ignored.
func (l *Ledger) Add(label string, minutes int) {
	seq, ok := l.durations[label]
	if !ok {
		return
	}
	l.durations[label] = append(seq, minutes)
}

func (l *Ledger) Fill(entries []Entry) {
	for _, e := range entries {
		l.Add(e.Label, e.Minutes)
	}
}

func (l *Ledger) Durations(label string) []int {
	return l.durations[label]
}

// Labels returns the window labels in generation order, today first.
func (l *Ledger) Labels() []string {
	return append([]string(nil), l.labels...)
}

func (l *Ledger) Len() int {
	return len(l.labels)
}
