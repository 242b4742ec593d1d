package report

// Timer counts ticks until the next report is due.
type Timer struct {
	currentTicks int
	targetTicks  int
}

func NewTimer(every int) *Timer {
	return &Timer{
		currentTicks: 0,
		targetTicks:  max(1, every),
	}
}

func (t *Timer) Update() {
	t.currentTicks++
}

func (t *Timer) IsReady() bool {
	return t.currentTicks >= t.targetTicks
}

func (t *Timer) Reset() {
	t.currentTicks = 0
}
