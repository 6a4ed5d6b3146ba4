package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"laptudirm.com/x/elevator/pkg/disk/sched"
)

func TestSummarize(t *testing.T) {
	result := sched.Result{Order: []int{50, 10, 90, 30}, Total: 180}

	summary := Summarize(result, 200)
	assert.Equal(t, 180, summary.Total)
	assert.Equal(t, 3, summary.Seeks)
	assert.InDelta(t, 60.0, summary.AverageSeek, 1e-9)
	assert.InDelta(t, 111.111, summary.Efficiency, 1e-3)
	assert.Equal(t, 80, summary.Span)
}

func TestSummarize_NoMovement(t *testing.T) {
	summary := Summarize(sched.Result{Order: []int{42}}, 100)

	assert.Zero(t, summary.Seeks)
	assert.Zero(t, summary.AverageSeek)
	assert.Equal(t, 100.0, summary.Efficiency)
	assert.Zero(t, summary.Span)

	assert.Zero(t, Seeks(sched.Result{}))
	assert.Zero(t, Span(sched.Result{}))
}
