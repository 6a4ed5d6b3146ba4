package track

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/elevator/pkg/disk/sched"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestDraw(t *testing.T) {
	assert.Equal(t, "0 H--------- 199", Draw(0, 200, 10))
	assert.Equal(t, "0 -----H---- 199", Draw(100, 200, 10))
	assert.Equal(t, "0 ---------H 199", Draw(199, 200, 10))
	assert.Equal(t, "0 ---------H 199", Draw(200, 200, 10))
}

func TestColumn(t *testing.T) {
	assert.Equal(t, 0, Column(0, 200, 60))
	assert.Equal(t, 15, Column(50, 200, 60))
	assert.Equal(t, 59, Column(200, 200, 60))
	assert.Equal(t, 0, Column(5, 0, 60))
}

func TestFrames(t *testing.T) {
	assert.Equal(t, []int{51, 52, 53}, Frames(50, 53, 10))
	assert.Equal(t, []int{48, 46}, Frames(50, 46, 2))
	assert.Equal(t, []int{70}, Frames(70, 70, 10))
	assert.Equal(t, []int{0}, Frames(10, 0, 0))

	frames := Frames(0, 199, 60)
	require.Len(t, frames, 60)
	assert.Equal(t, 199, frames[len(frames)-1])
}

func outcomes(t *testing.T) []sched.Outcome {
	t.Helper()

	outcomes, err := sched.RunAll(50, []int{10, 90, 30}, 200, sched.LOOK, sched.SCAN)
	require.NoError(t, err)
	return outcomes
}

func TestSession(t *testing.T) {
	// LOOK: 50 90 30 10, SCAN: 50 90 199 30 10
	session := NewSession(outcomes(t))

	pos, ok := session.Position(sched.LOOK)
	require.True(t, ok)
	assert.Equal(t, 50, pos)

	steps := 0
	for session.Step() {
		steps++
	}
	assert.Equal(t, 4, steps)
	assert.True(t, session.Done())

	pos, _ = session.Position(sched.LOOK)
	assert.Equal(t, 10, pos)
	step, total := session.Progress(sched.LOOK)
	assert.Equal(t, 3, step)
	assert.Equal(t, 3, total)

	session.Reset()
	assert.False(t, session.Done())
	pos, _ = session.Position(sched.SCAN)
	assert.Equal(t, 50, pos)

	session.Step()
	session.Step()
	pos, _ = session.Position(sched.SCAN)
	assert.Equal(t, 199, pos)

	_, ok = session.Position(sched.FCFS)
	assert.False(t, ok)
}

func TestSession_Empty(t *testing.T) {
	session := NewSession(nil)
	assert.True(t, session.Done())
	assert.False(t, session.Step())
}

func TestPlayer(t *testing.T) {
	var buf bytes.Buffer
	player := Player{Out: &buf, DiskSize: 200, Width: 20}

	session := NewSession(outcomes(t))
	require.NoError(t, player.Play(session))
	assert.True(t, session.Done())

	out := buf.String()
	assert.NotContains(t, out, clearScreen)
	assert.Contains(t, out, "LOOK    0 -----H-------------- 199    50  [0/3]")
	assert.Contains(t, out, "SCAN    0 -------------------H 199   199  [2/4]")
	assert.Contains(t, out, "LOOK    0 -H------------------ 199    10  [3/3]")

	// the last frame shows every head at its final stop
	frames := strings.Split(strings.TrimSpace(out), "\n\n")
	last := frames[len(frames)-1]
	assert.Contains(t, last, "[3/3]")
	assert.Contains(t, last, "[4/4]")
}

func TestPlayer_Clear(t *testing.T) {
	var buf bytes.Buffer
	player := Player{Out: &buf, DiskSize: 200, Width: 20, Clear: true}

	require.NoError(t, player.Play(NewSession(outcomes(t))))
	assert.True(t, strings.HasPrefix(buf.String(), clearScreen))
}
