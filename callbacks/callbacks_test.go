package callbacks_test

import (
	"errors"
	"testing"
	"time"

	"github.com/npillmayer/guistyle/callbacks"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type counter struct {
	N int
}

func TestRefAnyDowncast(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.events")
	defer teardown()
	//
	r := callbacks.NewRefAny(counter{N: 3})
	assert.Equal(t, "callbacks_test.counter", r.TypeName())
	assert.True(t, callbacks.IsType[counter](r))
	c, ok := callbacks.Downcast[counter](r).Get()
	require.True(t, ok)
	assert.Equal(t, 3, c.N)
	if callbacks.Downcast[string](r).IsJust() {
		t.Errorf("expected downcast to wrong type to give Nothing")
	}
	m, ok := callbacks.DowncastMut[counter](r).Get()
	require.True(t, ok)
	m.N++
	assert.Equal(t, 4, c.N, "downcasts share the value")
}

func TestRefAnyCounts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.events")
	defer teardown()
	//
	r := callbacks.NewRefAny(counter{})
	assert.True(t, r.CanBeShared())
	assert.True(t, r.CanBeSharedMut())
	r.IncreaseRef()
	assert.True(t, r.CanBeShared())
	assert.False(t, r.CanBeSharedMut())
	assert.False(t, callbacks.DowncastMut[counter](r).IsJust())
	r.DecreaseRef()
	r.IncreaseRefMut()
	assert.False(t, r.CanBeShared())
	assert.False(t, callbacks.Downcast[counter](r).IsJust())
	r.DecreaseRefMut()
	assert.True(t, r.CanBeSharedMut())
	// contract breach must neither panic nor leave negative counts
	r.DecreaseRef()
	r.DecreaseRefMut()
	shared, mut := r.Counts()
	assert.Equal(t, int64(0), shared)
	assert.Equal(t, int64(0), mut)
}

func TestRefAnyDestructorRunsOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.events")
	defer teardown()
	//
	calls := 0
	r := callbacks.NewRefAnyWithDestructor(counter{}, func(*counter) { calls++ })
	clone := r.Clone()
	r.Drop()
	assert.Equal(t, 0, calls, "a clone is still alive")
	assert.True(t, clone.IsValid())
	clone.IncreaseRef()
	clone.Drop()
	assert.Equal(t, 0, calls, "a borrow is still outstanding")
	clone.DecreaseRef()
	assert.Equal(t, 1, calls)
	clone.Drop()
	r.Drop()
	assert.Equal(t, 1, calls)
	assert.False(t, clone.IsValid())
	assert.False(t, callbacks.Downcast[counter](clone).IsJust())
}

func TestBorrow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.events")
	defer teardown()
	//
	r := callbacks.NewRefAny(counter{})
	ok := callbacks.BorrowMut(r, func(c *counter) {
		assert.False(t, r.CanBeShared())
		c.N = 7
	})
	require.True(t, ok)
	var n int
	callbacks.Borrow(r, func(c *counter) { n = c.N })
	assert.Equal(t, 7, n)
	assert.False(t, callbacks.Borrow(r, func(*string) {}))
}

func TestEventFilters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.events")
	defer teardown()
	//
	f := callbacks.Not(callbacks.Hover(callbacks.HoverMouseOver))
	assert.Equal(t, callbacks.NotFilter, f.Kind())
	assert.Equal(t, "Not(Hover(MouseOver))", f.String())
	inner, ok := f.AsNot()
	require.True(t, ok)
	e, ok := inner.AsHover()
	require.True(t, ok)
	assert.Equal(t, callbacks.HoverMouseOver, e)
	assert.Equal(t, "Not(Focus(FocusLost))", callbacks.Not(callbacks.Focus(callbacks.FocusLost)).String())
	w := callbacks.Window(callbacks.WindowScroll)
	assert.Equal(t, w, callbacks.Not(w), "window filters cannot be inverted")
}

func TestOnToEventFilter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.events")
	defer teardown()
	//
	cases := []struct {
		on   callbacks.On
		want callbacks.EventFilter
	}{
		{callbacks.OnMouseOver, callbacks.Hover(callbacks.HoverMouseOver)},
		{callbacks.OnMiddleMouseDown, callbacks.Hover(callbacks.HoverMiddleMouseDown)},
		{callbacks.OnRightMouseUp, callbacks.Hover(callbacks.HoverRightMouseUp)},
		{callbacks.OnTextInput, callbacks.Focus(callbacks.FocusTextInput)},
		{callbacks.OnVirtualKeyDown, callbacks.Window(callbacks.WindowVirtualKeyDown)},
		{callbacks.OnVirtualKeyUp, callbacks.Window(callbacks.WindowVirtualKeyUp)},
		{callbacks.OnHoveredFileCancelled, callbacks.Hover(callbacks.HoverHoveredFileCancelled)},
		{callbacks.OnFocusLost, callbacks.Focus(callbacks.FocusLost)},
	}
	for _, c := range cases {
		if got := c.on.EventFilter(); got != c.want {
			t.Errorf("expected %s to convert to %s, is %s", c.on, c.want, got)
		}
	}
}

func TestFilterConversions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.events")
	defer teardown()
	//
	f, ok := callbacks.HoverVirtualKeyUp.ToFocus()
	assert.True(t, ok)
	assert.Equal(t, callbacks.FocusVirtualKeyUp, f)
	_, ok = callbacks.HoverDroppedFile.ToFocus()
	assert.False(t, ok)
	h, ok := callbacks.WindowDroppedFile.ToHover()
	assert.True(t, ok)
	assert.Equal(t, callbacks.HoverDroppedFile, h)
	_, ok = callbacks.WindowMouseEnter.ToHover()
	assert.False(t, ok)
}

func TestUpdateScreenStrength(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.events")
	defer teardown()
	//
	assert.Equal(t, callbacks.DontRedraw, callbacks.Strongest())
	assert.Equal(t, callbacks.UpdateScrollStates,
		callbacks.Strongest(callbacks.DontRedraw, callbacks.UpdateScrollStates))
	assert.Equal(t, callbacks.UpdateTransforms,
		callbacks.Strongest(callbacks.UpdateTransforms, callbacks.UpdateScrollStates))
	assert.Equal(t, callbacks.Redraw,
		callbacks.Strongest(callbacks.UpdateTransforms, callbacks.Redraw, callbacks.DontRedraw))
	assert.True(t, callbacks.UpdateTransforms.IsGPUOnly())
	assert.False(t, callbacks.Redraw.IsGPUOnly())
}

func TestCallbackInfo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.events")
	defer teardown()
	//
	current := callbacks.NewWindowState("app")
	current.Mouse.CursorPosition = callbacks.CursorPosition{InWindow: true,
		Position: callbacks.LogicalPosition{X: 10, Y: 20}}
	current.Keyboard.ShiftDown = true
	modified := current.Clone()
	info := callbacks.NewCallbackInfo(current, modified, 3)
	assert.True(t, info.Keyboard().ShiftDown)
	pos, ok := info.CursorInViewport().Get()
	require.True(t, ok)
	assert.Equal(t, float32(20), pos.Y)
	info.SetWindowTitle("changed")
	info.SetFocus(callbacks.FocusOnNode(2))
	info.StopPropagation()
	assert.Equal(t, "app", current.Title)
	assert.Equal(t, "changed", modified.Title)
	target, ok := info.FocusTarget().Get()
	require.True(t, ok)
	assert.Equal(t, callbacks.NodeID(2), target.Node)
	assert.True(t, info.IsPropagationStopped())
	assert.False(t, info.IsDefaultPrevented())
}

func TestLayoutInfoStops(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.events")
	defer teardown()
	//
	li := callbacks.NewLayoutInfo(callbacks.DefaultWindowSize(), nil)
	assert.True(t, li.WindowWidthLargerThan(600))
	assert.False(t, li.WindowHeightLargerThan(720))
	assert.Equal(t, []float32{600}, li.Stops().Widths)
	assert.Equal(t, []float32{720}, li.Stops().Heights)
}

func TestTimerPolling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.events")
	defer teardown()
	//
	start := time.Date(2022, 1, 1, 12, 0, 0, 0, time.UTC)
	data := callbacks.NewRefAny(counter{})
	tick := func(data *callbacks.RefAny, info *callbacks.TimerCallbackInfo) callbacks.TimerCallbackReturn {
		callbacks.BorrowMut(data, func(c *counter) { c.N++ })
		return callbacks.TimerCallbackReturn{ShouldUpdate: callbacks.Redraw}
	}
	timer := callbacks.NewTimer(data, tick, start).
		WithDelay(10 * time.Millisecond).
		WithInterval(20 * time.Millisecond).
		WithTimeout(100 * time.Millisecond)
	assert.False(t, timer.ShouldRun(start))
	assert.True(t, timer.ShouldRun(start.Add(10*time.Millisecond)))
	ret := timer.Invoke(start.Add(10 * time.Millisecond))
	assert.Equal(t, callbacks.Redraw, ret.ShouldUpdate)
	ret = timer.Invoke(start.Add(15 * time.Millisecond))
	assert.Equal(t, callbacks.DontRedraw, ret.ShouldUpdate, "interval has not elapsed")
	timer.Invoke(start.Add(30 * time.Millisecond))
	assert.Equal(t, 2, timer.RunCount)
	assert.True(t, timer.IsExpired(start.Add(100*time.Millisecond)))
	ret = timer.Invoke(start.Add(120 * time.Millisecond))
	assert.Equal(t, callbacks.TimerTerminate, ret.ShouldTerminate)
	c, _ := callbacks.Downcast[counter](data).Get()
	assert.Equal(t, 2, c.N)
}

func TestThreadJoin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.events")
	defer teardown()
	//
	th := callbacks.Spawn(func() (int, error) { return 42, nil })
	v, err := th.Join().Get()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.True(t, th.IsFinished())
	_, err = th.Join().Get()
	assert.True(t, errors.Is(err, callbacks.ThreadJoinError))
	//
	bad := callbacks.Spawn(func() (int, error) { panic("boom") })
	_, err = bad.Join().Get()
	assert.True(t, errors.Is(err, callbacks.ThreadJoinError))
}

func TestTask(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "guistyle.events")
	defer teardown()
	//
	data := callbacks.NewRefAny(counter{})
	task := callbacks.NewTask(data, func(data *callbacks.RefAny) {
		callbacks.BorrowMut(data, func(c *counter) { c.N = 99 })
	})
	r, err := task.Join().Get()
	require.NoError(t, err)
	assert.True(t, r.CanBeSharedMut())
	c, _ := callbacks.Downcast[counter](r).Get()
	assert.Equal(t, 99, c.N)
	//
	failing := callbacks.NewTask(data, func(*callbacks.RefAny) { panic("boom") })
	_, err = failing.Join().Get()
	assert.True(t, errors.Is(err, callbacks.MutexIntoInnerError))
	assert.True(t, data.IsValid())
}
