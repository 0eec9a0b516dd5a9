package yieldtimer

import (
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
)

func TestTickerDoesNotReportProgressBeforeIntervalElapses(t *testing.T) {
	mock := quartz.NewMock(t)
	var calls int
	timer := New(mock, func(uint64) { calls++ })

	for i := 0; i < Stride*3; i++ {
		timer.Tick()
	}
	assert.Equal(t, 0, calls, "no wall-clock time has passed yet")
}

func TestTickerReportsProgressAfterIntervalElapses(t *testing.T) {
	mock := quartz.NewMock(t)
	var calls int
	timer := New(mock, func(uint64) { calls++ })

	for i := 0; i < Stride-1; i++ {
		timer.Tick()
	}
	mock.Advance(ProgressEvery)
	timer.Tick()
	assert.Equal(t, 1, calls)
}

func TestTickerOnlyChecksClockEveryStrideIterations(t *testing.T) {
	mock := quartz.NewMock(t)
	var calls int
	timer := New(mock, func(uint64) { calls++ })

	mock.Advance(ProgressEvery * 10)
	for i := 0; i < Stride-1; i++ {
		timer.Tick()
	}
	assert.Equal(t, 0, calls, "progress must not fire until Stride iterations have passed")

	timer.Tick()
	assert.Equal(t, 1, calls)
}
