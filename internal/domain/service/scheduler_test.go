package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_newScheduler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	announcer := mocks.NewMockAnnouncerService(ctrl)
	s := newScheduler(announcer, 10, 0, time.UTC)

	require.NotNil(t, s)
	assert.Equal(t, 10, s.hour)
	assert.Equal(t, 0, s.minute)
	assert.NotNil(t, s.stopChan)
	assert.False(t, s.running)
}

func Test_nextRunTime(t *testing.T) {
	chicago, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	type args struct {
		now    time.Time
		hour   int
		minute int
	}
	tests := []struct {
		name string
		args args
		want time.Time
	}{
		{
			name: "Should target today if the time hasn't passed",
			args: args{
				now:  time.Date(2024, 1, 17, 8, 30, 0, 0, time.UTC),
				hour: 10, minute: 0,
			},
			want: time.Date(2024, 1, 17, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "Should target tomorrow if the time has passed",
			args: args{
				now:  time.Date(2024, 1, 17, 10, 0, 1, 0, time.UTC),
				hour: 10, minute: 0,
			},
			want: time.Date(2024, 1, 18, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "Should target tomorrow at the exact target instant",
			args: args{
				now:  time.Date(2024, 1, 17, 10, 0, 0, 0, time.UTC),
				hour: 10, minute: 0,
			},
			want: time.Date(2024, 1, 18, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "Should compute the target in the configured zone",
			args: args{
				now:  time.Date(2024, 1, 17, 8, 30, 0, 0, chicago),
				hour: 9, minute: 15,
			},
			want: time.Date(2024, 1, 17, 9, 15, 0, 0, chicago),
		},
		{
			name: "Should roll over a month boundary",
			args: args{
				now:  time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC),
				hour: 10, minute: 0,
			},
			want: time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextRunTime(tt.args.now, tt.args.hour, tt.args.minute)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_scheduler_runOnce_isolatesFailures(t *testing.T) {
	t.Run("Should swallow a poll cycle error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		announcer := mocks.NewMockAnnouncerService(ctrl)
		announcer.EXPECT().RunPollCycle(gomock.Any()).
			Return(errors.New("feed unreachable")).Times(1)

		s := newScheduler(announcer, 10, 0, time.UTC)

		assert.NotPanics(t, func() { s.runOnce() })
	})

	t.Run("Should recover a poll cycle panic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		announcer := mocks.NewMockAnnouncerService(ctrl)
		announcer.EXPECT().RunPollCycle(gomock.Any()).
			DoAndReturn(func(context.Context) error { panic("boom") }).Times(1)

		s := newScheduler(announcer, 10, 0, time.UTC)

		assert.NotPanics(t, func() { s.runOnce() })
	})
}

func Test_scheduler_startStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	announcer := mocks.NewMockAnnouncerService(ctrl)
	s := newScheduler(announcer, 10, 0, time.UTC)

	s.Start()
	assert.True(t, s.running)
	s.Start() // idempotent

	s.Stop()
	assert.False(t, s.running)
	s.Stop() // idempotent
}
