package chexpr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInterval(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	testcases := []struct {
		name    string
		start   time.Time
		end     time.Time
		step    time.Duration
		wantErr error
	}{
		{
			name:  "按小时分桶",
			start: start,
			end:   end,
			step:  time.Hour,
		},
		{
			name:    "step为零",
			start:   start,
			end:     end,
			step:    0,
			wantErr: ErrInvalidIntervalStep,
		},
		{
			name:    "step为负",
			start:   start,
			end:     end,
			step:    -time.Minute,
			wantErr: ErrInvalidIntervalStep,
		},
		{
			name:    "结束早于开始",
			start:   end,
			end:     start,
			step:    time.Hour,
			wantErr: ErrInvalidIntervalRange,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			interval, err := NewInterval(tc.start, tc.end, tc.step)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(3600), interval.StepSeconds())
			assert.Equal(t, int64(24), interval.Buckets())
		})
	}
}

func TestNewTimeSeries(t *testing.T) {
	ts := NewColumn[uint32]("ts")
	created := NewColumn[uint32]("created_at")
	interval, err := NewInterval(
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		time.Hour,
	)
	require.NoError(t, err)

	t.Run("缺省对目标列分桶", func(t *testing.T) {
		var f AggregateFunction[int64] = NewTimeSeries(ts, interval)
		info, ok := f.Info().(TimeSeriesInfo)
		require.True(t, ok)
		assert.Nil(t, info.DateColumn)
		assert.Equal(t, "ts", info.Column.Name())
	})
	t.Run("指定日期列", func(t *testing.T) {
		f := NewTimeSeries(ts, interval, created)
		info, ok := f.Info().(TimeSeriesInfo)
		require.True(t, ok)
		assert.Equal(t, "created_at", info.DateColumn.Name())
	})
}
