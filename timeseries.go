package chexpr

import (
	"fmt"
	"time"
)

// Interval 描述时间序列聚合的分桶区间,Step 是单个桶的宽度。
type Interval struct {
	Start time.Time
	End   time.Time
	Step  time.Duration
}

func NewInterval(start, end time.Time, step time.Duration) (Interval, error) {
	if step <= 0 {
		return Interval{}, fmt.Errorf("%w: %v", ErrInvalidIntervalStep, step)
	}
	if end.Before(start) {
		return Interval{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidIntervalRange, start, end)
	}
	return Interval{Start: start, End: end, Step: step}, nil
}

// StepSeconds 返回桶宽的秒数,渲染器用它生成分桶表达式。
func (i Interval) StepSeconds() int64 {
	return int64(i.Step / time.Second)
}

// Buckets 返回区间内完整桶的个数。
func (i Interval) Buckets() int64 {
	if i.Step <= 0 {
		return 0
	}
	return int64(i.End.Sub(i.Start) / i.Step)
}

// NewTimeSeries 把整数时间戳列分到 interval 的某个桶里,结果是桶的键。
// dateColumn 只取第一个,缺省时直接对 col 分桶。
func NewTimeSeries[T IntegerElement](col TableColumn[T], interval Interval, dateColumn ...Column) AggregateFunction[int64] {
	info := TimeSeriesInfo{Column: col, Interval: interval}
	if len(dateColumn) > 0 {
		info.DateColumn = dateColumn[0]
	}
	return AggregateFunction[int64]{target: col, info: info}
}
