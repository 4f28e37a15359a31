package chexpr

import "github.com/pkg/errors"

var (
	ErrQuantileLevelOutOfRange = errors.New("chexpr: quantile level 超出 [0, 1] 区间")
	ErrMedianLevelOutOfRange   = errors.New("chexpr: median level 超出 (0, 1) 区间")
	ErrEmptyLevelList          = errors.New("chexpr: levels 列表为空")
	ErrInvalidIntervalStep     = errors.New("chexpr: interval step 必须为正")
	ErrInvalidIntervalRange    = errors.New("chexpr: interval 的结束时间早于开始时间")
)
