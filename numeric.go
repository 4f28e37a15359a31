package chexpr

// AggregateElement 约束可以参与算术类聚合(sum/avg/sumMap 以及
// Deterministic 的 determinator 列)的列值类型。
type AggregateElement interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// IntegerElement 约束时间序列分桶列的值类型,分桶只对整数时间戳有意义。
type IntegerElement interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}
