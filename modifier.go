package chexpr

// SumModifier 选择 sum 的溢出处理方式。
type SumModifier uint8

const (
	SumSimple SumModifier = iota
	SumWithOverflow
)

func (m SumModifier) String() string {
	switch m {
	case SumSimple:
		return "Simple"
	case SumWithOverflow:
		return "WithOverflow"
	default:
		return "Unknown"
	}
}

// UniqModifier 选择 uniq 的基数统计算法。
type UniqModifier uint8

const (
	UniqSimple UniqModifier = iota
	UniqExactModifier
	UniqCombinedModifier
	UniqHLL12Modifier
)

func (m UniqModifier) String() string {
	switch m {
	case UniqSimple:
		return "Simple"
	case UniqExactModifier:
		return "Exact"
	case UniqCombinedModifier:
		return "Combined"
	case UniqHLL12Modifier:
		return "HLL12"
	default:
		return "Unknown"
	}
}

// AnyModifier 选择 any 取值的策略。
type AnyModifier uint8

const (
	AnySimple AnyModifier = iota
	AnyLastModifier
	AnyHeavyModifier
)

func (m AnyModifier) String() string {
	switch m {
	case AnySimple:
		return "Simple"
	case AnyLastModifier:
		return "Last"
	case AnyHeavyModifier:
		return "Heavy"
	default:
		return "Unknown"
	}
}
