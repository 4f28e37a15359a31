package main

import (
	"fmt"

	"github.com/meoying/chexpr"
	"github.com/meoying/chexpr/builder"
	"github.com/spf13/pflag"
)

// 演示用:对指定表的指定列构造一组典型聚合并打印渲染结果。
func main() {
	table := pflag.String("table", "orders", "表名")
	column := pflag.String("column", "amount", "聚合列名")
	cond := pflag.String("cond", "paid", "条件聚合使用的布尔列名")
	pflag.Parse()

	amount := chexpr.NewColumn[float64](*column)
	paid := chexpr.NewColumn[bool](*cond)

	p95, err := chexpr.NewQuantileTDigest(amount, 0.95)
	if err != nil {
		panic(fmt.Errorf("构造quantile失败: %w", err))
	}
	sel, err := builder.BuildSelect(
		chexpr.NewCount(),
		chexpr.If(chexpr.NewSum(amount), paid),
		chexpr.NewAvg(amount),
		p95,
	)
	if err != nil {
		panic(fmt.Errorf("渲染失败: %w", err))
	}
	fmt.Printf("SELECT %s FROM %s\n", sel, *table)
}
