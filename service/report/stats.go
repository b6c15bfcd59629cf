/*
 * @module service/report/stats
 * @description 共享统计原语：分位分桶、顺序百分位、连续分位数、加权合成得分与安全除法
 * @architecture 分层架构 - 报表核心层
 * @documentReference dev_docs/requirements.md
 * @stateFlow 聚合 -> 分桶/百分位 -> 分级/打分 的流水线由各报表复用
 * @rules 未定义度量以 *float64 的 nil 表示，排除出排序总体但不报错；空总体返回空结果
 * @dependencies sort, math
 * @refs service/report/decision.go
 */

package report

import (
	"fmt"
	"math"
	"sort"
)

// Float 构造 float64 指针
func Float(v float64) *float64 {
	return &v
}

// SafeDiv 安全除法，分母为 0 时返回 nil 表示度量未定义
func SafeDiv(num, den float64) *float64 {
	if den == 0 {
		return nil
	}
	v := num / den
	return &v
}

// QuantileBuckets 把有定义的度量值按升序划分为 k 个桶，返回与输入对齐的桶编号。
// 编号 1..k 按位置分配，n mod k 的余数分给靠前的桶，桶间行数相差不超过 1。
// 编号 0 表示该行度量未定义、未参与分桶。排序为稳定排序，相等值按输入顺序。
func QuantileBuckets(values []*float64, k int) []int {
	buckets := make([]int, len(values))
	if k <= 0 {
		return buckets
	}

	idx := make([]int, 0, len(values))
	for i, v := range values {
		if v != nil {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return *values[idx[a]] < *values[idx[b]]
	})

	n := len(idx)
	if n == 0 {
		return buckets
	}

	base, rem := n/k, n%k
	pos := 0
	for b := 1; b <= k; b++ {
		size := base
		if b <= rem {
			size++
		}
		for j := 0; j < size; j++ {
			buckets[idx[pos]] = b
			pos++
		}
	}
	return buckets
}

// PercentileRanks 顺序百分位：有定义的度量值按升序稳定排序后，
// 第 i 个位置的百分位为 i/(n-1)，相等值共享首次出现位置的百分位。
// 返回值域 [0,1] 并与输入对齐，未定义度量返回 nil；n=1 时百分位为 0。
func PercentileRanks(values []*float64) []*float64 {
	out := make([]*float64, len(values))

	idx := make([]int, 0, len(values))
	for i, v := range values {
		if v != nil {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return *values[idx[a]] < *values[idx[b]]
	})

	n := len(idx)
	if n == 0 {
		return out
	}
	if n == 1 {
		out[idx[0]] = Float(0)
		return out
	}

	prevVal := math.NaN()
	prevPct := 0.0
	for i, id := range idx {
		v := *values[id]
		pct := float64(i) / float64(n-1)
		if i > 0 && v == prevVal {
			pct = prevPct
		}
		out[id] = Float(pct)
		prevVal, prevPct = v, pct
	}
	return out
}

// ContinuousQuantile 连续分位数，线性插值，对应 SQL 的 PERCENTILE_CONT。
// 空总体返回 nil。
func ContinuousQuantile(values []float64, p float64) *float64 {
	n := len(values)
	if n == 0 {
		return nil
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	if p <= 0 {
		return Float(sorted[0])
	}
	if p >= 1 {
		return Float(sorted[n-1])
	}

	h := float64(n-1) * p
	lo := int(math.Floor(h))
	frac := h - float64(lo)
	return Float(sorted[lo] + frac*(sorted[lo+1]-sorted[lo]))
}

// WeightedComposite 按固定权重合成各维度百分位得分。
// 权重必须非负且和为 1.0（容差 1e-9），结果限定在 [0,100] 并保留两位小数。
func WeightedComposite(percentiles, weights []float64) (float64, error) {
	if len(percentiles) != len(weights) {
		return 0, fmt.Errorf("维度数量与权重数量不一致: %d != %d", len(percentiles), len(weights))
	}

	var weightSum, score float64
	for i, w := range weights {
		if w < 0 {
			return 0, fmt.Errorf("合成权重不能为负数: %v", w)
		}
		weightSum += w
		score += w * percentiles[i]
	}
	if math.Abs(weightSum-1.0) > 1e-9 {
		return 0, fmt.Errorf("合成权重之和必须为 1.0，当前为 %v", weightSum)
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return Round2(score), nil
}

// Round2 保留两位小数
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// bucketDim 把桶编号转成决策维度值，0（未分桶）转为 nil 使相关条件不成立
func bucketDim(bucket int) *float64 {
	if bucket == 0 {
		return nil
	}
	return Float(float64(bucket))
}
