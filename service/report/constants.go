/*
 * @module service/report/constants
 * @description 报表固定业务常量，这些值是报表对消费方的输出契约，不得随实现调整
 * @architecture 分层架构 - 报表核心层
 * @documentReference dev_docs/requirements.md
 * @stateFlow 无状态
 * @rules 常量变更等同于报表契约变更，需要与报表消费方协商
 * @dependencies 无
 * @refs service/report
 */

package report

const (
	// HighMarginThreshold 高毛利品类的平均毛利阈值，品类平均毛利高于该值才纳入交叉销售分析
	HighMarginThreshold = 100.0

	// CrossSellMultiplier 交叉销售收入潜力乘数
	CrossSellMultiplier = 2.5

	// TotalExpansionBudget 扩张预算总额（美元）
	TotalExpansionBudget = 10000000.0
)

// ScorecardWeights 区域记分卡合成权重：增长、利润、客户规模、收入、效率
var ScorecardWeights = []float64{0.30, 0.25, 0.20, 0.15, 0.10}
