/*
 * @module service/report/decision
 * @description 决策表求值器，把各报表的分级业务规则表达为可独立测试的数据结构
 * @architecture 分层架构 - 报表核心层
 * @documentReference dev_docs/requirements.md
 * @stateFlow 规则配置 -> 构造校验 -> 逐行求值
 * @rules 规则按顺序求值且首个命中生效；缺少默认标签属于配置错误，必须在构造时拒绝
 * @dependencies errors, fmt
 * @refs service/report/stats.go
 */

package report

import (
	"errors"
	"fmt"
)

// 决策条件支持的比较运算符
const (
	OpGTE = "gte"
	OpGT  = "gt"
	OpLTE = "lte"
	OpLT  = "lt"
	OpEQ  = "eq"
)

// Condition 决策条件，对某个维度值做阈值比较
type Condition struct {
	Dimension string  `json:"dimension"`
	Operator  string  `json:"operator"`
	Threshold float64 `json:"threshold"`
}

// DecisionRule 决策规则，全部条件同时满足（AND）时命中对应标签
type DecisionRule struct {
	Conditions []Condition `json:"conditions"`
	Label      string      `json:"label"`
}

// DecisionTable 决策表，规则有序、首个命中生效、必须带默认标签
type DecisionTable struct {
	rules        []DecisionRule
	defaultLabel string
}

// NewDecisionTable 创建决策表并校验配置，缺少默认标签或运算符非法时返回错误
func NewDecisionTable(rules []DecisionRule, defaultLabel string) (*DecisionTable, error) {
	if defaultLabel == "" {
		return nil, errors.New("决策表必须提供默认标签")
	}
	for i, rule := range rules {
		if rule.Label == "" {
			return nil, fmt.Errorf("第 %d 条决策规则缺少标签", i+1)
		}
		for _, cond := range rule.Conditions {
			switch cond.Operator {
			case OpGTE, OpGT, OpLTE, OpLT, OpEQ:
			default:
				return nil, fmt.Errorf("第 %d 条决策规则包含不支持的比较运算符: %s", i+1, cond.Operator)
			}
		}
	}
	return &DecisionTable{rules: rules, defaultLabel: defaultLabel}, nil
}

// mustDecisionTable 构造固定业务规则的决策表，配置错误时直接 panic
// 仅用于包内写死的规则，运行期构造的决策表必须用 NewDecisionTable 并处理错误
func mustDecisionTable(rules []DecisionRule, defaultLabel string) *DecisionTable {
	table, err := NewDecisionTable(rules, defaultLabel)
	if err != nil {
		panic(fmt.Sprintf("内置决策表配置错误: %v", err))
	}
	return table
}

// Evaluate 按顺序对一组维度值求值，返回首个命中规则的标签，无命中时返回默认标签。
// 条件引用的维度缺失（值为 nil 或不存在）时该条件不成立。
func (t *DecisionTable) Evaluate(dims map[string]*float64) string {
	for _, rule := range t.rules {
		if matchRule(rule, dims) {
			return rule.Label
		}
	}
	return t.defaultLabel
}

// DefaultLabel 返回默认标签
func (t *DecisionTable) DefaultLabel() string {
	return t.defaultLabel
}

// matchRule 判断一条规则的全部条件是否成立
func matchRule(rule DecisionRule, dims map[string]*float64) bool {
	for _, cond := range rule.Conditions {
		v, ok := dims[cond.Dimension]
		if !ok || v == nil {
			return false
		}
		if !compare(*v, cond.Operator, cond.Threshold) {
			return false
		}
	}
	return true
}

// compare 执行单个阈值比较
func compare(value float64, operator string, threshold float64) bool {
	switch operator {
	case OpGTE:
		return value >= threshold
	case OpGT:
		return value > threshold
	case OpLTE:
		return value <= threshold
	case OpLT:
		return value < threshold
	case OpEQ:
		return value == threshold
	default:
		return false
	}
}
