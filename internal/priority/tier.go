package priority

// Tier 任务优先级档位（分类结果，不是状态机）
type Tier string

const (
	TierTurnoverConflict Tier = "TURNOVER_CONFLICT" // 同日退房+入住
	TierArrival          Tier = "ARRIVAL"
	TierDeparture        Tier = "DEPARTURE"
	TierInHouse          Tier = "IN_HOUSE"
	TierDNDRecheck       Tier = "DND_RECHECK"
)

// tierOrdinals 排序用序号，数值越小越紧急
// 独立声明，不依赖常量的声明顺序
var tierOrdinals = map[Tier]int{
	TierTurnoverConflict: 1,
	TierArrival:          2,
	TierDeparture:        3,
	TierInHouse:          4,
	TierDNDRecheck:       5,
}

// Ordinal 返回档位序号；未知档位排在最后
func (t Tier) Ordinal() int {
	if o, ok := tierOrdinals[t]; ok {
		return o
	}
	return len(tierOrdinals) + 1
}

// IsCritical 最紧急的两个档位（冲突和到达）
func (t Tier) IsCritical() bool {
	return t == TierTurnoverConflict || t == TierArrival
}

// Valid 是否为已知档位
func (t Tier) Valid() bool {
	_, ok := tierOrdinals[t]
	return ok
}
