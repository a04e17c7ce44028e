package query

import (
	"sort"

	"github.com/milldesk/milldesk-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CustomerStatistics summarizes a customer collection. TotalReceivable and
// TotalPayable are independent non-negative magnitudes; they are never
// netted against each other.
type CustomerStatistics struct {
	TotalCount      int             `json:"totalCount"`
	TotalReceivable decimal.Decimal `json:"totalReceivable"`
	TotalPayable    decimal.Decimal `json:"totalPayable"`
	DebtorCount     int             `json:"debtorCount"`
	AverageDebt     decimal.Decimal `json:"averageDebt"`
}

// CustomerStats folds customers into summary aggregates. An empty or
// debtor-free collection yields zero averages, never a division error.
func CustomerStats(customers []entity.Customer) CustomerStatistics {
	stats := CustomerStatistics{
		TotalCount:      len(customers),
		TotalReceivable: decimal.Zero,
		TotalPayable:    decimal.Zero,
		AverageDebt:     decimal.Zero,
	}
	for _, c := range customers {
		switch c.Balance.Sign() {
		case -1:
			stats.TotalReceivable = stats.TotalReceivable.Add(c.Balance.Neg())
			stats.DebtorCount++
		case 1:
			stats.TotalPayable = stats.TotalPayable.Add(c.Balance)
		}
	}
	if stats.DebtorCount > 0 {
		stats.AverageDebt = stats.TotalReceivable.DivRound(decimal.NewFromInt(int64(stats.DebtorCount)), 2)
	}
	return stats
}

// AgentCount is the number of suppliers delivering through one agent.
type AgentCount struct {
	Agent string `json:"agent"`
	Count int    `json:"count"`
}

// SupplierStatistics summarizes a supplier collection grouped by agent.
type SupplierStatistics struct {
	TotalCount int          `json:"totalCount"`
	AgentCount int          `json:"agentCount"`
	ByAgent    []AgentCount `json:"byAgent"`
}

// SupplierStats counts suppliers per buying agent, agents sorted by name.
func SupplierStats(suppliers []entity.Supplier) SupplierStatistics {
	counts := make(map[string]int)
	for _, s := range suppliers {
		counts[s.Agent]++
	}

	byAgent := make([]AgentCount, 0, len(counts))
	for agent, n := range counts {
		byAgent = append(byAgent, AgentCount{Agent: agent, Count: n})
	}
	sort.Slice(byAgent, func(i, j int) bool { return byAgent[i].Agent < byAgent[j].Agent })

	return SupplierStatistics{
		TotalCount: len(suppliers),
		AgentCount: len(counts),
		ByAgent:    byAgent,
	}
}
