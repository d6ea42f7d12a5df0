// Package underwriting provides the financial engine of commercial real
// estate deal underwriting. It is stateless: every operation is a pure
// function of its inputs, so results are reproducible and easy to audit.
//
// The core functionalities include:
//   - Income: converting a rent roll of leases into an annual revenue
//     schedule, with escalations and rollover to market rent.
//   - Cost: rolling up a development budget with per-category contingency.
//   - Pro Forma: sizing the senior loan, projecting the annual operations and
//     the exit, and computing the return metrics and a go/no-go
//     recommendation.
//   - Debt: comparing up to four loan structures, including prepayment
//     penalties, over the hold period.
//   - Equity: splitting the levered cash flows between the limited and the
//     general partners through a preferred return, a catch-up and promote
//     tiers.
//   - Tax: depreciation schedules, cost segregation estimates and 1031
//     exchange deadlines.
//
// Underwrite runs the whole pipeline on a DealInput, RunScenarios runs it on
// variants of a deal concurrently, and RunSensitivity varies one assumption
// of a pro forma.
//
// This package serves as the foundational logic for the `uw` command-line
// tool.
package underwriting
