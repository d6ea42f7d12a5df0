package underwriting

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrInvalidWaterfall is returned by WaterfallStructure.Validate.
var ErrInvalidWaterfall = errors.New("invalid waterfall structure")

// PromoteTier splits the cash distributed once the LP has reached
// HurdleIRRPct. LPDistributionPct and GPDistributionPct add up to 100.
type PromoteTier struct {
	HurdleIRRPct      Percent `json:"hurdleIrrPct"`
	LPDistributionPct Percent `json:"lpDistributionPct"`
	GPDistributionPct Percent `json:"gpDistributionPct"`
}

// Validate checks that the tier distributes all the cash.
func (t PromoteTier) Validate() error {
	if !(t.LPDistributionPct + t.GPDistributionPct).Equal(100) {
		return fmt.Errorf("tier at %s hurdle splits %s to LP and %s to GP, want a total of 100%%", t.HurdleIRRPct, t.LPDistributionPct, t.GPDistributionPct)
	}
	return nil
}

// WaterfallStructure is the capital structure and promote of a deal.
type WaterfallStructure struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	TotalEquity        float64       `json:"totalEquity"`
	GPCoinvestPct      Percent       `json:"gpCoinvestPct"`
	PreferredReturnPct Percent       `json:"preferredReturnPct"` // compounding annually
	CatchUpPct         Percent       `json:"catchUpPct"`         // GP share of profit after catch-up; 0 disables it
	Tiers              []PromoteTier `json:"tiers"`
}

// Validate checks every tier, and that hurdles strictly increase.
func (w WaterfallStructure) Validate() error {
	var errs []error
	if w.GPCoinvestPct < 0 || w.GPCoinvestPct > 100 {
		errs = append(errs, fmt.Errorf("GP co-invest of %s is not between 0 and 100%%", w.GPCoinvestPct))
	}
	if w.CatchUpPct < 0 || w.CatchUpPct >= 100 {
		errs = append(errs, fmt.Errorf("catch-up of %s is not between 0 and 100%%", w.CatchUpPct))
	}
	for i, t := range w.Tiers {
		if err := t.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("tier %d: %w", i+1, err))
		}
		if i > 0 && t.HurdleIRRPct <= w.Tiers[i-1].HurdleIRRPct {
			errs = append(errs, fmt.Errorf("tier %d: hurdle %s is not above %s", i+1, t.HurdleIRRPct, w.Tiers[i-1].HurdleIRRPct))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w %q: %w", ErrInvalidWaterfall, w.Name, errors.Join(errs...))
	}
	return nil
}

// WaterfallInput is the cash to distribute: one operating cash flow per year,
// the exit proceeds being added to the final year.
type WaterfallInput struct {
	Structure    WaterfallStructure `json:"structure"`
	CashFlows    []float64          `json:"cashFlows"`
	ExitProceeds float64            `json:"exitProceeds"`
}

// WaterfallInputFromProForma distributes the levered cash flows of a pro
// forma. A structure without equity invests the equity the pro forma requires.
func WaterfallInputFromProForma(s WaterfallStructure, pf ProFormaResults) WaterfallInput {
	if s.TotalEquity == 0 {
		s.TotalEquity = pf.EquityRequired
	}
	return WaterfallInput{
		Structure:    s,
		CashFlows:    pf.OperatingCashFlows(),
		ExitProceeds: pf.Exit.NetExitProceeds,
	}
}

// Steps of the waterfall, used as the label of the last step reached in a year.
const (
	stepNone            = "none"
	stepReturnOfCapital = "return of capital"
	stepPreferred       = "preferred return"
	stepCatchUp         = "catch-up"
	stepProRata         = "pro rata"
)

func tierLabel(i int, t PromoteTier) string {
	return fmt.Sprintf("tier %d (%s hurdle)", i+1, t.HurdleIRRPct)
}

// WaterfallYear is one year of distributions.
type WaterfallYear struct {
	Year            int      `json:"year"`
	TotalCashFlow   float64  `json:"totalCashFlow"`
	ReturnOfCapital float64  `json:"returnOfCapital"`
	PreferredReturn float64  `json:"preferredReturn"`
	CatchUp         float64  `json:"catchUp"`
	Residual        float64  `json:"residual"`
	LPDistribution  float64  `json:"lpDistribution"`
	GPDistribution  float64  `json:"gpDistribution"`
	LPCumulative    float64  `json:"lpCumulative"`
	GPCumulative    float64  `json:"gpCumulative"`
	LPIRR           *float64 `json:"lpIrr"` // trailing, nil until the LP has been paid
	ActiveTier      string   `json:"activeTier"`
}

// WaterfallResults is the split of the deal cash between LP and GP.
type WaterfallResults struct {
	LPEquity         float64         `json:"lpEquity"`
	GPEquity         float64         `json:"gpEquity"`
	LPIRR            *float64        `json:"lpIrr"`
	GPIRR            *float64        `json:"gpIrr"`
	LPMultiple       float64         `json:"lpMultiple"`
	GPMultiple       float64         `json:"gpMultiple"`
	LPTotalReturn    float64         `json:"lpTotalReturn"`
	GPTotalReturn    float64         `json:"gpTotalReturn"`
	LPProfit         float64         `json:"lpProfit"`
	GPProfit         float64         `json:"gpProfit"`
	LPProfitSharePct Percent         `json:"lpProfitSharePct"`
	GPProfitSharePct Percent         `json:"gpProfitSharePct"`
	Years            []WaterfallYear `json:"years"`
}

// partner is the running account of the LP or the GP.
type partner struct {
	capital float64 // unreturned
	pref    float64 // accrued and unpaid
	profit  float64 // distributed above the return of capital
	flows   []float64
}

func (p *partner) pay(amount float64) { p.flows[len(p.flows)-1] += amount }

func (p *partner) distributed() float64 {
	var s float64
	for _, f := range p.flows[1:] {
		s += f
	}
	return s
}

// CalculateWaterfall distributes each year's cash in order: the return of
// capital then the accrued preferred return, both pro rata to the partners'
// equity; the GP catch-up; then the residual split by the promote tier the LP
// has reached. Years without positive cash distribute nothing.
func CalculateWaterfall(in WaterfallInput) WaterfallResults {
	s := in.Structure
	gpShare := s.GPCoinvestPct.Rate()
	lp := &partner{capital: s.TotalEquity * (1 - gpShare)}
	gp := &partner{capital: s.TotalEquity * gpShare}
	lp.flows = []float64{-lp.capital}
	gp.flows = []float64{-gp.capital}

	tiers := slices.Clone(s.Tiers)
	slices.SortStableFunc(tiers, func(a, b PromoteTier) int {
		switch {
		case a.HurdleIRRPct < b.HurdleIRRPct:
			return -1
		case a.HurdleIRRPct > b.HurdleIRRPct:
			return 1
		}
		return 0
	})

	res := WaterfallResults{
		LPEquity: lp.capital,
		GPEquity: gp.capital,
		Years:    make([]WaterfallYear, 0, len(in.CashFlows)),
	}
	for i, cf := range in.CashFlows {
		if i == len(in.CashFlows)-1 {
			cf += in.ExitProceeds
		}
		lp.flows = append(lp.flows, 0)
		gp.flows = append(gp.flows, 0)
		for _, p := range []*partner{lp, gp} {
			p.pref += (p.capital + p.pref) * s.PreferredReturnPct.Rate()
		}

		y := WaterfallYear{Year: i + 1, TotalCashFlow: cf, ActiveTier: stepNone}
		if cash := cf; cash > 0 {
			cash = y.returnCapital(lp, gp, cash)
			cash = y.distributePreferred(lp, gp, cash)
			cash = y.catchUp(lp, gp, s.CatchUpPct.Rate(), cash)
			y.distributeResidual(lp, gp, tiers, gpShare, cash)
		}

		y.LPDistribution = lp.flows[len(lp.flows)-1]
		y.GPDistribution = gp.flows[len(gp.flows)-1]
		y.LPCumulative = lp.distributed()
		y.GPCumulative = gp.distributed()
		y.LPIRR = irrPtr(lp.flows)
		res.Years = append(res.Years, y)
	}

	res.LPIRR = irrPtr(lp.flows)
	res.GPIRR = irrPtr(gp.flows)
	res.LPTotalReturn = lp.distributed()
	res.GPTotalReturn = gp.distributed()
	res.LPMultiple = EquityMultiple(res.LPTotalReturn, res.LPEquity)
	res.GPMultiple = EquityMultiple(res.GPTotalReturn, res.GPEquity)
	res.LPProfit = res.LPTotalReturn - res.LPEquity
	res.GPProfit = res.GPTotalReturn - res.GPEquity
	if total := res.LPProfit + res.GPProfit; total > 0 {
		res.LPProfitSharePct = PercentOf(res.LPProfit / total)
		res.GPProfitSharePct = PercentOf(res.GPProfit / total)
	}
	return res
}

// splitProRata pays amount to lp and gp in proportion to a and b.
func splitProRata(lp, gp *partner, amount, a, b float64) (toLP, toGP float64) {
	if a+b <= 0 {
		return 0, 0
	}
	toLP = amount * a / (a + b)
	toGP = amount - toLP
	lp.pay(toLP)
	gp.pay(toGP)
	return toLP, toGP
}

func (y *WaterfallYear) returnCapital(lp, gp *partner, cash float64) float64 {
	due := lp.capital + gp.capital
	if due <= 0 || cash <= 0 {
		return cash
	}
	paid := math.Min(cash, due)
	toLP, toGP := splitProRata(lp, gp, paid, lp.capital, gp.capital)
	lp.capital -= toLP
	gp.capital -= toGP
	y.ReturnOfCapital = paid
	y.ActiveTier = stepReturnOfCapital
	return cash - paid
}

func (y *WaterfallYear) distributePreferred(lp, gp *partner, cash float64) float64 {
	due := lp.pref + gp.pref
	if due <= 0 || cash <= 0 {
		return cash
	}
	paid := math.Min(cash, due)
	toLP, toGP := splitProRata(lp, gp, paid, lp.pref, gp.pref)
	lp.pref -= toLP
	gp.pref -= toGP
	lp.profit += toLP
	gp.profit += toGP
	y.PreferredReturn = paid
	y.ActiveTier = stepPreferred
	return cash - paid
}

// catchUp pays the GP alone until its share of the profit distributed so far
// reaches share.
func (y *WaterfallYear) catchUp(lp, gp *partner, share, cash float64) float64 {
	if share <= 0 || share >= 1 || cash <= 0 {
		return cash
	}
	// (gp + x) = share * (lp + gp + x)
	owed := (share*(lp.profit+gp.profit) - gp.profit) / (1 - share)
	if owed <= 0 {
		return cash
	}
	paid := math.Min(cash, owed)
	gp.pay(paid)
	gp.profit += paid
	y.CatchUp = paid
	y.ActiveTier = stepCatchUp
	return cash - paid
}

// distributeResidual splits cash by promote tier. The cash is chunked within
// the year: the LP amount that lifts the LP IRR to the next hurdle is
// computed in closed form, the remainder moving to the next tier.
func (y *WaterfallYear) distributeResidual(lp, gp *partner, tiers []PromoteTier, gpShare, cash float64) {
	if cash <= 0 {
		return
	}
	y.Residual = cash
	if len(tiers) == 0 {
		toLP, toGP := cash*(1-gpShare), cash*gpShare
		lp.pay(toLP)
		gp.pay(toGP)
		lp.profit += toLP
		gp.profit += toGP
		y.ActiveTier = stepProRata
		return
	}

	t := len(lp.flows) - 1 // years since the investment
	k := activeTier(lp.flows, tiers)
	for cash > 0 {
		tier := tiers[k]
		y.ActiveTier = tierLabel(k, tier)
		last := k == len(tiers)-1
		chunk := cash
		if !last && tier.LPDistributionPct > 0 {
			h := tiers[k+1].HurdleIRRPct.Rate()
			toHurdle := -NPV(h, lp.flows) * math.Pow(1+h, float64(t))
			chunk = math.Min(cash, math.Max(0, toHurdle)/tier.LPDistributionPct.Rate())
		}
		toLP := chunk * tier.LPDistributionPct.Rate()
		toGP := chunk - toLP
		lp.pay(toLP)
		gp.pay(toGP)
		lp.profit += toLP
		gp.profit += toGP
		cash -= chunk
		if last {
			return
		}
		k++
	}
}

// activeTier returns the highest tier whose hurdle the LP flows reach, the
// first tier when none is reached. LP flows are an outflow followed by
// inflows, so reaching a hurdle is a non-negative NPV at that rate.
func activeTier(flows []float64, tiers []PromoteTier) int {
	k := 0
	for i, t := range tiers {
		if NPV(t.HurdleIRRPct.Rate(), flows) >= 0 {
			k = i
		}
	}
	return k
}
