package underwriting

import (
	"fmt"
	"math"
	"strings"
)

// PropertyType keys the cost segregation allocation.
type PropertyType string

const (
	Multifamily   PropertyType = "multifamily"
	Office        PropertyType = "office"
	Retail        PropertyType = "retail"
	Industrial    PropertyType = "industrial"
	Hospitality   PropertyType = "hospitality"
	SelfStorage   PropertyType = "self_storage"
	MixedUse      PropertyType = "mixed_use"
	OtherProperty PropertyType = "other"
)

// ParsePropertyType parses a property type name. Spaces and dashes are read
// as underscores.
func ParsePropertyType(s string) (PropertyType, error) {
	name := strings.NewReplacer(" ", "_", "-", "_").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch t := PropertyType(name); t {
	case Multifamily, Office, Retail, Industrial, Hospitality, SelfStorage, MixedUse, OtherProperty:
		return t, nil
	}
	return OtherProperty, fmt.Errorf("unknown property type %q", s)
}

// Recovery periods of the cost segregation buckets.
const (
	PersonalPropertyYears      = 7
	LandImprovementsYears      = 15
	NonresidentialYears        = 39
	ResidentialRentalYears     = 27.5
	defaultCostSegTaxRate      = 37
	defaultCostSegDiscountRate = 8
)

// CostSegregationAllocation is the split of the depreciable basis into
// recovery buckets.
type CostSegregationAllocation struct {
	PersonalPropertyPct   Percent `json:"personalPropertyPct"`
	LandImprovementsPct   Percent `json:"landImprovementsPct"`
	BuildingPct           Percent `json:"buildingPct"`
	PersonalProperty      float64 `json:"personalProperty"`
	LandImprovements      float64 `json:"landImprovements"`
	Building              float64 `json:"building"`
	BuildingRecoveryYears float64 `json:"buildingRecoveryYears"`
}

// allocation returns the usual study outcome of a property type.
func allocation(t PropertyType) (personal, land, building Percent, recovery float64) {
	switch t {
	case Multifamily:
		return 20, 10, 70, ResidentialRentalYears
	case Office:
		return 15, 10, 75, NonresidentialYears
	case Retail:
		return 20, 15, 65, NonresidentialYears
	case Industrial:
		return 10, 10, 80, NonresidentialYears
	case Hospitality:
		return 30, 10, 60, NonresidentialYears
	case SelfStorage:
		return 15, 20, 65, NonresidentialYears
	default:
		return 15, 10, 75, NonresidentialYears
	}
}

// CostSegregationInput describes the building studied. Basis excludes land.
// Zero TaxRatePct and DiscountRatePct use 37% and 8%.
type CostSegregationInput struct {
	Basis                float64      `json:"basis"`
	PropertyType         PropertyType `json:"propertyType"`
	BonusDepreciationPct Percent      `json:"bonusDepreciationPct"` // of the personal property
	TaxRatePct           Percent      `json:"taxRatePct"`
	DiscountRatePct      Percent      `json:"discountRatePct"`
}

// CostSegregationEstimate compares depreciation with and without a study.
type CostSegregationEstimate struct {
	Allocation                   CostSegregationAllocation `json:"allocation"`
	BonusDepreciation            float64                   `json:"bonusDepreciation"`
	FirstYearDeduction           float64                   `json:"firstYearDeduction"`
	BaselineFirstYearDeduction   float64                   `json:"baselineFirstYearDeduction"`
	AdditionalFirstYearDeduction float64                   `json:"additionalFirstYearDeduction"`
	FirstYearTaxSavings          float64                   `json:"firstYearTaxSavings"`
	NPVBenefit                   float64                   `json:"npvBenefit"`
	TaxRatePct                   Percent                   `json:"taxRatePct"`
	DiscountRatePct              Percent                   `json:"discountRatePct"`
}

// CalculateCostSegregationEstimate estimates the benefit of a cost segregation
// study. The basis is allocated by property type; bonus depreciation applies
// to the personal property, the rest of which depreciates over 7 years, land
// improvements over 15 and the building over 39 or 27.5. The baseline
// depreciates the whole basis as building. The NPV benefit discounts the tax
// saved each year on the extra deduction.
func CalculateCostSegregationEstimate(in CostSegregationInput) CostSegregationEstimate {
	tax, discount := in.TaxRatePct, in.DiscountRatePct
	if tax == 0 {
		tax = defaultCostSegTaxRate
	}
	if discount == 0 {
		discount = defaultCostSegDiscountRate
	}
	pp, li, bl, recovery := allocation(in.PropertyType)
	alloc := CostSegregationAllocation{
		PersonalPropertyPct:   pp,
		LandImprovementsPct:   li,
		BuildingPct:           bl,
		PersonalProperty:      in.Basis * pp.Rate(),
		LandImprovements:      in.Basis * li.Rate(),
		Building:              in.Basis * bl.Rate(),
		BuildingRecoveryYears: recovery,
	}
	bonus := alloc.PersonalProperty * math.Min(1, math.Max(0, in.BonusDepreciationPct.Rate()))

	study := sumSchedules(
		depreciation(alloc.PersonalProperty-bonus, PersonalPropertyYears),
		depreciation(alloc.LandImprovements, LandImprovementsYears),
		depreciation(alloc.Building, recovery),
	)
	if len(study) == 0 {
		study = []float64{0}
	}
	study[0] += bonus
	baseline := depreciation(in.Basis, recovery)

	res := CostSegregationEstimate{
		Allocation:         alloc,
		BonusDepreciation:  bonus,
		FirstYearDeduction: study[0],
		TaxRatePct:         tax,
		DiscountRatePct:    discount,
	}
	if len(baseline) > 0 {
		res.BaselineFirstYearDeduction = baseline[0]
	}
	res.AdditionalFirstYearDeduction = res.FirstYearDeduction - res.BaselineFirstYearDeduction
	res.FirstYearTaxSavings = res.AdditionalFirstYearDeduction * tax.Rate()

	extra := sumSchedules(study, negate(baseline))
	for i, d := range extra {
		res.NPVBenefit += d * tax.Rate() / math.Pow(1+discount.Rate(), float64(i+1))
	}
	return res
}

func sumSchedules(schedules ...[]float64) []float64 {
	var n int
	for _, s := range schedules {
		n = max(n, len(s))
	}
	res := make([]float64, n)
	for _, s := range schedules {
		for i, v := range s {
			res[i] += v
		}
	}
	return res
}

func negate(s []float64) []float64 {
	res := make([]float64, len(s))
	for i, v := range s {
		res[i] = -v
	}
	return res
}
