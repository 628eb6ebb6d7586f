package engine

import (
	"fmt"
	"time"

	"github.com/sangkips/distributor-orders/internal/domain/entity"
)

const dayLayout = "2006-01-02"

// PromotionOptions carries configurable eligibility rules.
type PromotionOptions struct {
	// RequireSpecialSchemesFlag limits distributor-scoped schemes to
	// accounts with HasSpecialSchemes set.
	RequireSpecialSchemesFlag bool
}

// Freebie is the free quantity granted for one product.
type Freebie struct {
	Quantity int       `json:"quantity"`
	Source   ScopeKind `json:"source"`
}

// AppliedSchemeInfo records one scheme that granted free goods.
type AppliedSchemeInfo struct {
	Scheme       entity.Scheme `json:"scheme"`
	TimesApplied int           `json:"times_applied"`
	Source       ScopeKind     `json:"source"`
	FreeQuantity int           `json:"free_quantity"`
}

// SkippedScheme is a malformed scheme that was ignored.
type SkippedScheme struct {
	SchemeID string `json:"scheme_id"`
	Reason   string `json:"reason"`
}

// EligibleScheme is a scheme that applies to an account on a given day.
type EligibleScheme struct {
	Scheme entity.Scheme `json:"scheme"`
	Source ScopeKind     `json:"source"`
}

// PromotionResult is the outcome of matching schemes against a request.
type PromotionResult struct {
	Freebies map[string]Freebie
	Applied  []AppliedSchemeInfo
	Skipped  []SkippedScheme
}

// ActiveSchemes returns the schemes that apply to account on today, each
// once, in input order. Malformed schemes are reported, never fatal.
func ActiveSchemes(schemes []entity.Scheme, account *Account, catalog *Catalog, today string, opts PromotionOptions) ([]EligibleScheme, []SkippedScheme) {
	var (
		eligible []EligibleScheme
		skipped  []SkippedScheme
		seen     = make(map[string]struct{}, len(schemes))
	)

	for _, s := range schemes {
		if reason := malformed(s, catalog); reason != "" {
			skipped = append(skipped, SkippedScheme{SchemeID: s.ID, Reason: reason})
			continue
		}
		if s.IsStopped() || today < s.StartDate || today > s.EndDate {
			continue
		}
		source, ok := matchScope(SchemeScopes(s), account, opts)
		if !ok {
			continue
		}
		if _, dup := seen[s.ID]; dup {
			continue
		}
		seen[s.ID] = struct{}{}
		eligible = append(eligible, EligibleScheme{Scheme: s, Source: source})
	}
	return eligible, skipped
}

// MatchPromotions grants free goods for the paid quantities in requested.
// Each eligible scheme applies floor(Q / buyQuantity) times, where Q is the
// paid quantity of its buy product. Grants for the same product add up, and
// free goods never trigger further schemes.
func MatchPromotions(requested map[string]int, schemes []entity.Scheme, account *Account, catalog *Catalog, today string, opts PromotionOptions) PromotionResult {
	eligible, skipped := ActiveSchemes(schemes, account, catalog, today, opts)

	result := PromotionResult{
		Freebies: make(map[string]Freebie),
		Skipped:  skipped,
	}
	for _, e := range eligible {
		qty := requested[e.Scheme.BuySkuID]
		if qty <= 0 {
			continue
		}
		times := qty / e.Scheme.BuyQuantity
		if times < 1 {
			continue
		}
		free := times * e.Scheme.GetQuantity

		f, exists := result.Freebies[e.Scheme.GetSkuID]
		if !exists || e.Source < f.Source {
			f.Source = e.Source
		}
		f.Quantity += free
		result.Freebies[e.Scheme.GetSkuID] = f

		result.Applied = append(result.Applied, AppliedSchemeInfo{
			Scheme:       e.Scheme,
			TimesApplied: times,
			Source:       e.Source,
			FreeQuantity: free,
		})
	}
	return result
}

// malformed returns why a scheme can never apply, or "" when it is well formed.
func malformed(s entity.Scheme, catalog *Catalog) string {
	switch {
	case s.ID == "":
		return "missing id"
	case s.BuyQuantity <= 0:
		return fmt.Sprintf("buy quantity %d is not positive", s.BuyQuantity)
	case s.GetQuantity <= 0:
		return fmt.Sprintf("get quantity %d is not positive", s.GetQuantity)
	case !validDay(s.StartDate):
		return fmt.Sprintf("start date %q is not YYYY-MM-DD", s.StartDate)
	case !validDay(s.EndDate):
		return fmt.Sprintf("end date %q is not YYYY-MM-DD", s.EndDate)
	case s.StartDate > s.EndDate:
		return "end date is before start date"
	case !catalog.IsActive(s.BuySkuID):
		return fmt.Sprintf("buy product %s is missing or discontinued", s.BuySkuID)
	case !catalog.IsActive(s.GetSkuID):
		return fmt.Sprintf("get product %s is missing or discontinued", s.GetSkuID)
	}
	return ""
}

func validDay(s string) bool {
	_, err := time.Parse(dayLayout, s)
	return err == nil
}

// LocalDay returns the calendar date of now in loc as YYYY-MM-DD.
// A nil loc uses now's own location.
func LocalDay(now time.Time, loc *time.Location) string {
	if loc != nil {
		now = now.In(loc)
	}
	return now.Format(dayLayout)
}
