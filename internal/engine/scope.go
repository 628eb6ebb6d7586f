package engine

import (
	"encoding/json"

	"github.com/sangkips/distributor-orders/internal/domain/entity"
)

// ScopeKind identifies who a scheme is offered to. Lower values take
// precedence when a freebie's provenance is labelled.
type ScopeKind int

const (
	ScopeGlobal ScopeKind = iota
	ScopeDistributor
	ScopeStore
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeGlobal:
		return "Global"
	case ScopeDistributor:
		return "Distributor"
	case ScopeStore:
		return "Store"
	default:
		return "Unknown"
	}
}

func (k ScopeKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Scope is one audience a scheme targets. OwnerID is empty for ScopeGlobal.
type Scope struct {
	Kind    ScopeKind
	OwnerID string
}

// SchemeScopes derives the scopes of a scheme in precedence order.
// A scheme can carry several at once.
func SchemeScopes(s entity.Scheme) []Scope {
	var scopes []Scope
	if s.IsGlobal {
		scopes = append(scopes, Scope{Kind: ScopeGlobal})
	}
	if id := deref(s.DistributorID); id != "" {
		scopes = append(scopes, Scope{Kind: ScopeDistributor, OwnerID: id})
	}
	if id := deref(s.StoreID); id != "" {
		scopes = append(scopes, Scope{Kind: ScopeStore, OwnerID: id})
	}
	return scopes
}

func (s Scope) matches(account *Account, opts PromotionOptions) bool {
	switch s.Kind {
	case ScopeGlobal:
		return true
	case ScopeDistributor:
		if account == nil || account.ID != s.OwnerID {
			return false
		}
		return !opts.RequireSpecialSchemesFlag || account.HasSpecialSchemes
	case ScopeStore:
		return account != nil && account.StoreID != "" && account.StoreID == s.OwnerID
	}
	return false
}

// matchScope returns the highest-precedence scope that admits the account.
func matchScope(scopes []Scope, account *Account, opts PromotionOptions) (ScopeKind, bool) {
	for _, s := range scopes {
		if s.matches(account, opts) {
			return s.Kind, true
		}
	}
	return 0, false
}
