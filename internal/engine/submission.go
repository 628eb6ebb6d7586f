package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sangkips/distributor-orders/internal/domain/enum"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTransition = errors.New("engine: invalid submission transition")
	ErrNilResult         = errors.New("engine: computation result is nil")
)

// BlockReason explains why an order cannot be submitted.
type BlockReason string

const (
	BlockNoAccount             BlockReason = "no_account"
	BlockNoItems               BlockReason = "no_items"
	BlockStockShortfall        BlockReason = "stock_shortfall"
	BlockNonPositiveTotal      BlockReason = "non_positive_total"
	BlockAuthorizationRequired BlockReason = "authorization_required"
)

// Decision is the outcome of the submission gate.
//
// A funds shortfall never blocks: it sets FundsWarning and, because the
// order then runs on credit, requires an approver name instead.
type Decision struct {
	State                 enum.SubmissionState `json:"state"`
	Reasons               []BlockReason        `json:"reasons"`
	AvailableFunds        decimal.Decimal      `json:"available_funds"`
	IsUsingCredit         bool                 `json:"is_using_credit"`
	CreditUsed            decimal.Decimal      `json:"credit_used"`
	FundsWarning          bool                 `json:"funds_warning"`
	FundsShortfall        decimal.Decimal      `json:"funds_shortfall"`
	AuthorizationRequired bool                 `json:"authorization_required"`
	ApprovalGrantedBy     string               `json:"approval_granted_by,omitempty"`
}

// Submittable reports whether the order may be handed to persistence.
func (d Decision) Submittable() bool {
	return d.State == enum.SubmissionStateSubmittable
}

// Submission walks Idle → ItemsSelected → Computed → Submittable | Blocked.
// It is not safe for concurrent use.
type Submission struct {
	state     enum.SubmissionState
	requested map[string]int
	result    *OrderComputationResult
}

func NewSubmission() *Submission {
	return &Submission{state: enum.SubmissionStateIdle}
}

func (s *Submission) State() enum.SubmissionState {
	return s.state
}

// SelectItems starts over with a new selection. It moves to ItemsSelected
// when at least one quantity is positive and back to Idle otherwise.
func (s *Submission) SelectItems(requested map[string]int) {
	s.result = nil
	s.requested = make(map[string]int, len(requested))
	for id, qty := range requested {
		if qty > 0 {
			s.requested[id] = qty
		}
	}
	if len(s.requested) == 0 {
		s.state = enum.SubmissionStateIdle
		return
	}
	s.state = enum.SubmissionStateItemsSelected
}

// Attach records the computation for the current selection.
func (s *Submission) Attach(result *OrderComputationResult) error {
	if result == nil {
		return ErrNilResult
	}
	if s.state != enum.SubmissionStateItemsSelected {
		return fmt.Errorf("%w: attach from %s", ErrInvalidTransition, s.state)
	}
	s.result = result
	s.state = enum.SubmissionStateComputed
	return nil
}

// Decide applies the gate rules and moves to Submittable or Blocked.
func (s *Submission) Decide(account *Account, approvalGrantedBy string) (Decision, error) {
	if s.state != enum.SubmissionStateComputed {
		return Decision{}, fmt.Errorf("%w: decide from %s", ErrInvalidTransition, s.state)
	}

	d := decide(s.result, account, approvalGrantedBy)
	s.state = d.State
	return d, nil
}

func decide(r *OrderComputationResult, account *Account, approvalGrantedBy string) Decision {
	d := Decision{
		Reasons:           []BlockReason{},
		AvailableFunds:    decimal.Zero,
		CreditUsed:        decimal.Zero,
		FundsShortfall:    decimal.Zero,
		ApprovalGrantedBy: strings.TrimSpace(approvalGrantedBy),
	}

	if account == nil {
		d.Reasons = append(d.Reasons, BlockNoAccount)
	}
	if r.PaidLineCount() == 0 {
		d.Reasons = append(d.Reasons, BlockNoItems)
	}
	if r.StockCheck.HasIssues {
		d.Reasons = append(d.Reasons, BlockStockShortfall)
	}

	if r.Mode == enum.OrderModeOrder {
		grand := r.GrandTotal
		if !grand.IsPositive() {
			d.Reasons = append(d.Reasons, BlockNonPositiveTotal)
		}
		if account != nil {
			d.AvailableFunds = account.AvailableFunds()
			d.IsUsingCredit = grand.IsPositive() && grand.GreaterThan(account.WalletBalance)
			if d.IsUsingCredit {
				d.CreditUsed = grand.Sub(decimal.Max(account.WalletBalance, decimal.Zero))
			}
			if grand.GreaterThan(d.AvailableFunds) {
				d.FundsWarning = true
				d.FundsShortfall = grand.Sub(d.AvailableFunds)
			}
			d.AuthorizationRequired = d.IsUsingCredit
			if d.IsUsingCredit && d.ApprovalGrantedBy == "" {
				d.Reasons = append(d.Reasons, BlockAuthorizationRequired)
			}
		}
	}

	if len(d.Reasons) > 0 {
		d.State = enum.SubmissionStateBlocked
	} else {
		d.State = enum.SubmissionStateSubmittable
	}
	return d
}

// Evaluate runs the whole gate for one selection. When nothing positive was
// requested the gate stays Idle and reports BlockNoItems.
func Evaluate(requested map[string]int, result *OrderComputationResult, account *Account, approvalGrantedBy string) (Decision, error) {
	s := NewSubmission()
	s.SelectItems(requested)
	if s.State() == enum.SubmissionStateIdle {
		reasons := []BlockReason{}
		if account == nil {
			reasons = append(reasons, BlockNoAccount)
		}
		reasons = append(reasons, BlockNoItems)
		return Decision{
			State:          enum.SubmissionStateIdle,
			Reasons:        reasons,
			AvailableFunds: decimal.Zero,
			CreditUsed:     decimal.Zero,
			FundsShortfall: decimal.Zero,
		}, nil
	}
	if err := s.Attach(result); err != nil {
		return Decision{}, err
	}
	return s.Decide(account, approvalGrantedBy)
}
