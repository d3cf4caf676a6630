package licensing

import (
	"context"
	"fmt"
)

type ViolationKind string

const (
	ViolationMissingReference    ViolationKind = "missing_reference"
	ViolationNoSubscription      ViolationKind = "no_subscription"
	ViolationLicenseExhausted    ViolationKind = "license_exhausted"
	ViolationDuplicateAssignment ViolationKind = "duplicate_assignment"
)

const (
	MsgAccountMissing = "Account must exist"
	MsgUserMissing    = "User must exist"
	MsgProductMissing = "Product must exist"
	MsgNoSubscription = "No subscription found for this product"
)

type Violation struct {
	Kind    ViolationKind `json:"kind"`
	Message string        `json:"message"`
}

func (v Violation) String() string { return v.Message }

func ExhaustedViolation(productName string) Violation {
	return Violation{
		Kind:    ViolationLicenseExhausted,
		Message: fmt.Sprintf("No available licenses for %s", productName),
	}
}

func DuplicateViolation(userName, userEmail, productName string) Violation {
	return Violation{
		Kind:    ViolationDuplicateAssignment,
		Message: fmt.Sprintf("%s (%s) already has a license for %s", userName, userEmail, productName),
	}
}

// Candidate is a proposed assignment. Zero ids mean the value was absent.
type Candidate struct {
	AccountID uint
	UserID    uint
	ProductID uint
}

type Result struct {
	Violations []Violation
}

func (r Result) OK() bool { return len(r.Violations) == 0 }

func (r Result) Messages() []string {
	msgs := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		msgs = append(msgs, v.Message)
	}
	return msgs
}

func (r Result) Has(kind ViolationKind) bool {
	for _, v := range r.Violations {
		if v.Kind == kind {
			return true
		}
	}
	return false
}

func (r *Result) add(kind ViolationKind, msg string) {
	r.Violations = append(r.Violations, Violation{Kind: kind, Message: msg})
}

// RuleEngine decides whether a candidate may be persisted. Rule failures are
// reported in the Result; the error return is reserved for lookup failures.
type RuleEngine struct {
	directory Directory
	usage     UsageReader
}

func NewRuleEngine(directory Directory, usage UsageReader) *RuleEngine {
	return &RuleEngine{directory: directory, usage: usage}
}

// Validate runs every applicable check and collects all violations in order:
// missing references, then subscription, availability and uniqueness.
// Subscription and later checks need both account and product; once no
// subscription is found the remaining checks are skipped.
//
// The pool lookup is the first read so that, inside a transaction, the
// subscription row lock is held before any snapshot is taken and the usage
// count sees every allocation committed ahead of it.
func (e *RuleEngine) Validate(ctx context.Context, c Candidate) (Result, error) {
	var res Result

	var pool *Pool
	if c.AccountID != 0 && c.ProductID != 0 {
		p, err := e.directory.FindPool(ctx, c.AccountID, c.ProductID)
		if err != nil {
			return Result{}, fmt.Errorf("failed to look up subscription: %w", err)
		}
		pool = p
	}

	accountFound := false
	if c.AccountID != 0 {
		ok, err := e.directory.AccountExists(ctx, c.AccountID)
		if err != nil {
			return Result{}, fmt.Errorf("failed to look up account: %w", err)
		}
		accountFound = ok
	}

	var user *UserRef
	if c.UserID != 0 {
		u, err := e.directory.FindUser(ctx, c.UserID)
		if err != nil {
			return Result{}, fmt.Errorf("failed to look up user: %w", err)
		}
		user = u
	}

	var product *ProductRef
	if c.ProductID != 0 {
		p, err := e.directory.FindProduct(ctx, c.ProductID)
		if err != nil {
			return Result{}, fmt.Errorf("failed to look up product: %w", err)
		}
		product = p
	}

	if !accountFound {
		res.add(ViolationMissingReference, MsgAccountMissing)
	}
	if user == nil {
		res.add(ViolationMissingReference, MsgUserMissing)
	}
	if product == nil {
		res.add(ViolationMissingReference, MsgProductMissing)
	}

	if !accountFound || product == nil {
		return res, nil
	}

	if pool == nil {
		res.add(ViolationNoSubscription, MsgNoSubscription)
		return res, nil
	}

	used, err := e.usage.CountByPool(ctx, c.AccountID, c.ProductID)
	if err != nil {
		return Result{}, fmt.Errorf("failed to count assignments: %w", err)
	}
	if int64(pool.NumberOfLicenses)-used < 1 {
		res.Violations = append(res.Violations, ExhaustedViolation(product.Name))
	}

	if user == nil {
		return res, nil
	}

	exists, err := e.usage.Exists(ctx, c.AccountID, c.UserID, c.ProductID)
	if err != nil {
		return Result{}, fmt.Errorf("failed to check existing assignment: %w", err)
	}
	if exists {
		res.Violations = append(res.Violations, DuplicateViolation(user.Name, user.Email, product.Name))
	}

	return res, nil
}

// DescribeDuplicate builds the duplicate violation for a candidate whose
// insert lost a race against the unique index.
func (e *RuleEngine) DescribeDuplicate(ctx context.Context, c Candidate) (Violation, error) {
	user, err := e.directory.FindUser(ctx, c.UserID)
	if err != nil {
		return Violation{}, fmt.Errorf("failed to look up user: %w", err)
	}
	product, err := e.directory.FindProduct(ctx, c.ProductID)
	if err != nil {
		return Violation{}, fmt.Errorf("failed to look up product: %w", err)
	}

	var userName, userEmail, productName string
	if user != nil {
		userName, userEmail = user.Name, user.Email
	}
	if product != nil {
		productName = product.Name
	}
	return DuplicateViolation(userName, userEmail, productName), nil
}

// DedupMessages keeps the first occurrence of each message.
func DedupMessages(messages []string) []string {
	seen := make(map[string]struct{}, len(messages))
	out := make([]string, 0, len(messages))
	for _, msg := range messages {
		if _, ok := seen[msg]; ok {
			continue
		}
		seen[msg] = struct{}{}
		out = append(out, msg)
	}
	return out
}
