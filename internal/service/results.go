// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// Result is the three-valued outcome of a mutating operation.
//
// ResultNone means nothing happened: the entity was not dirty, there was
// nothing to act on, or the user declined the confirmation. It is not a
// failure and callers generally stop there.
type Result int

const (
	ResultNone Result = iota
	ResultSuccess
	ResultFailure
)

// String implements fmt.Stringer.
func (r Result) String() string {
	switch r {
	case ResultSuccess:
		return "success"
	case ResultFailure:
		return "failure"
	default:
		return "none"
	}
}

// Variant selects the user-facing message of a batch operation.
type Variant int

const (
	VariantNothing Variant = iota
	VariantAllSucceeded
	VariantAllFailed
	VariantPartial
)

// BatchResult counts per-entity outcomes of a batch operation. A batch the
// user declined has zero counts.
type BatchResult struct {
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// Total returns the number of entities the batch acted on.
func (b BatchResult) Total() int { return b.Succeeded + b.Failed }

// Variant classifies the batch as all/none/partially succeeded.
func (b BatchResult) Variant() Variant {
	switch {
	case b.Total() == 0:
		return VariantNothing
	case b.Failed == 0:
		return VariantAllSucceeded
	case b.Succeeded == 0:
		return VariantAllFailed
	default:
		return VariantPartial
	}
}

// Result folds the batch into the three-valued result: any failure makes
// the batch a failure.
func (b BatchResult) Result() Result {
	switch b.Variant() {
	case VariantNothing:
		return ResultNone
	case VariantAllSucceeded:
		return ResultSuccess
	default:
		return ResultFailure
	}
}

func (b *BatchResult) add(ok bool) {
	if ok {
		b.Succeeded++
	} else {
		b.Failed++
	}
}
