// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Partition selects which side of the soft-delete boundary a query reads.
type Partition int

const (
	// PartitionActive holds entities without a deletion timestamp.
	PartitionActive Partition = iota
	// PartitionTrash holds soft-deleted entities.
	PartitionTrash
)

// String implements fmt.Stringer.
func (p Partition) String() string {
	if p == PartitionTrash {
		return "trash"
	}
	return "active"
}

// OrderField names a column a query can be sorted by.
type OrderField string

const (
	OrderByCreated OrderField = "created"
	OrderByUpdated OrderField = "updated"
	OrderByDeleted OrderField = "deleted"
	OrderByOrder   OrderField = "order"
)

// Ordering describes the sort applied to list and listitem queries.
type Ordering struct {
	Field OrderField
	Desc  bool
}

// DefaultOrdering sorts by the explicit order index, ascending.
var DefaultOrdering = Ordering{Field: OrderByOrder}

// TrashOrdering sorts by deletion time, most recently deleted first.
var TrashOrdering = Ordering{Field: OrderByDeleted, Desc: true}
