package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"licensehub/internal/application/licensing/dto"
	"licensehub/internal/shared/mapper"
	"licensehub/internal/shared/utils"
)

// blankableID is a FlexibleID that never fails: "", null and any value that
// is not an id decode to zero. The rule engine reports zero ids as missing
// references, so one bad row does not reject the rest of the batch.
type blankableID uint

func (b *blankableID) UnmarshalJSON(data []byte) error {
	var id utils.FlexibleID
	if err := id.UnmarshalJSON(bytes.TrimSpace(data)); err != nil {
		*b = 0
		return nil
	}
	*b = blankableID(id)
	return nil
}

type assignmentItem struct {
	UserID    blankableID `json:"user_id"`
	ProductID blankableID `json:"product_id"`
}

// assignmentList decodes either a JSON array of items or an object keyed by
// position ({"0": {...}, "1": {...}}), the shape form posts produce.
type assignmentList []assignmentItem

func (l *assignmentList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*l = nil
		return nil
	}

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []assignmentItem
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}

	var keyed map[string]assignmentItem
	if err := json.Unmarshal(trimmed, &keyed); err != nil {
		return fmt.Errorf("assignments must be an array or an object keyed by index: %w", err)
	}

	keys := make([]string, 0, len(keyed))
	for k := range keyed {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		if errA == nil && errB == nil {
			return a < b
		}
		return keys[i] < keys[j]
	})

	items := make([]assignmentItem, 0, len(keys))
	for _, k := range keys {
		items = append(items, keyed[k])
	}
	*l = items
	return nil
}

// CreateAssignmentsRequest is the body of a batch assignment.
type CreateAssignmentsRequest struct {
	Assignments assignmentList `json:"assignments"`
}

func (r CreateAssignmentsRequest) toApplicationRequests() []dto.AssignmentRequest {
	return mapper.MapSlice(r.Assignments, func(item assignmentItem) dto.AssignmentRequest {
		return dto.AssignmentRequest{UserID: uint(item.UserID), ProductID: uint(item.ProductID)}
	})
}

// idList decodes a JSON array of ids or a single id.
type idList []utils.FlexibleID

func (l *idList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*l = nil
		return nil
	}

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var ids []utils.FlexibleID
		if err := json.Unmarshal(trimmed, &ids); err != nil {
			return err
		}
		*l = ids
		return nil
	}

	var id utils.FlexibleID
	if err := id.UnmarshalJSON(trimmed); err != nil {
		return err
	}
	*l = idList{id}
	return nil
}

// DestroyAssignmentsRequest removes every (user, product) pair of the cross
// product within the account.
type DestroyAssignmentsRequest struct {
	UserIDs    idList `json:"user_ids"`
	ProductIDs idList `json:"product_ids"`
}

// AssignmentsIndexResponse is the account's assignment page: current
// assignments plus the users and pools to choose from.
type AssignmentsIndexResponse struct {
	Assignments   []*dto.AssignmentResponse `json:"assignments"`
	Users         []*dto.UserOption         `json:"users"`
	Subscriptions []*dto.PoolSummary        `json:"subscriptions"`
}
