package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionState tracks an idempotent request across its ledger submissions.
type SubmissionState string

const (
	SubmissionPending   SubmissionState = "PENDING"
	SubmissionSubmitted SubmissionState = "SUBMITTED"
	SubmissionCompleted SubmissionState = "COMPLETED"
)

// SubmissionRecord remembers which signatures an idempotent request already put
// on the ledger, so a repeat never signs a second transfer.
type SubmissionRecord struct {
	Key        string          `json:"key"`
	State      SubmissionState `json:"state"`
	Signatures []string        `json:"signatures,omitempty"`
	Response   []byte          `json:"response,omitempty"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// BuildSubmissionKey scopes a client idempotency key to a user and operation.
func BuildSubmissionKey(userID uuid.UUID, operation, clientKey string) string {
	return userID.String() + ":" + operation + ":" + clientKey
}
