package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const TypeVendorImport = "vendor:import"

// VendorImportPayload carries everything the worker needs to run one batch:
// the pre-created batch row, the saved upload, the operator's mapping
// overrides and the identity the import runs as.
type VendorImportPayload struct {
	BatchID   uuid.UUID         `json:"batch_id"`
	FilePath  string            `json:"file_path"`
	CreatedBy string            `json:"created_by"`
	Overrides map[string]string `json:"overrides,omitempty"`
}

func NewVendorImportTask(payload VendorImportPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal import payload: %w", err)
	}
	return asynq.NewTask(TypeVendorImport, data, asynq.MaxRetry(3), asynq.Queue("imports")), nil
}
