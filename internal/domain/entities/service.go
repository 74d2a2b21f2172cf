package entities

import "time"

// ServiceType distinguishes the two pricing models.
//
//   - fixed: the listed price is the full job price, no quote flow.
//   - survey: the customer pays a flat survey fee up front; the worker inspects
//     the job on-site and proposes the real price afterwards.

type ServiceType string

const (
	ServiceTypeFixed  ServiceType = "fixed"
	ServiceTypeSurvey ServiceType = "survey"
)

// ApprovalStatus is the admin moderation state of a listed service.

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// Service is a bookable offering listed by a worker.
//
// Storage model (DynamoDB):
//   - PK: id

type Service struct {
	ID                string         `json:"id"`
	WorkerID          string         `json:"workerId"`
	NamaLayanan       string         `json:"namaLayanan"`
	Deskripsi         string         `json:"deskripsi,omitempty"`
	Harga             int64          `json:"harga"`
	TipeLayanan       ServiceType    `json:"tipeLayanan"`
	StatusPersetujuan ApprovalStatus `json:"statusPersetujuan"`
	CreatedAt         time.Time      `json:"createdAt"`
}
