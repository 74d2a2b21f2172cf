package response

import (
	"time"

	"tukangku/internal/domain/entities"
)

type ServiceResponse struct {
	ID                string     `json:"id"`
	WorkerID          string     `json:"workerId"`
	NamaLayanan       string     `json:"namaLayanan"`
	Deskripsi         string     `json:"deskripsi,omitempty"`
	Harga             int64      `json:"harga"`
	TipeLayanan       string     `json:"tipeLayanan"`
	StatusPersetujuan string     `json:"statusPersetujuan"`
	CreatedAt         *time.Time `json:"createdAt,omitempty"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:                s.ID,
		WorkerID:          s.WorkerID,
		NamaLayanan:       s.NamaLayanan,
		Deskripsi:         s.Deskripsi,
		Harga:             s.Harga,
		TipeLayanan:       string(s.TipeLayanan),
		StatusPersetujuan: string(s.StatusPersetujuan),
		CreatedAt:         optionalTime(s.CreatedAt),
	}
}

func FromServices(services []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromService(s))
	}
	return out
}
