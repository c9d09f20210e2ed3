package client

import (
	"context"
	"io"

	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/models"
)

// Client is the StudyHub collaborator surface the workflow services consume.
// The backend owns all authoritative state; every method is a round trip.
type Client interface {
	Close() error

	// SetToken installs the bearer token attached to protected requests.
	// An empty token detaches it (logout).
	SetToken(token string)

	Login(ctx context.Context, email, password string) (*models.Identity, error)
	SendOTP(ctx context.Context, email string) (string, error)
	Register(ctx context.Context, name, email, otp, password string) (string, error)

	// ListMaterials returns the public catalog (approved materials only).
	ListMaterials(ctx context.Context) ([]models.Material, error)
	// ListAllMaterials returns the full catalog including pending entries.
	// Admin-only on the collaborator side.
	ListAllMaterials(ctx context.Context) ([]models.Material, error)

	// ListUsers returns the registered accounts, credentials stripped.
	// Admin-only on the collaborator side.
	ListUsers(ctx context.Context) ([]models.User, error)

	ApproveMaterial(ctx context.Context, id string) error
	DeleteMaterial(ctx context.Context, id string) error
	UpdateFileName(ctx context.Context, id, fileName string) error
	Upload(ctx context.Context, req *UploadRequest) error
	Download(ctx context.Context, id string, w io.Writer) error
}

// UploadRequest carries the multipart fields of a material submission.
// AutoApprove is honored by the collaborator for admin uploads only; the
// resulting material is then approved with no observable pending state.
type UploadRequest struct {
	MaterialType models.MaterialType
	Semester     int
	Subject      string
	FileName     string
	File         io.Reader
	AutoApprove  bool
}
