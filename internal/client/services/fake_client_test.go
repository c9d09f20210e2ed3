package services

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/client"
	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/models"
	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/common"
)

// fakeClient implements client.Client for service unit tests. It keeps an
// in-memory catalog, records the arguments of the last calls, and lets tests
// inject errors per method.
type fakeClient struct {
	materials []models.Material
	users     []models.User
	nextID    int

	token string

	SendOTPErr   error
	RegisterErr  error
	ListErr      error
	ListUsersErr error
	ApproveErr   error
	DeleteErr    error
	UpdateErr    error
	UploadErr    error

	SendOTPCalls  int
	RegisterCalls int

	LastSendOTPEmail string
	LastRegisterArgs [4]string // name, email, otp, password
	LastUpload       *client.UploadRequest
}

func newFakeClient(ms ...models.Material) *fakeClient {
	f := &fakeClient{materials: ms, nextID: 100}
	return f
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) SetToken(token string) { f.token = token }

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.Identity, error) {
	return &models.Identity{ID: "u1", Name: "Test", Email: email, Role: models.RoleUser, Token: "tok"}, nil
}

func (f *fakeClient) SendOTP(ctx context.Context, email string) (string, error) {
	f.SendOTPCalls++
	f.LastSendOTPEmail = email
	if f.SendOTPErr != nil {
		return "", f.SendOTPErr
	}
	return "OTP sent successfully", nil
}

func (f *fakeClient) Register(ctx context.Context, name, email, otp, password string) (string, error) {
	f.RegisterCalls++
	f.LastRegisterArgs = [4]string{name, email, otp, password}
	if f.RegisterErr != nil {
		return "", f.RegisterErr
	}
	return "Registered successfully", nil
}

func (f *fakeClient) ListMaterials(ctx context.Context) ([]models.Material, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	approved := make([]models.Material, 0, len(f.materials))
	for _, m := range f.materials {
		if m.Approved {
			approved = append(approved, m)
		}
	}
	return approved, nil
}

func (f *fakeClient) ListAllMaterials(ctx context.Context) ([]models.Material, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return append([]models.Material(nil), f.materials...), nil
}

func (f *fakeClient) ListUsers(ctx context.Context) ([]models.User, error) {
	if f.ListUsersErr != nil {
		return nil, f.ListUsersErr
	}
	return append([]models.User(nil), f.users...), nil
}

func (f *fakeClient) ApproveMaterial(ctx context.Context, id string) error {
	if f.ApproveErr != nil {
		return f.ApproveErr
	}
	for i := range f.materials {
		if f.materials[i].ID == id {
			f.materials[i].Approved = true
			return nil
		}
	}
	return fmt.Errorf("%w: material %s", common.ErrorNotFound, id)
}

func (f *fakeClient) DeleteMaterial(ctx context.Context, id string) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	for i := range f.materials {
		if f.materials[i].ID == id {
			f.materials = append(f.materials[:i], f.materials[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: material %s", common.ErrorNotFound, id)
}

func (f *fakeClient) UpdateFileName(ctx context.Context, id, fileName string) error {
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	for i := range f.materials {
		if f.materials[i].ID == id {
			f.materials[i].FileName = fileName
			return nil
		}
	}
	return fmt.Errorf("%w: material %s", common.ErrorNotFound, id)
}

func (f *fakeClient) Upload(ctx context.Context, req *client.UploadRequest) error {
	if f.UploadErr != nil {
		return f.UploadErr
	}
	f.LastUpload = req
	f.nextID++
	f.materials = append(f.materials, models.Material{
		ID:           strconv.Itoa(f.nextID),
		FileName:     req.FileName,
		Subject:      req.Subject,
		Semester:     req.Semester,
		MaterialType: req.MaterialType,
		Approved:     req.AutoApprove,
		CreatedAt:    time.Now(),
	})
	return nil
}

func (f *fakeClient) Download(ctx context.Context, id string, w io.Writer) error {
	_, err := w.Write([]byte("%PDF-fake"))
	return err
}
