package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/models"
	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/common"
)

// publicRoutes are the auth-bootstrap endpoints that must never carry a
// bearer token.
var publicRoutes = []string{
	"/auth/login",
	"/auth/register",
	"/auth/send-otp",
}

// HTTPClient implements Client over the collaborator's HTTP+JSON surface.
// It attaches the bearer token to every request except the public auth
// routes and stamps each request with a generated X-Request-Id.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewHTTPClient builds a client for the given API base URL, e.g.
// "http://localhost:8080/api". The timeout bounds each whole round trip.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Close() error { return nil }

func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// CollaboratorError is a rejection the collaborator reported that does not
// map onto one of the shared sentinels. It is recoverable by re-triggering
// the user action.
type CollaboratorError struct {
	Status  int
	Message string
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("server rejected request (%d): %s", e.Status, e.Message)
}

func isPublic(path string) bool {
	for _, route := range publicRoutes {
		if strings.HasPrefix(path, route) {
			return true
		}
	}
	return false
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" && !isPublic(path) {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+c.token)
	}
	return req, nil
}

func (c *HTTPClient) do(req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp, nil
}

// mapStatus converts a non-2xx response into the client error taxonomy.
// The response body, if any, is drained for its {message} payload.
func mapStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	msg := resp.Status
	var payload struct {
		Message string `json:"message"`
	}
	if body, err := io.ReadAll(io.LimitReader(resp.Body, 4096)); err == nil {
		if json.Unmarshal(body, &payload) == nil && payload.Message != "" {
			msg = payload.Message
		} else if s := strings.TrimSpace(string(body)); s != "" {
			msg = s
		}
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", common.ErrorUnauthorized, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", common.ErrorNotFound, msg)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", common.ErrorConflict, msg)
	}
	return &CollaboratorError{Status: resp.StatusCode, Message: msg}
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, in any, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(body), "application/json")
	if err != nil {
		return err
	}
	return c.roundTrip(req, out)
}

func (c *HTTPClient) roundTrip(req *http.Request, out any) error {
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := mapStatus(resp); err != nil {
		return err
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// Login authenticates against the collaborator and installs the returned
// bearer token for subsequent protected requests.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.Identity, error) {
	var out struct {
		Message string          `json:"message"`
		Token   string          `json:"token"`
		User    models.Identity `json:"user"`
	}
	in := map[string]string{"email": email, "password": password}
	if err := c.postJSON(ctx, "/auth/login", in, &out); err != nil {
		return nil, err
	}
	ident := out.User
	ident.Token = out.Token
	c.SetToken(out.Token)
	return &ident, nil
}

func (c *HTTPClient) SendOTP(ctx context.Context, email string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.postJSON(ctx, "/auth/send-otp", map[string]string{"email": email}, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email, otp, password string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	in := map[string]string{
		"name":     name,
		"email":    email,
		"otp":      otp,
		"password": password,
	}
	if err := c.postJSON(ctx, "/auth/register", in, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *HTTPClient) listMaterials(ctx context.Context, path string) ([]models.Material, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}
	var out []models.Material
	if err := c.roundTrip(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListMaterials(ctx context.Context) ([]models.Material, error) {
	return c.listMaterials(ctx, "/materials")
}

func (c *HTTPClient) ListAllMaterials(ctx context.Context) ([]models.Material, error) {
	return c.listMaterials(ctx, "/materials/admin/materials")
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/admin/users", nil, "")
	if err != nil {
		return nil, err
	}
	var out []models.User
	if err := c.roundTrip(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ApproveMaterial(ctx context.Context, id string) error {
	req, err := c.newRequest(ctx, http.MethodPut, "/materials/admin/approve/"+id, nil, "")
	if err != nil {
		return err
	}
	return c.roundTrip(req, nil)
}

func (c *HTTPClient) DeleteMaterial(ctx context.Context, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/materials/admin/"+id, nil, "")
	if err != nil {
		return err
	}
	return c.roundTrip(req, nil)
}

func (c *HTTPClient) UpdateFileName(ctx context.Context, id, fileName string) error {
	body, err := json.Marshal(map[string]string{"fileName": fileName})
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodPut, "/materials/admin/update-filename/"+id, bytes.NewReader(body), "application/json")
	if err != nil {
		return err
	}
	return c.roundTrip(req, nil)
}

// Upload submits a material as multipart form data. Admin callers may set
// AutoApprove so the material is published without a pending phase.
func (c *HTTPClient) Upload(ctx context.Context, r *UploadRequest) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"materialType": string(r.MaterialType),
		"semester":     strconv.Itoa(r.Semester),
		"subject":      r.Subject,
	}
	if r.AutoApprove {
		fields["autoApprove"] = "true"
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return err
		}
	}

	part, err := mw.CreateFormFile("file", r.FileName)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, r.File); err != nil {
		return fmt.Errorf("reading upload file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/materials/upload", &buf, mw.FormDataContentType())
	if err != nil {
		return err
	}
	return c.roundTrip(req, nil)
}

// Download streams an approved material into w.
func (c *HTTPClient) Download(ctx context.Context, id string, w io.Writer) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/materials/download/"+id, nil, "")
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := mapStatus(resp); err != nil {
		return err
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("downloading material: %w", err)
	}
	return nil
}
