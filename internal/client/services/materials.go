package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/client"
	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/models"
	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/common"
	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/logging"
)

// MaterialService drives the material lifecycle
// (PENDING → APPROVED, or deletion from either state) and exposes
// filtered/sorted/paginated views of the catalog.
//
// The cached view is never patched optimistically: every successful mutation
// is followed by a full re-fetch of the canonical list (refresh-after-write).
// A collaborator failure leaves the cache untouched and is reported to the
// caller; nothing here is fatal.
type MaterialService struct {
	client client.Client
	logger logging.Logger

	// admin selects which catalog endpoint Refresh hits: the public
	// approved-only list, or the full admin list including pending entries.
	admin bool

	mu      sync.RWMutex
	catalog []models.Material
}

func NewMaterialService(c client.Client, logger logging.Logger) *MaterialService {
	return &MaterialService{client: c, logger: logger}
}

// SetAdminView switches Refresh between the public and the admin catalog.
// Called when the session identity changes.
func (s *MaterialService) SetAdminView(admin bool) {
	s.mu.Lock()
	s.admin = admin
	s.mu.Unlock()
}

// Refresh replaces the cached view with the canonical catalog from the
// collaborator.
func (s *MaterialService) Refresh(ctx context.Context) error {
	s.mu.RLock()
	admin := s.admin
	s.mu.RUnlock()

	var (
		ms  []models.Material
		err error
	)
	if admin {
		ms, err = s.client.ListAllMaterials(ctx)
	} else {
		ms, err = s.client.ListMaterials(ctx)
	}
	if err != nil {
		return fmt.Errorf("fetching catalog: %w", err)
	}

	s.mu.Lock()
	s.catalog = ms
	s.mu.Unlock()

	s.logger.Debug(ctx, "catalog refreshed", "count", len(ms), "admin", admin)
	return nil
}

// Catalog returns a copy of the full cached catalog.
func (s *MaterialService) Catalog() []models.Material {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Material(nil), s.catalog...)
}

// List returns the cached materials matching the filter, in catalog order.
func (s *MaterialService) List(f models.Filter) []models.Material {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Material, 0, len(s.catalog))
	for i := range s.catalog {
		if s.catalog[i].Matches(f) {
			result = append(result, s.catalog[i])
		}
	}
	return result
}

// mutate runs op and re-fetches the canonical catalog on success. A NotFound
// or Conflict rejection also triggers a refresh: the item changed under us
// and the cached view has to reconcile.
func (s *MaterialService) mutate(ctx context.Context, op func() error) error {
	err := op()
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorConflict) {
			if rerr := s.Refresh(ctx); rerr != nil {
				s.logger.Warn(ctx, "refresh after conflict failed", "error", rerr)
			}
		}
		return err
	}
	return s.Refresh(ctx)
}

// Approve moves a pending material to APPROVED. Approving an already
// approved material is accepted and converges on the same end state.
func (s *MaterialService) Approve(ctx context.Context, id string) error {
	return s.mutate(ctx, func() error {
		if err := s.client.ApproveMaterial(ctx, id); err != nil {
			return fmt.Errorf("approving material %s: %w", id, err)
		}
		return nil
	})
}

// Reject deletes the material regardless of its current state. Irreversible;
// callers must obtain explicit confirmation before invoking it.
func (s *MaterialService) Reject(ctx context.Context, id string) error {
	return s.mutate(ctx, func() error {
		if err := s.client.DeleteMaterial(ctx, id); err != nil {
			return fmt.Errorf("deleting material %s: %w", id, err)
		}
		return nil
	})
}

// Rename replaces the material's file name. The trimmed name must be
// non-empty (common.ErrEmptyName, checked before any network call).
func (s *MaterialService) Rename(ctx context.Context, id, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return common.ErrEmptyName
	}
	return s.mutate(ctx, func() error {
		if err := s.client.UpdateFileName(ctx, id, newName); err != nil {
			return fmt.Errorf("renaming material %s: %w", id, err)
		}
		return nil
	})
}

// Upload submits a new material. With req.AutoApprove set (admin uploads)
// the material is published immediately, with no pending state observed.
func (s *MaterialService) Upload(ctx context.Context, req *client.UploadRequest) error {
	if err := s.client.Upload(ctx, req); err != nil {
		return fmt.Errorf("uploading material: %w", err)
	}
	return s.Refresh(ctx)
}

// SortForAdminView orders a copy of ms for the moderation table: pending
// before approved, then by semester descending, then by ID descending
// (most recent first). A fixed three-key sort; IDs are unique so no further
// tie-breaking applies.
func SortForAdminView(ms []models.Material) []models.Material {
	sorted := append([]models.Material(nil), ms...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := &sorted[i], &sorted[j]
		if a.Approved != b.Approved {
			return !a.Approved
		}
		if a.Semester != b.Semester {
			return a.Semester > b.Semester
		}
		return a.ID > b.ID
	})
	return sorted
}

// Paginate returns the slice [pageSize*(page-1), pageSize*page) of items.
// Callers stop at TotalPages, but an out-of-range page yields an empty
// slice rather than an error.
func Paginate[T any](items []T, pageSize, page int) []T {
	if pageSize <= 0 || page <= 0 {
		return nil
	}
	start := pageSize * (page - 1)
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages is the number of pages the catalog occupies at the given page
// size; the boundary past which callers must not navigate.
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 || count <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// Stats tallies approved and pending materials per type for the dashboard
// summary. Always computed from the full, unfiltered catalog.
type Stats struct {
	PYQ         int
	Assignments int
	Notes       int
	MST         int
}

// Total is the number of materials counted across all types.
func (s Stats) Total() int {
	return s.PYQ + s.Assignments + s.Notes + s.MST
}

// DashboardStats counts materials per type, matching the type
// case-insensitively. Unknown types are left out of the tally.
func DashboardStats(ms []models.Material) Stats {
	var stats Stats
	for i := range ms {
		switch strings.ToLower(string(ms[i].MaterialType)) {
		case "pyq":
			stats.PYQ++
		case "assignment":
			stats.Assignments++
		case "notes":
			stats.Notes++
		case "mst":
			stats.MST++
		}
	}
	return stats
}

// LatestPending returns up to n pending materials, newest first by creation
// time, for the dashboard's review queue.
func LatestPending(ms []models.Material, n int) []models.Material {
	pending := make([]models.Material, 0, len(ms))
	for i := range ms {
		if !ms[i].Approved {
			pending = append(pending, ms[i])
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].CreatedAt.After(pending[j].CreatedAt)
	})
	if n >= 0 && len(pending) > n {
		pending = pending[:n]
	}
	return pending
}
