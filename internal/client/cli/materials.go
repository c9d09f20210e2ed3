package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/models"
	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/services"
)

func formatMaterial(m models.Material) string {
	return fmt.Sprintf("%-26s %-10s sem %d  %-24s %-30s %s",
		m.ID, m.MaterialType, m.Semester, m.Subject, m.FileName, m.Status())
}

func printMaterials(ms []models.Material) {
	if len(ms) == 0 {
		fmt.Println("No materials found")
		return
	}
	for _, m := range ms {
		fmt.Println(formatMaterial(m))
	}
}

// ensureCatalog fetches the catalog once; later commands read the cache and
// mutations re-fetch on their own.
func (a *App) ensureCatalog(ctx context.Context) error {
	if len(a.materials.Catalog()) > 0 {
		return nil
	}
	return a.materials.Refresh(ctx)
}

// List re-fetches the catalog and prints one page of it. Administrators see
// the moderation ordering, pending first; everyone else sees the published
// catalog as the collaborator returns it.
func (a *App) List(ctx context.Context, args []string) error {
	page := 1
	if len(args) > 0 {
		p, err := strconv.Atoi(args[0])
		if err != nil || p < 1 {
			fmt.Println("Usage: list [page]")
			return nil
		}
		page = p
	}

	if err := a.materials.Refresh(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	ms := a.materials.Catalog()
	if ident := a.session.Current(); ident.IsAdmin() {
		ms = services.SortForAdminView(ms)
	}

	total := services.TotalPages(len(ms), a.config.PageSize)
	printMaterials(services.Paginate(ms, a.config.PageSize, page))
	if total > 1 {
		fmt.Printf("Page %d of %d\n", page, total)
	}
	return nil
}

// Search prints the cached materials whose file name or subject contains the
// given text.
func (a *App) Search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: search <text>")
		return nil
	}
	if err := a.ensureCatalog(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	printMaterials(a.materials.List(models.Filter{Query: strings.Join(args, " ")}))
	return nil
}

// Semester prints the cached materials for one semester.
func (a *App) Semester(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: sem <number> (1-8)")
		return nil
	}
	sem, err := strconv.Atoi(args[0])
	if err != nil || !models.ValidSemester(sem) {
		fmt.Println("Usage: sem <number> (1-8)")
		return nil
	}
	if err := a.ensureCatalog(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	printMaterials(a.materials.List(models.Filter{Semester: sem}))
	return nil
}

// ByStatus prints the cached materials in one lifecycle state.
func (a *App) ByStatus(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: status <pending|approved>")
		return nil
	}

	var status models.Status
	switch strings.ToLower(args[0]) {
	case "pending":
		status = models.StatusPending
	case "approved":
		status = models.StatusApproved
	default:
		fmt.Println("Usage: status <pending|approved>")
		return nil
	}

	if err := a.ensureCatalog(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	printMaterials(a.materials.List(models.Filter{Status: status}))
	return nil
}

// Download streams a material into a file in the working directory, named
// after the stored file name when the catalog knows it.
func (a *App) Download(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: download <id>")
		return nil
	}
	id := args[0]

	name := id + ".pdf"
	for _, m := range a.materials.Catalog() {
		if m.ID == id {
			name = m.FileName
			break
		}
	}

	f, err := os.Create(name)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer f.Close()

	if err := a.client.Download(ctx, id, f); err != nil {
		log.Printf("error downloading material: %s", err.Error())
		return err
	}

	fmt.Println("Saved to", name)
	return nil
}
