package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/models"
	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/services"
	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/common"
)

// reviewQueueSize bounds the review queue shown on the stats dashboard.
const reviewQueueSize = 6

// usersPerPage is the page size of the account listing.
const usersPerPage = 10

// Pending re-fetches the catalog and lists the materials awaiting review,
// in the moderation ordering.
func (a *App) Pending(ctx context.Context) error {
	if err := a.materials.Refresh(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	pending := services.SortForAdminView(a.materials.List(models.Filter{Status: models.StatusPending}))
	printMaterials(pending)
	return nil
}

// Approve publishes a pending material. Approving an already approved
// material changes nothing.
func (a *App) Approve(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: approve <id>")
		return nil
	}
	if err := a.materials.Approve(ctx, args[0]); err != nil {
		log.Printf("error approving material: %s", err.Error())
		return err
	}
	fmt.Println("Material approved")
	return nil
}

// Reject deletes a material after an explicit confirmation. Deletion is
// terminal, so anything short of a "y" answer aborts.
func (a *App) Reject(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: reject <id>")
		return nil
	}
	id := args[0]

	ok, err := confirm(a.reader, fmt.Sprintf("Delete material %s? This cannot be undone.", id), os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Cancelled")
		return nil
	}

	if err := a.materials.Reject(ctx, id); err != nil {
		log.Printf("error rejecting material: %s", err.Error())
		return err
	}
	fmt.Println("Material deleted")
	return nil
}

// Rename prompts for a new file name and applies it. An empty name is
// rejected locally before anything is sent.
func (a *App) Rename(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: rename <id>")
		return nil
	}
	id := args[0]

	newName, err := getSimpleText(a.reader, "Enter new file name", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.materials.Rename(ctx, id, newName); err != nil {
		if errors.Is(err, common.ErrEmptyName) {
			fmt.Println("File name cannot be empty")
			return nil
		}
		log.Printf("error renaming material: %s", err.Error())
		return err
	}
	fmt.Println("File name updated")
	return nil
}

// Stats re-fetches the catalog and prints per-type counts followed by the
// newest pending materials.
func (a *App) Stats(ctx context.Context) error {
	if err := a.materials.Refresh(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	catalog := a.materials.Catalog()
	stats := services.DashboardStats(catalog)

	fmt.Printf("PYQ: %d  Assignments: %d  Notes: %d  MST: %d  Total: %d\n",
		stats.PYQ, stats.Assignments, stats.Notes, stats.MST, stats.Total())

	queue := services.LatestPending(catalog, reviewQueueSize)
	if len(queue) == 0 {
		fmt.Println("No materials awaiting review")
		return nil
	}
	fmt.Println("Awaiting review:")
	printMaterials(queue)
	return nil
}

// Users lists the registered accounts. Arguments are free-form: a number
// selects the page, anything else narrows the listing to accounts whose
// email contains it.
func (a *App) Users(ctx context.Context, args []string) error {
	page, query := 1, ""
	for _, arg := range args {
		if p, err := strconv.Atoi(arg); err == nil && p >= 1 {
			page = p
			continue
		}
		query = arg
	}

	us, err := a.users.List(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	us = services.FilterUsersByEmail(us, query)
	if len(us) == 0 {
		fmt.Println("No users found")
		return nil
	}

	for _, u := range services.Paginate(us, usersPerPage, page) {
		fmt.Printf("%s  %s  <%s>  %s\n", u.ID, u.Name, u.Email, u.Role)
	}
	if total := services.TotalPages(len(us), usersPerPage); total > 1 {
		fmt.Printf("Page %d of %d\n", page, total)
	}
	return nil
}
