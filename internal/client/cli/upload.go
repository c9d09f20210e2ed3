package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/client"
	"github.com/Prabhat-kumar-Ahirwar/Study-Hub/internal/client/models"
)

// Upload collects the material fields interactively and submits the file.
// Uploads by an administrator are published immediately; everyone else's
// uploads enter the review queue.
func (a *App) Upload(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter file path", os.Stdout)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer file.Close()

	typeText, err := getSimpleText(a.reader, "Enter material type (PYQ, Assignment, Notes, MST)", os.Stdout)
	if err != nil {
		return err
	}
	materialType, err := models.ParseMaterialType(typeText)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	semText, err := getSimpleText(a.reader, "Enter semester", os.Stdout)
	if err != nil {
		return err
	}
	semester, err := strconv.Atoi(semText)
	if err != nil || !models.ValidSemester(semester) {
		log.Printf("invalid semester: %q", semText)
		return fmt.Errorf("invalid semester %q", semText)
	}

	subject, err := getSimpleText(a.reader, "Enter subject", os.Stdout)
	if err != nil {
		return err
	}

	req := &client.UploadRequest{
		MaterialType: materialType,
		Semester:     semester,
		Subject:      subject,
		FileName:     filepath.Base(path),
		File:         file,
		AutoApprove:  a.session.Current().IsAdmin(),
	}

	if err := a.materials.Upload(ctx, req); err != nil {
		log.Printf("error uploading material: %s", err.Error())
		return err
	}

	if req.AutoApprove {
		fmt.Println("Material uploaded and published")
	} else {
		fmt.Println("Material uploaded, awaiting approval")
	}
	return nil
}
