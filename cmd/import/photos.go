package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
	"github.com/ethoz1970/congress-directory/services"
	"github.com/spf13/cobra"
)

var (
	photosDir    string
	photosForce  bool
	photosUpload bool
)

var photosCmd = &cobra.Command{
	Use:   "photos",
	Short: "Fetch member portraits from the unitedstates images repo",
	Long: `Downloads the 450x550 portrait of every Senate and House member. By
default portraits land as {bioguide}.jpg under --dir; with --upload they
go to Cloudinary instead and the delivered URL is stored as the member's
photo_url. Not every member has a portrait; missing ones are counted,
not treated as errors.`,
	RunE: runPhotos,
}

func init() {
	photosCmd.Flags().StringVar(&photosDir, "dir", "images/legislators", "Directory for downloaded portraits")
	photosCmd.Flags().BoolVar(&photosForce, "force", false, "Re-download portraits that already exist locally")
	photosCmd.Flags().BoolVar(&photosUpload, "upload", false, "Upload portraits to Cloudinary and store the URLs")
}

func runPhotos(cmd *cobra.Command, args []string) error {
	banner("Portrait Import")
	photo := services.NewPhotoService()
	ctx := cmd.Context()

	if photosUpload {
		err := photo.WithCloudinary(
			os.Getenv("CLOUDINARY_CLOUD_NAME"),
			os.Getenv("CLOUDINARY_API_KEY"),
			os.Getenv("CLOUDINARY_API_SECRET"),
		)
		if err != nil {
			return fmt.Errorf("cloudinary init: %w", err)
		}
		log.Println("✅ Cloudinary configured")
	} else {
		if err := os.MkdirAll(photosDir, 0o755); err != nil {
			return err
		}
		log.Printf("Output directory: %s", photosDir)
	}

	var members []models.Member
	if err := config.DirectoryGorm.
		Select("bioguide_id", "full_name").
		Where("chamber IN ?", []string{"Senate", "House"}).
		Order("bioguide_id").
		Find(&members).Error; err != nil {
		return fmt.Errorf("loading legislators: %w", err)
	}
	log.Printf("Found %d legislators", len(members))

	downloaded, skipped, missing, failed := 0, 0, 0, 0
	for i, member := range members {
		target := filepath.Join(photosDir, member.BioguideID+".jpg")
		if !photosUpload && !photosForce {
			if _, err := os.Stat(target); err == nil {
				skipped++
				continue
			}
		}

		fmt.Printf("[%d/%d] %s (%s)... ", i+1, len(members), member.BioguideID, member.FullName)

		data, err := photo.DownloadPortrait(ctx, member.BioguideID)
		if err != nil {
			fmt.Println("FAILED")
			log.Printf("  ⚠️ %s: %v", member.BioguideID, err)
			failed++
			continue
		}
		if data == nil {
			fmt.Println("NOT FOUND")
			missing++
			continue
		}

		if photosUpload {
			url, err := photo.UploadPortrait(ctx, member.BioguideID, bytes.NewReader(data))
			if err != nil {
				fmt.Println("UPLOAD FAILED")
				log.Printf("  ⚠️ %s: %v", member.BioguideID, err)
				failed++
				continue
			}
			err = config.DirectoryGorm.Model(&models.Member{}).
				Where("bioguide_id = ?", member.BioguideID).
				Update("photo_url", url).Error
			if err != nil {
				return fmt.Errorf("updating %s: %w", member.BioguideID, err)
			}
		} else {
			if err := os.WriteFile(target, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", target, err)
			}
		}

		fmt.Println("OK")
		downloaded++

		// Be nice to GitHub
		time.Sleep(100 * time.Millisecond)
	}

	fmt.Println()
	banner(fmt.Sprintf("Import complete: %d downloaded, %d skipped, %d not found, %d errors",
		downloaded, skipped, missing, failed))
	return nil
}
