package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"elearn-api/cmd/seed_initial_data/internal/seedmodels"
	"elearn-api/internal/config"
	"elearn-api/internal/database"
	"elearn-api/internal/domain"
	"elearn-api/internal/logger"
	"elearn-api/internal/repository"

	"go.uber.org/zap"
)

const (
	seedFilePath = "configs/seed_data/courses.json"
)

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process...")
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to Oracle database", zap.Error(err))
	}
	defer db.Close()

	byteValue, err := os.ReadFile(seedFilePath)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", seedFilePath), zap.Error(err))
	}

	var seedCourses []seedmodels.SeedCourse
	if err := json.Unmarshal(byteValue, &seedCourses); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}
	log.Info("Loaded seed data", zap.Int("courses", len(seedCourses)))

	repo := repository.NewCourseDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	for _, sc := range seedCourses {
		err := txManager.WithTransaction(ctx, func(ctx context.Context) error {
			return seedCourse(ctx, repo, cfg.Upload.Dir, log, sc)
		})
		if err != nil {
			log.Error("Error seeding course, transaction rolled back", zap.String("course", sc.Name), zap.Error(err))
		}
	}
	log.Info("Initial data seeding process completed.")
}

func seedCourse(ctx context.Context, repo *repository.CourseDatabaseAdapter, uploadDir string, log *zap.Logger, sc seedmodels.SeedCourse) error {
	course, err := repo.GetCourseByName(ctx, sc.Name)
	if err != nil {
		return err
	}
	if course == nil {
		course = domain.NewCourse(sc.Name)
		if err := repo.SaveCourse(ctx, course); err != nil {
			return err
		}
		log.Info("Created course", zap.String("id", course.ID), zap.String("name", course.Name))
	} else {
		log.Info("Course exists", zap.String("id", course.ID), zap.String("name", course.Name))
	}

	for _, sd := range sc.Documents {
		exists, err := repo.DocumentExists(ctx, course.ID, sd.Path)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		doc := domain.NewDocument(sd.Name, sd.Path, sd.NumberOfPages, course.ID)
		if err := repo.SaveDocument(ctx, doc); err != nil {
			return err
		}

		// The row is useless to the document quiz endpoint until the PDF is copied here.
		expected := filepath.Join(uploadDir, course.ID, sd.Path)
		if _, statErr := os.Stat(expected); statErr != nil {
			log.Warn("Document file is not in the upload directory yet", zap.String("documentID", doc.ID), zap.String("expected_path", expected))
		}
		log.Info("Created document", zap.String("id", doc.ID), zap.String("path", doc.Path))
	}
	return nil
}
