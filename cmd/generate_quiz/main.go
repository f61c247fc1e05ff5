// Command generate_quiz runs the quiz generation pipeline from the shell.
// It reads a PDF or a text file, prints the generated quiz JSON and can
// save it under a course.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"elearn-api/internal/adapter/pdftext"
	"elearn-api/internal/adapter/quizgen"
	"elearn-api/internal/config"
	"elearn-api/internal/database"
	"elearn-api/internal/domain"
	"elearn-api/internal/dto"
	"elearn-api/internal/logger"
	"elearn-api/internal/repository"
	"elearn-api/internal/service"

	"go.uber.org/zap"
)

func main() {
	file := flag.String("file", "", "PDF or plain text file to generate the quiz from")
	title := flag.String("title", "", "quiz title, defaults to the file name")
	questions := flag.Int("questions", domain.DefaultQuestionCount, "number of questions")
	model := flag.String("model", "", "chat model, defaults to the configured one")
	courseID := flag.String("course", "", "save the quiz under this course ID")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: generate_quiz -file <path> [-title T] [-questions N] [-model M] [-course ID]")
		os.Exit(2)
	}

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
	l := logger.Get()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	text, err := readSource(ctx, *file)
	if err != nil {
		l.Fatal("Failed to read source", zap.String("file", *file), zap.Error(err))
	}

	if *title == "" {
		*title = strings.TrimSuffix(filepath.Base(*file), filepath.Ext(*file))
	}

	generator := quizgen.NewFromConfig(&cfg.AI, l)

	quiz, err := generator.Generate(ctx, domain.QuizGenerationRequest{
		SourceText:    text,
		Title:         *title,
		Model:         *model,
		QuestionCount: *questions,
	})
	if err != nil {
		l.Fatal("Quiz generation failed", zap.Error(err))
	}

	if err := writeQuiz(os.Stdout, quiz); err != nil {
		l.Fatal("Failed to encode generated quiz", zap.Error(err))
	}

	if *courseID == "" {
		return
	}
	if err := saveQuiz(ctx, cfg, *courseID, quiz); err != nil {
		l.Fatal("Failed to save quiz", zap.String("courseID", *courseID), zap.Error(err))
	}
}

// writeQuiz prints the quiz in the same {data} envelope the API returns.
func writeQuiz(w io.Writer, quiz *domain.GeneratedQuiz) error {
	out, err := json.MarshalIndent(dto.GeneratedQuizResponse{Data: quiz.Data}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode quiz: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func readSource(ctx context.Context, path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return pdftext.NewExtractor().ExtractText(ctx, path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return pdftext.CleanText(string(raw)), nil
}

func saveQuiz(ctx context.Context, cfg *config.Config, courseID string, quiz *domain.GeneratedQuiz) error {
	req, err := dto.NewCreateQuizRequest(courseID, quiz)
	if err != nil {
		return err
	}

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	quizService := service.NewQuizService(
		repository.NewQuizDatabaseAdapter(db),
		repository.NewCourseDatabaseAdapter(db),
		repository.NewTransactionManagerAdapter(db),
	)
	saved, err := quizService.CreateQuiz(ctx, req)
	if err != nil {
		return err
	}
	logger.Get().Info("Quiz saved", zap.String("quizID", saved.ID), zap.Int("questions", saved.Questions.Count))
	return nil
}
